package tomo

import (
	"github.com/rhosak/tomo-tsp/pkg/errors"
)

// Setting is one measurement configuration: an ordered tuple of wave-plate
// angles in degrees. A single-qubit setting has two components (HWP, QWP);
// an n-qubit setting concatenates one such pair per qubit, qubit 1 first.
type Setting []float64

// Scheme names a per-qubit projection set.
type Scheme string

// Supported measurement schemes.
const (
	// SchemeSixState measures all six polarization projections
	// H, V, D, A, R, L. This is the standard tomographically
	// overcomplete scheme and the default.
	SchemeSixState Scheme = "six-state"

	// SchemeThreeBases measures one projection per basis (H/V, D/A, R/L).
	SchemeThreeBases Scheme = "three-bases"
)

// sixStateAngles lists (HWP, QWP) pairs for H, V, D, A, R, L in that fixed
// order. The order defines projection indices 0..5 across the whole system.
//
// Note: some lab documentation lists the V and D HWP angles swapped
// (22.5 for V, 45 for D). The values below follow the executable reference
// table, which is what the instruments were actually driven with.
var sixStateAngles = [][2]float64{
	{0, 0},     // H
	{45, 0},    // V
	{22.5, 0},  // D
	{-22.5, 0}, // A
	{0, 45},    // R
	{0, -45},   // L
}

// threeBasesAngles lists (HWP, QWP) pairs for the H/V, D/A and R/L bases.
var threeBasesAngles = [][2]float64{
	{0, 0},    // H/V
	{22.5, 0}, // D/A
	{0, 45},   // R/L
}

// ValidSchemes is the set of recognized scheme names.
var ValidSchemes = map[Scheme]bool{
	SchemeSixState:   true,
	SchemeThreeBases: true,
}

// ValidateScheme checks that a scheme name is recognized.
func ValidateScheme(s Scheme) error {
	if !ValidSchemes[s] {
		return errors.New(errors.ErrCodeInvalidScheme,
			"invalid scheme: %q (must be one of: six-state, three-bases)", string(s))
	}
	return nil
}

// BaseSettings returns the six-projection single-qubit configuration space
// in canonical order [H, V, D, A, R, L]. The result is freshly allocated;
// callers may mutate it without affecting the package tables.
func BaseSettings() []Setting {
	return settingsFromTable(sixStateAngles)
}

// SchemeSettings returns the single-qubit configuration space for the given
// scheme, in the scheme's canonical order.
func SchemeSettings(s Scheme) ([]Setting, error) {
	switch s {
	case SchemeSixState:
		return settingsFromTable(sixStateAngles), nil
	case SchemeThreeBases:
		return settingsFromTable(threeBasesAngles), nil
	default:
		return nil, ValidateScheme(s)
	}
}

func settingsFromTable(table [][2]float64) []Setting {
	out := make([]Setting, len(table))
	for i, pair := range table {
		out[i] = Setting{pair[0], pair[1]}
	}
	return out
}

// Expand returns the qubitCount-fold Cartesian power of base, flattened so
// each output Setting concatenates one base Setting per qubit. The rightmost
// qubit varies fastest: decomposing an output index as a base-len(base)
// number with qubitCount digits, the most significant digit selects qubit
// 1's projection. For qubitCount == 1 the output equals base.
//
// The output order is the index space used by the cost matrix, the TSPLIB
// problem file, and the solver's tour.
//
// Complexity: O(k^n · n) time and space for k base settings and n qubits.
func Expand(base []Setting, qubitCount int) ([]Setting, error) {
	if qubitCount < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"qubit count must be >= 1, got %d", qubitCount)
	}
	if len(base) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "base settings cannot be empty")
	}
	arity := len(base[0])
	for i, s := range base {
		if len(s) != arity {
			return nil, errors.New(errors.ErrCodeInvalidArgument,
				"base setting %d has %d components, expected %d", i, len(s), arity)
		}
	}

	k := len(base)
	total := 1
	for i := 0; i < qubitCount; i++ {
		total *= k
	}

	// Mixed-radix counter over qubit digits; avoids materializing
	// intermediate product lists.
	digits := make([]int, qubitCount)
	out := make([]Setting, total)
	for idx := 0; idx < total; idx++ {
		s := make(Setting, 0, arity*qubitCount)
		for _, d := range digits {
			s = append(s, base[d]...)
		}
		out[idx] = s

		// Increment with the last digit (rightmost qubit) fastest.
		for pos := qubitCount - 1; pos >= 0; pos-- {
			digits[pos]++
			if digits[pos] < k {
				break
			}
			digits[pos] = 0
		}
	}

	return out, nil
}
