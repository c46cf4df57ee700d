package tomo

import (
	"math"

	"github.com/rhosak/tomo-tsp/pkg/errors"
)

// Matrix is a dense square cost matrix over configuration-space indices.
// Entries are stored row-major in a single backing slice so the O(N²) build
// and scan paths stay cache-friendly; N is 6^n for n qubits, so the matrix
// reaches 1296×1296 at four qubits.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// Dim returns the matrix dimension N.
func (m *Matrix) Dim() int { return m.n }

// At returns entry (i, j). Indices must be in [0, N); this is the hot path
// and callers are expected to have validated tours up front.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set assigns entry (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float64 { return m.data[i*m.n : (i+1)*m.n] }

// InBounds reports whether index i is a valid configuration index.
func (m *Matrix) InBounds(i int) bool { return i >= 0 && i < m.n }

// BuildCostMatrix computes the pairwise wave-plate distance for every
// ordered pair of settings: entry (i, j) is the maximum over all angle
// components k of |settings[i][k] − settings[j][k]|.
//
// Only the upper triangle is computed; the lower triangle is mirrored, so
// symmetry is exact by construction (bit-for-bit, not merely within a
// floating-point tolerance) and the diagonal is exactly zero.
//
// All settings must share the same arity. Complexity: O(N²·C) for N
// settings of C components each.
func BuildCostMatrix(settings []Setting) (*Matrix, error) {
	n := len(settings)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "settings cannot be empty")
	}
	arity := len(settings[0])
	for i, s := range settings {
		if len(s) != arity {
			return nil, errors.New(errors.ErrCodeInvalidArgument,
				"setting %d has %d components, expected %d", i, len(s), arity)
		}
	}

	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		si := settings[i]
		for j := i + 1; j < n; j++ {
			sj := settings[j]
			var d float64
			for k := 0; k < arity; k++ {
				if diff := math.Abs(si[k] - sj[k]); diff > d {
					d = diff
				}
			}
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}

	return m, nil
}
