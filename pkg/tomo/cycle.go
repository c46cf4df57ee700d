package tomo

import (
	"github.com/rhosak/tomo-tsp/pkg/errors"
)

// IdentityTour returns the conventional baseline ordering [0, 1, …, n−1]:
// settings visited in lexicographic enumeration order.
func IdentityTour(n int) []int {
	tour := make([]int, n)
	for i := range tour {
		tour[i] = i
	}
	return tour
}

// CycleLength computes the total transition cost of visiting the tour's
// settings in order and returning to the start: the sum of
// m[tour[k]][tour[k+1]] for consecutive entries plus the closing edge
// m[tour[last]][tour[0]].
//
// The tour may be any non-empty sequence of valid indices; it is not
// required to be a permutation, so the same evaluator scores both solver
// tours and arbitrary baselines.
func CycleLength(m *Matrix, tour []int) (float64, error) {
	if m == nil {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "cost matrix is nil")
	}
	if len(tour) == 0 {
		return 0, errors.New(errors.ErrCodeOutOfRange, "cannot evaluate an empty tour")
	}
	for pos, idx := range tour {
		if !m.InBounds(idx) {
			return 0, errors.New(errors.ErrCodeOutOfRange,
				"tour entry %d is index %d, outside matrix of dimension %d", pos, idx, m.Dim())
		}
	}

	var sum float64
	for k := 0; k < len(tour)-1; k++ {
		sum += m.At(tour[k], tour[k+1])
	}
	sum += m.At(tour[len(tour)-1], tour[0])

	return sum, nil
}

// Speedup returns the ratio of the conventional ordering's cycle length to
// the optimized one. A ratio of 1.3 means the optimized ordering rotates
// the wave plates 1.3× less in total.
func Speedup(conventional, optimal float64) (float64, error) {
	if optimal == 0 {
		return 0, errors.New(errors.ErrCodeDivisionByZero,
			"optimal cycle length is zero; all configurations are identical")
	}
	return conventional / optimal, nil
}

// Reduction returns the absolute rotation saved by the optimized ordering,
// in degrees.
func Reduction(conventional, optimal float64) float64 {
	return conventional - optimal
}
