package tomo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhosak/tomo-tsp/pkg/errors"
)

func sixStateMatrix(t *testing.T) *Matrix {
	t.Helper()
	m, err := BuildCostMatrix(BaseSettings())
	require.NoError(t, err)
	return m
}

func TestIdentityTour(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, IdentityTour(6))
	assert.Empty(t, IdentityTour(0))
}

func TestCycleLengthConventional(t *testing.T) {
	m := sixStateMatrix(t)

	got, err := CycleLength(m, IdentityTour(6))
	require.NoError(t, err)
	// H→V→D→A→R→L→H: 45 + 22.5 + 45 + 45 + 90 + 45.
	assert.Equal(t, 292.5, got)
}

func TestCycleLengthOptimal(t *testing.T) {
	m := sixStateMatrix(t)

	got, err := CycleLength(m, []int{0, 5, 3, 4, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 225.0, got)
}

func TestCycleLengthMatchesManualSum(t *testing.T) {
	m := sixStateMatrix(t)
	tour := IdentityTour(m.Dim())

	var want float64
	for k := 0; k < len(tour)-1; k++ {
		want += m.At(tour[k], tour[k+1])
	}
	want += m.At(tour[len(tour)-1], tour[0])

	got, err := CycleLength(m, tour)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCycleLengthSingleElement(t *testing.T) {
	m := sixStateMatrix(t)

	// A one-element tour closes on itself over the zero diagonal.
	got, err := CycleLength(m, []int{3})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCycleLengthErrors(t *testing.T) {
	m := sixStateMatrix(t)

	_, err := CycleLength(m, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange))

	_, err = CycleLength(m, []int{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange))

	_, err = CycleLength(m, []int{0, 1, 6})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange))

	_, err = CycleLength(m, []int{0, -1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange))

	_, err = CycleLength(nil, []int{0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument))
}

func TestSpeedup(t *testing.T) {
	got, err := Speedup(292.5, 225.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.3, got, 1e-12)

	_, err = Speedup(292.5, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDivisionByZero))
}

func TestReduction(t *testing.T) {
	assert.Equal(t, 67.5, Reduction(292.5, 225.0))
	assert.Equal(t, 0.0, Reduction(100, 100))
}
