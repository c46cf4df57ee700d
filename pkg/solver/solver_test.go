package solver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhosak/tomo-tsp/pkg/errors"
)

// writeScript installs an executable shell script standing in for the
// external solver binary.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestSolutionPath(t *testing.T) {
	assert.Equal(t, "/tmp/run/tomo2q.sol", SolutionPath("/tmp/run/tomo2q.tsp"))
	assert.Equal(t, "problem.sol", SolutionPath("problem.txt"))
	assert.Equal(t, "noext.sol", SolutionPath("noext"))
}

func TestSolveSuccess(t *testing.T) {
	dir := t.TempDir()
	problem := filepath.Join(dir, "tomo1q.tsp")
	require.NoError(t, os.WriteFile(problem, []byte("NAME : tomo1q\n"), 0o644))

	bin := writeScript(t, dir, "fakesolver",
		`out="${1%.tsp}.sol"`+"\n"+`printf '6\n0 5 3\n4 1 2\n' > "$out"`+"\n")

	s := New(bin, nil, nil)
	tour, err := s.Solve(context.Background(), problem, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 3, 4, 1, 2}, tour)
}

func TestSolveNonZeroExit(t *testing.T) {
	dir := t.TempDir()
	problem := filepath.Join(dir, "tomo1q.tsp")
	require.NoError(t, os.WriteFile(problem, []byte("NAME : tomo1q\n"), 0o644))

	bin := writeScript(t, dir, "fakesolver", "echo 'no solution found' >&2\nexit 3\n")

	s := New(bin, nil, nil)
	_, err := s.Solve(context.Background(), problem, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeExternalTool))
	assert.Contains(t, err.Error(), "no solution found")
}

func TestSolveMissingOutput(t *testing.T) {
	dir := t.TempDir()
	problem := filepath.Join(dir, "tomo1q.tsp")
	require.NoError(t, os.WriteFile(problem, []byte("NAME : tomo1q\n"), 0o644))

	// A stale solution from a previous run must not be handed back when the
	// solver exits cleanly without writing anything.
	require.NoError(t, os.WriteFile(SolutionPath(problem), []byte("6\n0 1 2 3 4 5\n"), 0o644))
	bin := writeScript(t, dir, "fakesolver", "exit 0\n")

	s := New(bin, nil, nil)
	_, err := s.Solve(context.Background(), problem, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeExternalTool))
}

func TestSolveDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	problem := filepath.Join(dir, "tomo1q.tsp")
	require.NoError(t, os.WriteFile(problem, []byte("NAME : tomo1q\n"), 0o644))

	bin := writeScript(t, dir, "fakesolver",
		`out="${1%.tsp}.sol"`+"\n"+`printf '3\n0 2 1\n' > "$out"`+"\n")

	s := New(bin, nil, nil)
	_, err := s.Solve(context.Background(), problem, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDimensionMismatch))
}

func TestSolveMissingBinary(t *testing.T) {
	dir := t.TempDir()
	problem := filepath.Join(dir, "tomo1q.tsp")
	require.NoError(t, os.WriteFile(problem, []byte("NAME : tomo1q\n"), 0o644))

	s := New(filepath.Join(dir, "does-not-exist"), nil, nil)
	_, err := s.Solve(context.Background(), problem, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeExternalTool))
}

func TestSolveUnconfigured(t *testing.T) {
	s := New("", nil, nil)
	_, err := s.Solve(context.Background(), "problem.tsp", 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument))
}
