// Package solver drives the external exact TSP solver through its
// file-based request/response protocol.
//
// The solver is treated as a pure function: it reads a TSPLIB problem file,
// runs to completion, and deposits a solution file next to the problem file
// (same base name, ".sol" extension). This package owns only that contract;
// the solver's algorithm is a black box. Invocation is synchronous and is
// never retried; callers that want a timeout impose one through the
// context.
package solver

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rhosak/tomo-tsp/pkg/errors"
	"github.com/rhosak/tomo-tsp/pkg/observability"
	"github.com/rhosak/tomo-tsp/pkg/tsplib"
)

// SolutionExt is the extension of the solution file the solver writes.
const SolutionExt = ".sol"

// Solver invokes an external TSP solver binary.
type Solver struct {
	// Path is the solver executable. It is resolved through PATH when it
	// contains no separator.
	Path string

	// Args are extra arguments placed before the problem file path.
	Args []string

	// Logger receives invocation diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// New creates a Solver for the given executable.
func New(path string, args []string, logger *log.Logger) *Solver {
	if logger == nil {
		logger = log.Default()
	}
	return &Solver{Path: path, Args: args, Logger: logger}
}

// SolutionPath derives the solution file path from a problem file path by
// swapping the extension for ".sol". A problem file without an extension
// gains one.
func SolutionPath(problemPath string) string {
	ext := filepath.Ext(problemPath)
	return problemPath[:len(problemPath)-len(ext)] + SolutionExt
}

// Solve runs the solver on problemPath and parses the resulting tour,
// which must have dim entries. A non-zero exit, a missing solution file,
// or a failure to start all surface as ExternalToolFailure.
//
// Any stale solution file is removed before the run so a solver that exits
// zero without writing output cannot hand back a previous answer.
func (s *Solver) Solve(ctx context.Context, problemPath string, dim int) ([]int, error) {
	if s.Path == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "solver path is not configured")
	}

	solPath := SolutionPath(problemPath)
	if err := os.Remove(solPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeExternalTool, err,
			"cannot remove stale solution file %s", solPath)
	}

	args := append(append([]string{}, s.Args...), problemPath)
	cmd := exec.CommandContext(ctx, s.Path, args...)
	cmd.Dir = filepath.Dir(problemPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	s.Logger.Debug("invoking solver", "path", s.Path, "args", args)
	observability.Solver().OnInvoke(ctx, s.Path, dim)
	start := time.Now()

	runErr := cmd.Run()
	observability.Solver().OnExit(ctx, s.Path, time.Since(start), runErr)

	if err := runErr; err != nil {
		if ctx.Err() != nil {
			// Caller-imposed deadline or cancellation takes precedence over
			// the kill-induced exit status.
			return nil, errors.Wrap(errors.ErrCodeExternalTool, ctx.Err(),
				"solver %s interrupted", s.Path)
		}
		return nil, errors.Wrap(errors.ErrCodeExternalTool, err,
			"solver %s failed: %s", s.Path, strings.TrimSpace(stderr.String()))
	}

	if _, err := os.Stat(solPath); err != nil {
		return nil, errors.New(errors.ErrCodeExternalTool,
			"solver %s exited cleanly but produced no solution file at %s", s.Path, solPath)
	}

	tour, err := tsplib.ReadTourFile(solPath, dim)
	if err != nil {
		return nil, err
	}

	s.Logger.Debug("solver finished", "duration", time.Since(start), "entries", len(tour))

	return tour, nil
}
