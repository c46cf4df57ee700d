// Package pipeline provides the core measurement-ordering pipeline for
// tomo-tsp.
//
// This package implements the complete expand → cost → serialize → solve →
// evaluate chain that can be used by CLI and API components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Configure: build the n-qubit configuration space for a scheme
//  2. Cost: derive the pairwise wave-plate distance matrix
//  3. Solve: serialize the matrix as a TSPLIB problem and run the external
//     TSP solver (skipped on a tour-cache hit)
//  4. Evaluate: score the optimal tour against the conventional ordering
//
// Every stage runs to completion before the next begins, consumes immutable
// inputs, and produces freshly allocated outputs; errors propagate to the
// caller immediately and nothing is retried.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Qubits:     2,
//	    SolverPath: "/usr/local/bin/concorde-wrapper",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Speedup)
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rhosak/tomo-tsp/pkg/cache"
	"github.com/rhosak/tomo-tsp/pkg/errors"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
	"github.com/rhosak/tomo-tsp/pkg/tsplib"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultQubits is the default system size. Two qubits (36 settings) is
	// the smallest system where optimized orderings pay off noticeably.
	DefaultQubits = 2

	// DefaultScale is the integer scaling factor for problem serialization.
	DefaultScale = tsplib.DefaultScale

	// MaxQubits bounds the system size. At seven qubits the cost matrix
	// alone would hold 6^14 entries; nothing realistic lives there.
	MaxQubits = 6

	// largeQubits is the size at which an exact solve stops being quick and
	// the pipeline starts logging progress warnings.
	largeQubits = 4
)

// DefaultScheme is the default measurement scheme.
const DefaultScheme = tomo.SchemeSixState

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the measurement-ordering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Problem options
	Scheme tomo.Scheme `json:"scheme,omitempty"` // measurement scheme (six-state, three-bases)
	Qubits int         `json:"qubits,omitempty"` // system size; configuration space is k^Qubits
	Scale  int         `json:"scale,omitempty"`  // integer scaling factor for serialization

	// Problem file metadata
	Name    string `json:"name,omitempty"`    // TSPLIB problem name; derived when empty
	Comment string `json:"comment,omitempty"` // TSPLIB comment line; derived when empty

	// Solver options
	SolverPath string   `json:"solver_path,omitempty"` // external solver executable
	SolverArgs []string `json:"solver_args,omitempty"` // extra solver arguments

	// Workdir receives the problem and solution files. A temporary
	// directory is used (and removed) when empty.
	Workdir string `json:"workdir,omitempty"`

	// KeepFiles retains the problem/solution files after the run.
	// Implied when Workdir is set.
	KeepFiles bool `json:"keep_files,omitempty"`

	// Refresh bypasses the tour cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string `json:"run_id"`

	// Problem identity.
	Scheme   tomo.Scheme `json:"scheme"`
	Qubits   int         `json:"qubits"`
	Settings int         `json:"settings"` // configuration space size N

	// ProblemHash is the SHA-256 of the serialized TSPLIB problem.
	ProblemHash string `json:"problem_hash"`

	// Tour is the optimized measurement ordering (N configuration indices,
	// cyclic, no closing repeat).
	Tour []int `json:"tour"`

	// Cycle metrics, in degrees of wave-plate rotation.
	Optimal      float64 `json:"optimal"`
	Conventional float64 `json:"conventional"`
	Speedup      float64 `json:"speedup"`
	Reduction    float64 `json:"reduction"`

	// File locations, set only when the run kept its files.
	ProblemPath  string `json:"problem_path,omitempty"`
	SolutionPath string `json:"solution_path,omitempty"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks whether the solve stage hit the cache.
	CacheInfo CacheInfo `json:"cache_info"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ConfigureTime time.Duration `json:"configure_time"`
	CostTime      time.Duration `json:"cost_time"`
	SolveTime     time.Duration `json:"solve_time"`
	EvaluateTime  time.Duration `json:"evaluate_time"`
}

// CacheInfo tracks cache hits for the solve stage.
type CacheInfo struct {
	TourHit bool `json:"tour_hit"` // Whether the tour came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Scheme == "" {
		o.Scheme = DefaultScheme
	}
	if err := tomo.ValidateScheme(o.Scheme); err != nil {
		return err
	}

	if o.Qubits == 0 {
		o.Qubits = DefaultQubits
	}
	if o.Qubits < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "qubit count must be >= 1, got %d", o.Qubits)
	}
	if o.Qubits > MaxQubits {
		return errors.New(errors.ErrCodeInvalidArgument,
			"qubit count %d exceeds the supported maximum of %d", o.Qubits, MaxQubits)
	}

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "scale must be >= 1, got %d", o.Scale)
	}

	if o.Name == "" {
		o.Name = fmt.Sprintf("tomo%dq-%s", o.Qubits, o.Scheme)
	}
	if err := errors.ValidateProblemName(o.Name); err != nil {
		return err
	}
	if o.Comment == "" {
		o.Comment = fmt.Sprintf("%d qubit(s), %s scheme, scale %d", o.Qubits, o.Scheme, o.Scale)
	}
	if err := errors.ValidateComment(o.Comment); err != nil {
		return err
	}

	if o.Workdir != "" {
		o.KeepFiles = true
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// SolverID identifies the solver for cache keying: the executable base name
// joined with its extra arguments.
func (o *Options) SolverID() string {
	id := filepath.Base(o.SolverPath)
	for _, a := range o.SolverArgs {
		id += " " + a
	}
	return id
}

// TourKeyOpts returns cache key options for the solve stage.
func (o *Options) TourKeyOpts() cache.TourKeyOpts {
	return cache.TourKeyOpts{
		Solver: o.SolverID(),
		Scale:  o.Scale,
	}
}

// =============================================================================
// Stage Functions
// =============================================================================

// Configure builds the n-qubit configuration space for the options' scheme.
func Configure(opts Options) ([]tomo.Setting, error) {
	base, err := tomo.SchemeSettings(opts.Scheme)
	if err != nil {
		return nil, err
	}
	return tomo.Expand(base, opts.Qubits)
}

// CostMatrix derives the wave-plate distance matrix for a configuration
// space.
func CostMatrix(settings []tomo.Setting) (*tomo.Matrix, error) {
	return tomo.BuildCostMatrix(settings)
}

// ProblemBytes serializes the cost matrix into the TSPLIB problem format.
func ProblemBytes(m *tomo.Matrix, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := tsplib.WriteProblemScaled(&buf, m, opts.Name, opts.Comment, opts.Scale); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
