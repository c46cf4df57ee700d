package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rhosak/tomo-tsp/pkg/cache"
	"github.com/rhosak/tomo-tsp/pkg/observability"
	"github.com/rhosak/tomo-tsp/pkg/solver"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

// Runner encapsulates pipeline execution with tour caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete configure → cost → solve → evaluate pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:  uuid.NewString(),
		Scheme: opts.Scheme,
		Qubits: opts.Qubits,
	}

	// Stage 1: Configure
	configureStart := time.Now()
	observability.Pipeline().OnConfigureStart(ctx, string(opts.Scheme), opts.Qubits)
	settings, err := Configure(opts)
	result.Stats.ConfigureTime = time.Since(configureStart)
	observability.Pipeline().OnConfigureComplete(ctx, string(opts.Scheme), opts.Qubits, len(settings), result.Stats.ConfigureTime, err)
	if err != nil {
		return nil, fmt.Errorf("configure: %w", err)
	}
	result.Settings = len(settings)

	opts.Logger.Info("built configuration space",
		"scheme", opts.Scheme,
		"qubits", opts.Qubits,
		"settings", len(settings),
		"duration", result.Stats.ConfigureTime)
	if opts.Qubits >= largeQubits {
		opts.Logger.Warn("large configuration space; the exact solve may take a while",
			"settings", len(settings))
	}

	// Stage 2: Cost matrix
	costStart := time.Now()
	matrix, err := CostMatrix(settings)
	if err != nil {
		return nil, fmt.Errorf("cost matrix: %w", err)
	}
	result.Stats.CostTime = time.Since(costStart)

	opts.Logger.Info("computed cost matrix",
		"dimension", matrix.Dim(),
		"duration", result.Stats.CostTime)

	// Stage 3: Solve (with tour caching)
	solveStart := time.Now()
	observability.Pipeline().OnSolveStart(ctx, matrix.Dim())
	tour, hit, err := r.SolveWithCacheInfo(ctx, matrix, opts, result)
	observability.Pipeline().OnSolveComplete(ctx, matrix.Dim(), time.Since(solveStart), err)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Tour = tour
	result.CacheInfo.TourHit = hit
	result.Stats.SolveTime = time.Since(solveStart)

	opts.Logger.Info("obtained optimal tour",
		"cached", hit,
		"duration", result.Stats.SolveTime)

	// Stage 4: Evaluate
	evalStart := time.Now()
	err = evaluate(matrix, tour, result)
	result.Stats.EvaluateTime = time.Since(evalStart)
	observability.Pipeline().OnEvaluateComplete(ctx, result.Optimal, result.Conventional, err)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	opts.Logger.Info("evaluated ordering",
		"optimal", result.Optimal,
		"conventional", result.Conventional,
		"speedup", result.Speedup,
		"reduction", result.Reduction)

	return result, nil
}

// SolveWithCacheInfo obtains the optimal tour for the matrix, consulting the
// tour cache first, and reports whether it was a cache hit. The problem hash
// is recorded on result as a side effect so cached and fresh runs report the
// same identity.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, m *tomo.Matrix, opts Options, result *Result) ([]int, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	problem, err := ProblemBytes(m, opts)
	if err != nil {
		return nil, false, err
	}
	problemHash := cache.Hash(problem)
	if result != nil {
		result.ProblemHash = problemHash
	}

	cacheKey := r.Keyer.TourKey(problemHash, opts.TourKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var tour []int
			if err := json.Unmarshal(data, &tour); err == nil && len(tour) == m.Dim() {
				observability.Cache().OnCacheHit(ctx, "tour")
				return tour, true, nil // Cache hit
			}
			// Corrupt entry - drop it and fall through to a fresh solve
			_ = r.Cache.Delete(ctx, cacheKey)
		}
		observability.Cache().OnCacheMiss(ctx, "tour")
	}

	// Write the problem file and run the external solver.
	workdir := opts.Workdir
	if workdir == "" {
		workdir, err = os.MkdirTemp("", "tomotsp-*")
		if err != nil {
			return nil, false, err
		}
		defer os.RemoveAll(workdir)
	} else if err := os.MkdirAll(workdir, 0o755); err != nil {
		return nil, false, err
	}

	problemPath := filepath.Join(workdir, opts.Name+".tsp")
	if err := os.WriteFile(problemPath, problem, 0o644); err != nil {
		return nil, false, err
	}

	s := solver.New(opts.SolverPath, opts.SolverArgs, opts.Logger)
	tour, err := s.Solve(ctx, problemPath, m.Dim())
	if err != nil {
		return nil, false, err
	}

	if opts.KeepFiles && result != nil {
		result.ProblemPath = problemPath
		result.SolutionPath = solver.SolutionPath(problemPath)
	}

	// Cache the result
	if data, err := json.Marshal(tour); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLTour)
		observability.Cache().OnCacheSet(ctx, "tour", len(data))
	}

	return tour, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Solve(ctx context.Context, m *tomo.Matrix, opts Options) ([]int, error) {
	tour, _, err := r.SolveWithCacheInfo(ctx, m, opts, nil)
	return tour, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// evaluate fills in the cycle metrics for the optimal tour versus the
// conventional lexicographic baseline.
func evaluate(m *tomo.Matrix, tour []int, result *Result) error {
	optimal, err := tomo.CycleLength(m, tour)
	if err != nil {
		return err
	}
	conventional, err := tomo.CycleLength(m, tomo.IdentityTour(m.Dim()))
	if err != nil {
		return err
	}
	speedup, err := tomo.Speedup(conventional, optimal)
	if err != nil {
		return err
	}

	result.Optimal = optimal
	result.Conventional = conventional
	result.Speedup = speedup
	result.Reduction = tomo.Reduction(conventional, optimal)

	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
