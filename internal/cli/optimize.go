package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rhosak/tomo-tsp/pkg/pipeline"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

// optimizeCommand creates the optimize command, the main entry point of the
// tool. It runs the full pipeline: configuration space, cost matrix, exact
// solve, and evaluation against the conventional lexicographic ordering.
func (c *CLI) optimizeCommand() *cobra.Command {
	var (
		scheme  string
		noCache bool
		asJSON  bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the optimal measurement ordering for a tomography run",
		Long: `Find the optimal measurement ordering for a quantum state tomography run.

The command enumerates all wave plate configurations for the chosen scheme
and qubit count, derives the transition cost between every pair, and asks
the external exact solver for the shortest closed route through all of them.
The result is compared against the conventional lexicographic ordering.

Solved tours are cached locally, so repeated runs with identical parameters
return immediately.

Examples:
  tomotsp optimize --qubits 2
  tomotsp optimize --qubits 3 --scheme three-bases
  tomotsp optimize --qubits 2 --workdir ./artifacts --keep-files`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scheme != "" {
				opts.Scheme = tomo.Scheme(scheme)
			}
			return c.runOptimize(cmd.Context(), opts, noCache, asJSON)
		},
	}

	cmd.Flags().IntVarP(&opts.Qubits, "qubits", "n", pipeline.DefaultQubits, "number of qubits")
	cmd.Flags().StringVar(&scheme, "scheme", "", "measurement scheme: six-state (default), three-bases")
	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "integer scale factor for edge weights")
	cmd.Flags().StringVar(&opts.SolverPath, "solver", opts.SolverPath, "path to the exact TSP solver executable")
	cmd.Flags().StringSliceVar(&opts.SolverArgs, "solver-args", opts.SolverArgs, "extra arguments passed to the solver")
	cmd.Flags().StringVar(&opts.Name, "name", "", "TSPLIB problem name (derived from parameters if empty)")
	cmd.Flags().StringVarP(&opts.Workdir, "workdir", "w", "", "directory for problem and solution files (temporary if empty)")
	cmd.Flags().BoolVar(&opts.KeepFiles, "keep-files", false, "keep problem and solution files after the run")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "solve again even if a cached tour exists")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")

	return cmd
}

// runOptimize executes the pipeline and prints the result.
func (c *CLI) runOptimize(ctx context.Context, opts pipeline.Options, noCache, asJSON bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Optimizing %d-qubit ordering...", opts.Qubits))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Optimization failed")
		return fmt.Errorf("optimize: %w", err)
	}
	spinner.Stop()

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSuccess("Found optimal ordering for %d qubit(s)", result.Qubits)
	printStats(result.Settings, result.Qubits, result.CacheInfo.TourHit)
	printNewline()
	printKeyValue("scheme", string(result.Scheme))
	printKeyValue("optimal", formatDegrees(result.Optimal))
	printKeyValue("conventional", formatDegrees(result.Conventional))
	printKeyValue("speedup", strconv.FormatFloat(result.Speedup, 'f', -1, 64)+"x")
	printKeyValue("saved", formatDegrees(result.Reduction))

	if result.ProblemPath != "" {
		printNewline()
		printFile(result.ProblemPath)
		printFile(result.SolutionPath)
	}

	printNewline()
	printNextStep("Inspect the configuration space", fmt.Sprintf("tomotsp inspect --qubits %d", result.Qubits))
	return nil
}

// formatDegrees renders a rotation distance in degrees.
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°"
}
