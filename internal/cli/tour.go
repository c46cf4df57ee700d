package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rhosak/tomo-tsp/pkg/pipeline"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
	"github.com/rhosak/tomo-tsp/pkg/tsplib"
)

// tourCommand creates the tour command for evaluating an existing solver
// solution file against a configuration space.
func (c *CLI) tourCommand() *cobra.Command {
	var scheme string
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "tour <solution-file>",
		Short: "Evaluate a solver tour against a configuration space",
		Long: `Evaluate a solver solution file against a tomography configuration space.

The solution file is the solver's output format: a dimension line followed
by whitespace-separated zero-based city indices. The command recomputes the
cost matrix for the given parameters, so the scheme and qubit count must
match the ones the problem file was written with.

Example:
  tomotsp tour tomo2q.sol --qubits 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scheme != "" {
				opts.Scheme = tomo.Scheme(scheme)
			}
			return c.runTour(opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.Qubits, "qubits", "n", pipeline.DefaultQubits, "number of qubits")
	cmd.Flags().StringVar(&scheme, "scheme", "", "measurement scheme: six-state (default), three-bases")

	return cmd
}

// runTour reads the tour and reports its quality against the conventional ordering.
func (c *CLI) runTour(opts pipeline.Options, path string) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	settings, err := pipeline.Configure(opts)
	if err != nil {
		return err
	}
	m, err := pipeline.CostMatrix(settings)
	if err != nil {
		return err
	}

	tour, err := tsplib.ReadTourFile(path, m.Dim())
	if err != nil {
		return fmt.Errorf("read tour %s: %w", path, err)
	}

	length, err := tomo.CycleLength(m, tour)
	if err != nil {
		return err
	}
	conventional, err := tomo.CycleLength(m, tomo.IdentityTour(m.Dim()))
	if err != nil {
		return err
	}
	speedup, err := tomo.Speedup(conventional, length)
	if err != nil {
		return err
	}

	printSuccess("Evaluated tour of %d configurations", len(tour))
	printNewline()
	printKeyValue("tour", formatDegrees(length))
	printKeyValue("conventional", formatDegrees(conventional))
	printKeyValue("speedup", strconv.FormatFloat(speedup, 'f', -1, 64)+"x")
	printKeyValue("saved", formatDegrees(tomo.Reduction(conventional, length)))
	return nil
}
