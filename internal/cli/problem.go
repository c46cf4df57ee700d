package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhosak/tomo-tsp/pkg/pipeline"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

// problemCommand creates the problem command. It stops the pipeline after the
// cost matrix stage and writes the TSPLIB problem file, which is useful for
// feeding solvers by hand or archiving the instance.
func (c *CLI) problemCommand() *cobra.Command {
	var (
		scheme string
		output string
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "problem",
		Short: "Write the TSPLIB problem file without solving",
		Long: `Write the TSPLIB problem file for a tomography configuration space.

The file uses the EXPLICIT edge weight type with a FULL_MATRIX section and
integer weights. Pipe it to any TSPLIB-compatible solver, or archive it to
reproduce a solve later.

Examples:
  tomotsp problem --qubits 2 -o tomo2q.tsp
  tomotsp problem --qubits 1 --scheme three-bases`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scheme != "" {
				opts.Scheme = tomo.Scheme(scheme)
			}
			return c.runProblem(opts, output)
		},
	}

	cmd.Flags().IntVarP(&opts.Qubits, "qubits", "n", pipeline.DefaultQubits, "number of qubits")
	cmd.Flags().StringVar(&scheme, "scheme", "", "measurement scheme: six-state (default), three-bases")
	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "integer scale factor for edge weights")
	cmd.Flags().StringVar(&opts.Name, "name", "", "TSPLIB problem name (derived from parameters if empty)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runProblem builds the configuration space and writes the problem file.
func (c *CLI) runProblem(opts pipeline.Options, output string) error {
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
	data, err := pipeline.ProblemBytes(m, opts)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Wrote TSPLIB problem with %d configurations", len(settings))
	printFile(output)
	printNextStep("Evaluate a solver tour", fmt.Sprintf("tomotsp tour <tour.sol> --qubits %d", opts.Qubits))
	return nil
}
