// Command symgrid repairs the test grids of an ARC-style task file
// using the symmetry engine and prints the ranked candidates.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgrid/grid"
	"github.com/katalvlaran/symgrid/symmetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "symgrid",
		Short:        "Detect and repair symmetries in colored-grid tasks",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd())

	return root
}

func newSolveCmd() *cobra.Command {
	var (
		optionsPath string
		wildcard    int
	)
	cmd := &cobra.Command{
		Use:   "solve TASK.json",
		Short: "Repair the test grids of a task file",
		Long: `Loads an ARC-style task document, infers the wildcard (occlusion)
color from the training pairs, and prints up to three repaired grids
per test input, best first. Pass --wildcard to skip the inference and
force a specific color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := grid.LoadTask(args[0])
			if err != nil {
				return err
			}

			opts := symmetry.DefaultOptions()
			if optionsPath != "" {
				data, err := os.ReadFile(optionsPath)
				if err != nil {
					return err
				}
				if opts, err = symmetry.OptionsFromYAML(data); err != nil {
					return err
				}
			}
			solver, err := symmetry.New(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var results [][]*grid.Grid
			if cmd.Flags().Changed("wildcard") {
				results = make([][]*grid.Grid, len(task.Test))
				for i, test := range task.Test {
					results[i] = solver.SolveGrid(test, []int{wildcard})
				}
			} else {
				results, err = solver.Solve(task)
				if err != nil {
					// Soft classification of an empty result, not a failure.
					fmt.Fprintf(out, "no repair: %v\n", err)
					return nil
				}
			}

			for i, candidates := range results {
				fmt.Fprintf(out, "test %d: %d candidate(s)\n", i, len(candidates))
				for rank, cand := range candidates {
					fmt.Fprintf(out, "rank %d\n%s\n", rank+1, cand)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&optionsPath, "options", "", "YAML file overriding the solver cutoffs")
	cmd.Flags().IntVar(&wildcard, "wildcard", 0, "force the wildcard color, skipping inference")

	return cmd
}
