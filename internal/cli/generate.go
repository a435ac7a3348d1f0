package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsolver/gen"
	"github.com/katalvlaran/knapsolver/knapsack"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		family    string
		items     int
		seed      int64
		maxWeight int64
		maxProfit int64
		ratio     float64
		out       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random instance in the standard format",
		Long: `Write a random instance in the standard format.

Families: uncorrelated (u), weakly_correlated (wc), strongly_correlated (sc),
inverse_strongly_correlated (isc), subset_sum (ss) and ties. The capacity is
the given ratio of the total weight, at least the heaviest item.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := gen.ParseFamily(family)
			if err != nil {
				return err
			}
			inst, err := gen.Generate(fam, items,
				gen.WithSeed(seed),
				gen.WithMaxWeight(maxWeight),
				gen.WithMaxProfit(maxProfit),
				gen.WithCapacityRatio(ratio))
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			c.Logger.Info("Generated instance", "family", fam, "items", inst.NumberOfItems(), "capacity", inst.Capacity())
			return c.writeInstance(out, inst)
		},
	}

	cmd.Flags().StringVar(&family, "family", string(gen.Uncorrelated), "instance family")
	cmd.Flags().IntVarP(&items, "items", "n", 100, "number of items")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&maxWeight, "max-weight", 1000, "largest item weight")
	cmd.Flags().Int64Var(&maxProfit, "max-profit", 1000, "largest item profit (uncorrelated only)")
	cmd.Flags().Float64Var(&ratio, "capacity-ratio", 0.5, "capacity as a fraction of the total weight")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")

	return cmd
}

// writeInstance writes inst to path, or to c.Out when path is empty.
func (c *CLI) writeInstance(path string, inst *knapsack.Instance) error {
	var w io.Writer = c.Out
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	if err := knapsack.WriteInstance(w, inst); err != nil {
		return fmt.Errorf("write instance: %w", err)
	}
	return nil
}
