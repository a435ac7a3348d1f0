package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/katalvlaran/knapsolver/solver"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		configPath string
		format     string
	)
	flags := defaultConfig()

	cmd := &cobra.Command{
		Use:   "solve [instance]",
		Short: "Solve a 0/1 knapsack instance",
		Long: `Solve a 0/1 knapsack instance.

The instance is read in one of the formats standard, pisinger, jooken or
subsetsum_standard. Settings come from --config (TOML) and are overridden by
explicitly set flags. Interrupting the command stops the search and still
reports the best value and bound found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flags)
			if err != nil {
				return err
			}
			f, err := knapsack.ParseFormat(format)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), args[0], f, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", string(knapsack.FormatStandard), "instance format: standard, pisinger, jooken, subsetsum_standard")
	cmd.Flags().StringVarP(&flags.Solver.Algorithm, "algorithm", "a", flags.Solver.Algorithm, "algorithm: primal-dual (default), bellman, greedy, dantzig")
	cmd.Flags().IntVar(&flags.Solver.PartialSolutionSize, "partial-solution-size", flags.Solver.PartialSolutionSize, "items remembered per state, 1 to 64")
	cmd.Flags().BoolVar(&flags.Solver.Pairing, "pairing", flags.Solver.Pairing, "move promising outer items into the core")
	cmd.Flags().DurationVar(&flags.Solver.TimeLimit, "time-limit", flags.Solver.TimeLimit, "stop after this duration (0 = none)")
	cmd.Flags().Int64Var(&flags.Solver.Seed, "seed", flags.Solver.Seed, "partial sort pivot seed")
	cmd.Flags().StringVar(&flags.Output.Certificate, "certificate", flags.Output.Certificate, "write the solution certificate to this file")
	cmd.Flags().StringVarP(&flags.Output.Format, "output", "o", flags.Output.Format, "report format: text (default), json, yaml")

	return cmd
}

// resolveConfig loads the file (if any), applies explicitly set flags and
// validates the result.
func resolveConfig(cmd *cobra.Command, path string, flags Config) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return cfg, err
		}
	}

	set := cmd.Flags().Changed
	if set("algorithm") {
		cfg.Solver.Algorithm = flags.Solver.Algorithm
	}
	if set("partial-solution-size") {
		cfg.Solver.PartialSolutionSize = flags.Solver.PartialSolutionSize
	}
	if set("pairing") {
		cfg.Solver.Pairing = flags.Solver.Pairing
	}
	if set("time-limit") {
		cfg.Solver.TimeLimit = flags.Solver.TimeLimit
	}
	if set("seed") {
		cfg.Solver.Seed = flags.Solver.Seed
	}
	if set("certificate") {
		cfg.Output.Certificate = flags.Output.Certificate
	}
	if set("output") {
		cfg.Output.Format = flags.Output.Format
	}
	return cfg, cfg.validate()
}

// runSolve reads the instance, runs the configured algorithm and writes the
// report and the certificate. A cancelled context still produces output and
// is then returned as the error.
func (c *CLI) runSolve(ctx context.Context, input string, format knapsack.Format, cfg Config) error {
	inst, err := readInstanceFile(input, format)
	if err != nil {
		return err
	}
	c.Logger.Info("Loaded instance", "items", inst.NumberOfItems(), "capacity", inst.Capacity())

	opts := append(cfg.solverOptions(), solver.WithContext(ctx), solver.WithLogger(c.Logger))
	p := newProgress(c.Logger)

	var res *solver.Result
	switch cfg.Solver.Algorithm {
	case AlgorithmPrimalDual:
		res, err = solver.DynamicProgrammingPrimalDual(inst, opts...)
	case AlgorithmBellman:
		res, err = solver.Bellman(inst, opts...)
	case AlgorithmGreedy:
		res, err = solver.GreedySolve(inst, opts...)
	case AlgorithmDantzig:
		res, err = solver.DantzigSolve(inst, opts...)
	default:
		return fmt.Errorf("%w: algorithm %q", ErrInvalidConfig, cfg.Solver.Algorithm)
	}
	if err != nil {
		return fmt.Errorf("solve %s: %w", input, err)
	}
	p.done("Solved", "value", res.Value, "bound", res.Bound)

	if err := writeReport(c.Out, newReport(input, cfg.Solver.Algorithm, inst, res), cfg.Output.Format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if cfg.Output.Certificate != "" && res.HasSolution() {
		if err := writeCertificateFile(cfg.Output.Certificate, res.Solution); err != nil {
			return err
		}
		c.Logger.Debug("Wrote certificate", "path", cfg.Output.Certificate)
	}
	return ctx.Err()
}

func readInstanceFile(path string, format knapsack.Format) (*knapsack.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open instance: %w", err)
	}
	defer f.Close()

	inst, err := knapsack.ReadInstance(f, format)
	if err != nil {
		return nil, fmt.Errorf("read instance %s: %w", path, err)
	}
	return inst, nil
}

func writeCertificateFile(path string, sol *knapsack.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	if err := knapsack.WriteCertificate(f, sol); err != nil {
		f.Close()
		return fmt.Errorf("write certificate %s: %w", path, err)
	}
	return f.Close()
}
