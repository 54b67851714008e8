package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"smart-employee-api/internal/config"
)

func newGenerateCommand() *cobra.Command {
	var (
		count  int
		seed   int64
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write fabricated employee records to stdout as a JSON array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = cfg.DefaultCount
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if count < 0 {
				return fmt.Errorf("count cannot be negative: %d", count)
			}
			if cfg.MaxCount > 0 && count > cfg.MaxCount {
				return fmt.Errorf("count %d exceeds maximum %d", count, cfg.MaxCount)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(newSynthesizer(cfg).Take(count))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of records (defaults to DEFAULT_EMPLOYEE_COUNT)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for a reproducible stream (overrides RANDOM_SEED)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")
	return cmd
}
