package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Flatten the role hierarchy into per-role privilege lists",
	Long: `Flatten loads the three grant artifacts from the configured directory,
resolves every role's effective privileges (direct plus inherited), and
writes grants_flattened.json next to the inputs. With a database URL
configured, the result is also persisted and the run recorded.`,
	Example: `  # Flatten artifacts in ./export
  grantkit flatten --artifacts ./export

  # Flatten and persist to PostgreSQL
  grantkit flatten --artifacts ./export --database-url postgres://localhost/grants`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		service, cleanup, err := newService(cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := service.Run(cmd.Context())
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Printf("Flattened %d roles: %d grants (%d direct, %d inherited, ratio %.2f) in %s\n",
				result.RoleCount,
				result.Stats.TotalGrants,
				result.Stats.DirectGrants,
				result.Stats.InheritedGrants,
				result.Stats.ExpansionRatio,
				result.Duration.Round(time.Millisecond))
			if result.Cycles > 0 {
				fmt.Printf("Warning: %d cycle(s) detected in the role hierarchy\n", result.Cycles)
			}
		}
		return nil
	},
}
