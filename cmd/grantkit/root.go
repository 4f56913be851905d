package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *Config
	configPath string

	// Persistent flags
	cfgFile       string
	flagArtifacts string
	flagDBURL     string
	verbose       int
	quiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "grantkit",
	Short: "Warehouse grant flattening",
	Long: `grantkit - Warehouse grant flattening

GrantKit resolves a warehouse role hierarchy into explicit per-role
privilege lists: every role's direct grants plus everything inherited
transitively through role membership, deduplicated and tagged with
provenance. The flattened document is what a lakehouse migration needs
to recreate the same access model with flat group grants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		// Flags win over config file and environment.
		if flagArtifacts != "" {
			cfg.Artifacts = flagArtifacts
		}
		if flagDBURL != "" {
			cfg.DatabaseURL = flagDBURL
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover grantkit.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagArtifacts, "artifacts", "", "directory holding the grant artifacts")
	rootCmd.PersistentFlags().StringVar(&flagDBURL, "database-url", "", "PostgreSQL URL for result persistence (optional)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
