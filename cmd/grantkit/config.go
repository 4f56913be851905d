package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Config is the effective CLI configuration. Precedence, lowest first:
// defaults, config file, GRANTKIT_* environment variables, flags.
type Config struct {
	// Artifacts is the directory holding roles.json,
	// grants_privileges.json and grants_hierarchy.json, and where
	// grants_flattened.json is written.
	Artifacts string `json:"artifacts" envconfig:"ARTIFACTS"`

	// DatabaseURL enables PostgreSQL persistence of results when set.
	DatabaseURL string `json:"database_url" envconfig:"DATABASE_URL"`
}

// defaultConfigFile is auto-discovered in the working directory when
// --config is not given.
const defaultConfigFile = "grantkit.yaml"

// LoadConfig resolves the configuration from file and environment.
// Returns the config and the path of the file it was read from ("" when
// running on defaults only).
func LoadConfig(path string) (*Config, string, error) {
	cfg := &Config{
		Artifacts: ".",
	}

	usedPath := ""
	candidate := path
	if candidate == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			candidate = defaultConfigFile
		}
	}
	if candidate != "" {
		data, err := os.ReadFile(candidate)
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", candidate, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, "", fmt.Errorf("parsing %s: %w", candidate, err)
		}
		usedPath = candidate
	}

	if err := envconfig.Process("grantkit", cfg); err != nil {
		return nil, "", fmt.Errorf("reading environment: %w", err)
	}

	return cfg, usedPath, nil
}

var configShowSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  `Show the effective configuration after merging defaults, config file, environment variables and flags.`,
	Example: `  # Show effective configuration
  grantkit config show

  # Show configuration with source file path
  grantkit config show --source`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configShowSource {
			if configPath != "" {
				fmt.Printf("Config file: %s\n\n", configPath)
			} else {
				fmt.Println("Config file: (none, using defaults)")
				fmt.Println()
			}
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowSource, "source", false, "show config file source")
	configCmd.AddCommand(configShowCmd)
}
