package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fernandezvara/grantkit"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check artifacts and database connectivity",
	Long: `Doctor verifies that the three input artifacts exist and decode, and
that the database (when configured) is reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false

		check := func(name string, err error) {
			if err != nil {
				failed = true
				fmt.Printf("  ✗ %s: %v\n", name, err)
				return
			}
			fmt.Printf("  ✓ %s\n", name)
		}

		fmt.Printf("Artifacts (%s):\n", cfg.Artifacts)
		store := grantkit.NewDirStore(cfg.Artifacts)
		_, rolesErr := store.LoadRoles(cmd.Context())
		check(grantkit.RolesFile, rolesErr)
		_, privsErr := store.LoadPrivileges(cmd.Context())
		check(grantkit.PrivilegesFile, privsErr)
		_, hierErr := store.LoadHierarchy(cmd.Context())
		check(grantkit.HierarchyFile, hierErr)

		if cfg.DatabaseURL != "" {
			fmt.Println("Database:")
			logger := newLogger()
			service, cleanup, err := newService(cfg, logger)
			if err != nil {
				check("connection", err)
			} else {
				defer cleanup()
				check("connection", service.Ping(cmd.Context()))
			}
		}

		if failed {
			return fmt.Errorf("doctor found problems")
		}
		if !quiet {
			fmt.Println("All checks passed.")
		}
		return nil
	},
}

// readJSONArtifact decodes an artifact the library has no loader for
// (the flattened output, when commands consume it as input).
func readJSONArtifact(dir, name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
