package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/fernandezvara/grantkit"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report statistics for the flattened artifact",
	Long: `Stats recomputes the run statistics from grants_flattened.json and the
raw direct grants, without flattening again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := grantkit.NewDirStore(cfg.Artifacts)

		privs, err := store.LoadPrivileges(cmd.Context())
		if err != nil {
			return err
		}

		var doc grantkit.FlattenedDocument
		if err := readJSONArtifact(cfg.Artifacts, grantkit.FlattenedFile, &doc); err != nil {
			return err
		}

		stats := grantkit.ComputeStats(doc.GrantsFlattened, privs.GrantsPrivileges)
		out, err := yaml.Marshal(stats)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}
