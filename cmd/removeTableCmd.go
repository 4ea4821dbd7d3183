package cmd

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// removeTableCmd runs the full table-removal workflow: flush, stop
// compactions, truncate (or drop), clear snapshots, repair, cleanup,
// compact. With --out it leaves a YAML report of every step behind.
var removeTableCmd = &cobra.Command{
	Use:   "remove-table",
	Short: "Safely remove a table's data cluster-wide",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireKeyspaceTable(); err != nil {
			return err
		}
		if cfgDeleteCatalog && (cfgCatalog == "" || cfgFeature == "") {
			return errors.New("--delete-catalog-entry needs --catalog and --feature")
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()

		opts := tableRemovalOptions{
			DropTable:          cfgDropTable,
			DeleteCatalogEntry: cfgDeleteCatalog,
			Catalog:            cfgCatalog,
			Feature:            cfgFeature,
			RunID:              uuid.NewString(),
		}
		history, runErr := c.removeTable(cmd.Context(), cfgKeyspace, cfgTable, opts)
		printSteps(cmd.OutOrStdout(), history)

		if cfgOutPath != "" {
			r := newYAMLReport("remove-table", opts.RunID)
			r.Keyspace = cfgKeyspace
			r.Table = cfgTable
			r.addSteps(history)
			r.setOutcome(runErr)
			if err := saveReport(cfgOutPath, r); err != nil {
				return err
			}
		}
		return runErr
	},
}

func init() {
	removeTableCmd.Flags().BoolVar(&cfgDropTable, "drop", false, "DROP the table instead of truncating it")
	removeTableCmd.Flags().BoolVar(&cfgDeleteCatalog, "delete-catalog-entry", false, "Also delete the feature's schema catalog row")
	removeTableCmd.Flags().StringVarP(&cfgOutPath, "out", "o", "", "Write a YAML report of every step to this path")
}
