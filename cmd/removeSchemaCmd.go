package cmd

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// removeSchemaCmd removes every table backing one feature type, resolving
// the tables from the schema catalog first.
var removeSchemaCmd = &cobra.Command{
	Use:   "remove-schema",
	Short: "Safely remove every table backing a feature type",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSchemaTarget(); err != nil {
			return err
		}
		if cfgFeature == "" {
			return errors.New("--feature is required")
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
		history, runErr := c.removeSchema(cmd.Context(), cfgKeyspace, cfgCatalog, cfgFeature, opts)
		printSteps(cmd.OutOrStdout(), history)

		if cfgOutPath != "" {
			r := newYAMLReport("remove-schema", opts.RunID)
			r.Keyspace = cfgKeyspace
			r.Catalog = cfgCatalog
			r.Feature = cfgFeature
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
	removeSchemaCmd.Flags().BoolVar(&cfgDropTable, "drop", false, "DROP each table instead of truncating it")
	removeSchemaCmd.Flags().BoolVar(&cfgDeleteCatalog, "delete-catalog-entry", false, "Also delete the feature's schema catalog row")
	removeSchemaCmd.Flags().StringVarP(&cfgOutPath, "out", "o", "", "Write a YAML report of every step to this path")
}
