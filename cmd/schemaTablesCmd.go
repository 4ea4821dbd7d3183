package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// schemaTablesCmd resolves the Cassandra tables backing one feature type.
var schemaTablesCmd = &cobra.Command{
	Use:   "schema-tables",
	Short: "List the tables backing a feature type",
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
		tables, err := c.SchemaTables(cfgKeyspace, cfgCatalog, cfgFeature)
		if err != nil {
			return err
		}
		for _, table := range tables {
			cmd.Println(table)
		}
		cmd.Printf("%d tables\n", len(tables))
		return nil
	},
}
