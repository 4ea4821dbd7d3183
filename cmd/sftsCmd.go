package cmd

import "github.com/spf13/cobra"

// sftsCmd lists the feature type names registered in a schema catalog.
var sftsCmd = &cobra.Command{
	Use:   "sfts",
	Short: "List the feature types registered in a schema catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSchemaTarget(); err != nil {
			return err
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		sfts, err := c.FeatureTypes(cfgKeyspace, cfgCatalog)
		if err != nil {
			return err
		}
		for _, sft := range sfts {
			cmd.Println(sft)
		}
		cmd.Printf("%d feature types\n", len(sfts))
		return nil
	},
}
