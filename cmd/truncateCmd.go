package cmd

import "github.com/spf13/cobra"

// truncateCmd empties one table cluster-wide through the seed node. This is
// the bare truncation; remove-table is the safe, full workflow.
var truncateCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Truncate a table cluster-wide at CONSISTENCY ALL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireKeyspaceTable(); err != nil {
			return err
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		res, err := c.Seed().Truncate(cfgKeyspace, cfgTable)
		if err != nil {
			return err
		}
		return reportNodeResults(cmd.OutOrStdout(), []nodeResult[commandResult]{
			{Node: c.Seed(), Value: res},
		})
	},
}
