package cmd

import "github.com/spf13/cobra"

// statusCmd prints the ring summary as seen from the seed node. One node's
// view is enough; every member reports the same ring.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch `nodetool status` from the seed node",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		res, err := c.Seed().Status()
		if err != nil {
			return err
		}
		return reportNodeResults(cmd.OutOrStdout(), []nodeResult[commandResult]{
			{Node: c.Seed(), Value: res},
		})
	},
}
