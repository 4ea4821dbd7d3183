package cmd

import "github.com/spf13/cobra"

// infoCmd prints every node's raw `nodetool info` report.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Fetch `nodetool info` from every node",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		return reportNodeResults(cmd.OutOrStdout(), c.Info(cmd.Context()))
	},
}
