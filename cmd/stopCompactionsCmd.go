package cmd

import "github.com/spf13/cobra"

// stopCompactionsCmd cancels every in-flight compaction of one table, each
// on the node running it.
var stopCompactionsCmd = &cobra.Command{
	Use:   "stop-compactions",
	Short: "Cancel a table's in-flight compactions across the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireKeyspaceTable(); err != nil {
			return err
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		steps := c.StopCompactions(cmd.Context(), cfgKeyspace, cfgTable)
		printSteps(cmd.OutOrStdout(), steps)
		for _, s := range steps {
			if s.failed() {
				return errStepFailed
			}
		}
		return nil
	},
}
