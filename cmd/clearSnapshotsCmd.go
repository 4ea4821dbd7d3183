package cmd

import "github.com/spf13/cobra"

// clearSnapshotsCmd deletes every snapshot of one table, each on the node
// that owns the files.
var clearSnapshotsCmd = &cobra.Command{
	Use:   "clear-snapshots",
	Short: "Delete a table's snapshots across the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireKeyspaceTable(); err != nil {
			return err
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		steps := c.ClearTableSnapshots(cmd.Context(), cfgKeyspace, cfgTable)
		printSteps(cmd.OutOrStdout(), steps)
		for _, s := range steps {
			if s.failed() {
				return errStepFailed
			}
		}
		return nil
	},
}
