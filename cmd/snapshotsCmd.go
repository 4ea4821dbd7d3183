package cmd

import "github.com/spf13/cobra"

// snapshotsCmd lists snapshots. Without a keyspace/table it prints every
// node's raw listsnapshots report; with both it prints the parsed records
// for that table only.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List snapshots across the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()

		if cfgKeyspace == "" || cfgTable == "" {
			return reportNodeResults(cmd.OutOrStdout(), c.Run(cmd.Context(), "nodetool listsnapshots", false))
		}
		records, err := c.FindSnapshots(cmd.Context(), cfgKeyspace, cfgTable, cfgStrict)
		if err != nil {
			return err
		}
		for _, rec := range records {
			cmd.Printf("%s\t%s\t%s.%s\n", rec.Node, rec.Name, rec.Keyspace, rec.Table)
		}
		cmd.Printf("%d snapshots\n", len(records))
		return nil
	},
}

func init() {
	snapshotsCmd.Flags().BoolVar(&cfgStrict, "strict", false, "Fail when any node's listing cannot be fetched")
}
