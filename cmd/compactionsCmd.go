package cmd

import "github.com/spf13/cobra"

// compactionsCmd lists in-flight compactions. Without a keyspace/table it
// prints every node's raw compactionstats report; with both it prints the
// parsed records for that table only.
var compactionsCmd = &cobra.Command{
	Use:   "compactions",
	Short: "List in-flight compactions across the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()

		if cfgKeyspace == "" || cfgTable == "" {
			return reportNodeResults(cmd.OutOrStdout(), c.Run(cmd.Context(), "nodetool compactionstats", false))
		}
		records, err := c.FindCompactions(cmd.Context(), cfgKeyspace, cfgTable, cfgStrict)
		if err != nil {
			return err
		}
		for _, rec := range records {
			cmd.Printf("%s\t%s\t%s.%s\t%s\n", rec.Node, rec.ID, rec.Keyspace, rec.Table, rec.Kind)
		}
		cmd.Printf("%d compactions\n", len(records))
		return nil
	},
}

func init() {
	compactionsCmd.Flags().BoolVar(&cfgStrict, "strict", false, "Fail when any node's listing cannot be fetched")
}
