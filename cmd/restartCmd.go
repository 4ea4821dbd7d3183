package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// restartCmd rolls the Cassandra service across the cluster, one node at a
// time, waiting for each to report active before moving on. Use --nodes to
// restart a subset.
var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Rolling-restart the Cassandra service across the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Restart(cfgRestartTimeout, cfgPollInterval)
	},
}

func init() {
	restartCmd.Flags().DurationVar(&cfgRestartTimeout, "restart-timeout", 300*time.Second, "How long to wait for a node to report active after restart")
	restartCmd.Flags().DurationVar(&cfgPollInterval, "poll-interval", 2*time.Second, "Delay between health polls while waiting")
}
