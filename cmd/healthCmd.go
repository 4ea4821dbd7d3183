package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// healthCmd checks every node's Gossip/Thrift/Native Transport state and
// exits non-zero unless the whole cluster is active.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that every node reports Gossip, Thrift and Native Transport active",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		if !c.AllHealthy(cmd.Context()) {
			return errors.New("cluster is not healthy")
		}
		cmd.Println("cluster is healthy")
		return nil
	},
}
