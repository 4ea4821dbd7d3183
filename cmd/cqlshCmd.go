package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// cqlshCmd runs one CQL statement through the seed node's cqlsh and prints
// the raw result.
var cqlshCmd = &cobra.Command{
	Use:   "cqlsh <statement>",
	Short: "Run a CQL statement on the seed node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt := strings.TrimSpace(args[0])
		if stmt == "" {
			return errors.New("statement must not be empty")
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		res, err := c.Seed().Query(stmt)
		if err != nil {
			return err
		}
		return reportNodeResults(cmd.OutOrStdout(), []nodeResult[commandResult]{
			{Node: c.Seed(), Value: res},
		})
	},
}
