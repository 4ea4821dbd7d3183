package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// requireKeyspaceTable guards the per-table commands.
func requireKeyspaceTable() error {
	if cfgKeyspace == "" {
		return errors.New("--keyspace is required")
	}
	if cfgTable == "" {
		return errors.New("--table is required")
	}
	return nil
}

// requireSchemaTarget guards the catalog-driven commands.
func requireSchemaTarget() error {
	if cfgKeyspace == "" {
		return errors.New("--keyspace is required")
	}
	if cfgCatalog == "" {
		return errors.New("--catalog is required")
	}
	return nil
}

// reportNodeResults prints one transcript section per node and returns an
// error when any node failed, so the process exit code reflects the
// cluster-wide outcome.
func reportNodeResults(w io.Writer, results []nodeResult[commandResult]) error {
	failed := 0
	for _, r := range results {
		if err := writeNodeSection(w, r.Node.Name(), r.Value, r.Err); err != nil {
			return fmt.Errorf("failed writing output: %w", err)
		}
		if r.Err != nil || r.Value.failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d nodes failed", failed, len(results))
	}
	return nil
}

// newTableCmd builds one of the per-table cluster-wide commands, which
// differ only in the node operation they fan out.
func newTableCmd(use, short string, op func(*cluster, context.Context, string, string) []nodeResult[commandResult]) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireKeyspaceTable(); err != nil {
				return err
			}
			c, err := openCluster()
			if err != nil {
				return err
			}
			defer c.Close()
			results := op(c, cmd.Context(), cfgKeyspace, cfgTable)
			return reportNodeResults(cmd.OutOrStdout(), results)
		},
	}
}
