package cmd

import (
	"context"
	"fmt"
	"strings"
)

// removeSchema removes every Cassandra table backing one feature type:
// resolve the backing tables from the schema catalog, verify all of them
// exist, then run the table-removal workflow for each in turn. The catalog
// row itself is deleted once, after the last table, when the options ask
// for it. Any table's aborted removal halts the schema removal there; the
// history up to that point is still returned.
func (c *cluster) removeSchema(ctx context.Context, keyspace, catalog, feature string, opts tableRemovalOptions) ([]stepResult, error) {
	log := c.logger.With().Str("keyspace", keyspace).Str("catalog", catalog).Str("feature", feature).Logger()

	tables, err := c.SchemaTables(keyspace, catalog, feature)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables found for feature %q in %s.%s", feature, keyspace, catalog)
	}
	missing, err := c.missingTables(keyspace, tables)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog names tables the cluster does not have: %s", strings.Join(missing, ", "))
	}
	log.Info().Strs("tables", tables).Msg("removing schema")

	var history []stepResult
	for _, table := range tables {
		perTable := opts
		perTable.DeleteCatalogEntry = false
		h, err := c.removeTable(ctx, keyspace, table, perTable)
		history = append(history, h...)
		if err != nil {
			return history, fmt.Errorf("remove %s.%s: %w", keyspace, table, err)
		}
	}

	if opts.DeleteCatalogEntry {
		seed := c.Seed()
		res, err := seed.Query(deleteCatalogRow(keyspace, catalog, feature))
		step := stepResult{Step: "delete-catalog-entry", Node: seed.Name(), Result: res, Err: err}
		history = append(history, step)
		if step.failed() {
			log.Warn().Msg("catalog entry not deleted")
		}
	}

	log.Info().Int("tables", len(tables)).Msg("schema removed")
	return history, nil
}
