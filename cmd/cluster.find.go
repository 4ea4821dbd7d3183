package cmd

import (
	"context"
	"fmt"
)

// FindCompactions fans out the compaction listing and returns the records
// matching keyspace and table, tagged with their owning node. A node whose
// listing fails contributes zero records unless strict is set, in which
// case the first such failure aborts the find.
func (c *cluster) FindCompactions(ctx context.Context, keyspace, table string, strict bool) ([]compactionRecord, error) {
	results := fanOut(ctx, c.nodes, func(n *node) ([]compactionRecord, error) {
		return n.Compactions()
	})
	var found []compactionRecord
	for _, r := range results {
		if r.Err != nil {
			if strict {
				return nil, fmt.Errorf("compactions on %s: %w", r.Node.Name(), r.Err)
			}
			c.logger.Error().Err(r.Err).Str("node", r.Node.Name()).Msg("compaction listing failed")
			continue
		}
		for _, rec := range r.Value {
			if rec.Keyspace == keyspace && rec.Table == table {
				found = append(found, rec)
			}
		}
	}
	c.logger.Info().Int("count", len(found)).Msgf("compactions of %s.%s in cluster", keyspace, table)
	return found, nil
}

// FindSnapshots is the snapshot counterpart of FindCompactions: the
// cluster-wide snapshot records for one table, zero records per failed
// node unless strict.
func (c *cluster) FindSnapshots(ctx context.Context, keyspace, table string, strict bool) ([]snapshotRecord, error) {
	results := fanOut(ctx, c.nodes, func(n *node) ([]snapshotRecord, error) {
		return n.Snapshots()
	})
	var found []snapshotRecord
	for _, r := range results {
		if r.Err != nil {
			if strict {
				return nil, fmt.Errorf("snapshots on %s: %w", r.Node.Name(), r.Err)
			}
			c.logger.Error().Err(r.Err).Str("node", r.Node.Name()).Msg("snapshot listing failed")
			continue
		}
		for _, rec := range r.Value {
			if rec.Keyspace == keyspace && rec.Table == table {
				found = append(found, rec)
			}
		}
	}
	c.logger.Info().Int("count", len(found)).Msgf("snapshots of %s.%s in cluster", keyspace, table)
	return found, nil
}
