package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// errStepFailed marks workflow steps whose failure aborts the run.
var errStepFailed = errors.New("required step failed")

// tableRemovalOptions tunes the removal workflow.
type tableRemovalOptions struct {
	// DropTable issues DROP TABLE on the seed node instead of TRUNCATE,
	// removing the definition along with the data.
	DropTable bool
	// DeleteCatalogEntry removes the feature's row from the schema catalog
	// once the table is gone. Off by default so a feature can be reloaded
	// under the same name.
	DeleteCatalogEntry bool
	// Catalog and Feature locate the catalog row; required only with
	// DeleteCatalogEntry.
	Catalog string
	Feature string
	// RunID tags the run in logs and reports. Generated when empty.
	RunID string
}

// removeTable deletes one table's data cluster-wide, in the order the data
// needs it: flush everywhere, cancel the table's in-flight compactions,
// truncate (or drop) exactly once on the seed node, clear the snapshots
// the truncation left behind, then repair, cleanup and major-compact
// everywhere. A failed flush or truncation aborts the run, because every
// later step would operate on data that is still live; the remaining steps
// are best-effort per node. The returned history covers everything that
// was attempted, in order, whether or not the run aborted.
func (c *cluster) removeTable(ctx context.Context, keyspace, table string, opts tableRemovalOptions) ([]stepResult, error) {
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	log := c.logger.With().Str("run", runID).Str("keyspace", keyspace).Str("table", table).Logger()
	log.Info().Msg("removing table")

	var history []stepResult

	flushed := c.Flush(ctx, keyspace, table)
	history = append(history, stepResults("flush", flushed)...)
	if err := firstFailure("flush", flushed); err != nil {
		log.Error().Err(err).Msg("aborting removal")
		return history, err
	}

	stops := c.StopCompactions(ctx, keyspace, table)
	history = append(history, stops...)
	for _, s := range stops {
		if s.failed() {
			log.Warn().Str("node", s.Node).Msg("could not stop a compaction; continuing")
		}
	}

	seed := c.Seed()
	verb := "truncate"
	empty := seed.Truncate
	if opts.DropTable {
		verb = "drop"
		empty = seed.Drop
	}
	res, err := empty(keyspace, table)
	step := stepResult{Step: verb, Node: seed.Name(), Result: res, Err: err}
	history = append(history, step)
	if step.failed() {
		err := fmt.Errorf("%s on %s: %w", verb, seed.Name(), errStepFailed)
		log.Error().Err(err).Msg("aborting removal")
		return history, err
	}

	clears := c.ClearTableSnapshots(ctx, keyspace, table)
	history = append(history, clears...)
	for _, s := range clears {
		if s.failed() {
			log.Warn().Str("node", s.Node).Msg("could not clear a snapshot; continuing")
		}
	}

	for _, hygiene := range []struct {
		step string
		run  func(context.Context, string, string) []nodeResult[commandResult]
	}{
		{"repair", c.Repair},
		{"cleanup", c.Cleanup},
		{"compact", c.Compact},
	} {
		results := hygiene.run(ctx, keyspace, table)
		steps := stepResults(hygiene.step, results)
		history = append(history, steps...)
		for _, s := range steps {
			if s.failed() {
				log.Warn().Str("node", s.Node).Str("step", s.Step).Msg("hygiene step failed; continuing")
			}
		}
	}

	if opts.DeleteCatalogEntry {
		res, err := seed.Query(deleteCatalogRow(keyspace, opts.Catalog, opts.Feature))
		step := stepResult{Step: "delete-catalog-entry", Node: seed.Name(), Result: res, Err: err}
		history = append(history, step)
		if step.failed() {
			log.Warn().Msg("catalog entry not deleted")
		}
	}

	log.Info().Int("steps", len(history)).Msg("table removed")
	return history, nil
}
