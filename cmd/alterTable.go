package cmd

import "fmt"

// SetSchemaTTL applies a default time-to-live to every table backing one
// feature type, through ALTER TABLE on the seed node. Existing rows keep
// their old TTL; only new writes pick up the change.
func (c *cluster) SetSchemaTTL(keyspace, catalog, feature string, ttl int) error {
	return c.alterSchemaTables(keyspace, catalog, feature, fmt.Sprintf("default_time_to_live = %d", ttl))
}

// SetSchemaGCGrace applies a gc_grace_seconds window to every table
// backing one feature type. Shortening it makes tombstones collectable
// sooner at the price of a smaller repair window.
func (c *cluster) SetSchemaGCGrace(keyspace, catalog, feature string, seconds int) error {
	return c.alterSchemaTables(keyspace, catalog, feature, fmt.Sprintf("gc_grace_seconds = %d", seconds))
}

// alterSchemaTables resolves the feature's backing tables and applies one
// ALTER TABLE setting to each. The first failure stops the walk so a typo
// does not get half-applied across the schema.
func (c *cluster) alterSchemaTables(keyspace, catalog, feature, setting string) error {
	tables, err := c.SchemaTables(keyspace, catalog, feature)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return fmt.Errorf("no tables found for feature %q in %s.%s", feature, keyspace, catalog)
	}
	for _, table := range tables {
		res, err := c.Seed().Query(fmt.Sprintf("ALTER TABLE %s.%s WITH %s;", keyspace, table, setting))
		if err != nil {
			return fmt.Errorf("alter %s.%s: %w", keyspace, table, err)
		}
		if res.failed() {
			return fmt.Errorf("alter %s.%s exited %d: %s", keyspace, table, res.ExitStatus, res.Stderr)
		}
		c.logger.Info().Str("table", table).Str("setting", setting).Msg("table altered")
	}
	return nil
}
