package cmd

import (
	"fmt"
	"strings"
)

// missingTables probes each table with DESCRIBE on the seed node and
// returns the ones the cluster does not know about. cqlsh historically
// exits zero for unknown tables, so the probe inspects stderr for the
// tool's "not found" message instead of trusting the exit status.
func (c *cluster) missingTables(keyspace string, tables []string) ([]string, error) {
	var missing []string
	for _, table := range tables {
		res, err := c.Seed().Query(fmt.Sprintf("DESCRIBE %s.%s;exit;", keyspace, table))
		if err != nil {
			return nil, fmt.Errorf("describe %s.%s: %w", keyspace, table, err)
		}
		if strings.Contains(res.Stderr, "not found") {
			missing = append(missing, table)
		}
	}
	return missing, nil
}
