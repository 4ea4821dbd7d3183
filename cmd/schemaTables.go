package cmd

import (
	"fmt"
	"strings"
)

// deleteCatalogRow renders the CQL that removes one feature's row from a
// schema catalog.
func deleteCatalogRow(keyspace, catalog, feature string) string {
	return fmt.Sprintf("DELETE FROM %s.%s WHERE sft='%s';", keyspace, catalog, feature)
}

// FeatureTypes lists the distinct feature type names registered in one
// schema catalog, in first-seen order.
func (c *cluster) FeatureTypes(keyspace, catalog string) ([]string, error) {
	res, err := c.Seed().Query(fmt.Sprintf("SELECT sft FROM %s.%s;exit;", keyspace, catalog))
	if err != nil {
		return nil, err
	}
	if res.failed() {
		return nil, fmt.Errorf("catalog query exited %d: %s", res.ExitStatus, strings.TrimSpace(res.Stderr))
	}
	return parseFeatureTypes(res.Stdout), nil
}

// SchemaTables resolves the Cassandra tables backing one feature type by
// querying the schema catalog on the seed node.
func (c *cluster) SchemaTables(keyspace, catalog, feature string) ([]string, error) {
	res, err := c.Seed().Query(fmt.Sprintf("SELECT value FROM %s.%s WHERE sft='%s';exit;", keyspace, catalog, feature))
	if err != nil {
		return nil, err
	}
	if res.failed() {
		return nil, fmt.Errorf("catalog query exited %d: %s", res.ExitStatus, strings.TrimSpace(res.Stderr))
	}
	return parseSchemaTables(res.Stdout, catalog), nil
}

// parseFeatureTypes extracts the sft column values from cqlsh output.
// cqlsh indents data cells with four spaces, which is what separates them
// from headers, separators and the row-count footer. Duplicates collapse
// to the first occurrence.
func parseFeatureTypes(output string) []string {
	seen := make(map[string]struct{})
	var sfts []string
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "    ") {
			continue
		}
		v := strings.TrimSpace(line)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		sfts = append(sfts, v)
	}
	return sfts
}

// parseSchemaTables extracts backing table names from a catalog value
// query: the lowercased cells that start with the catalog's own name,
// which is how the catalog prefixes every table it manages.
func parseSchemaTables(output, catalog string) []string {
	prefix := strings.ToLower(catalog)
	var tables []string
	for _, line := range strings.Split(output, "\n") {
		v := strings.ToLower(strings.TrimSpace(line))
		if v != "" && strings.HasPrefix(v, prefix) {
			tables = append(tables, v)
		}
	}
	return tables
}
