package cmd

import "fmt"

// Query executes one CQL statement through this node's cqlsh entry point
// and returns the raw result. Callers own any parsing of the output.
func (n *node) Query(stmt string) (commandResult, error) {
	return n.session.Run(cqlshCommand(n.session.Host(), stmt), false)
}

// Truncate empties one table cluster-wide from this node. CONSISTENCY ALL
// makes every replica acknowledge before cqlsh returns, so a success here
// means the data is gone everywhere, not just locally.
func (n *node) Truncate(keyspace, table string) (commandResult, error) {
	return n.Query(fmt.Sprintf("CONSISTENCY ALL;TRUNCATE %s.%s;exit;", keyspace, table))
}

// Drop removes one table's definition and data from the cluster.
func (n *node) Drop(keyspace, table string) (commandResult, error) {
	return n.Query(fmt.Sprintf("DROP TABLE %s.%s;exit;", keyspace, table))
}
