package cmd

import "fmt"

// Flush writes one table's memtables to disk on this node. nodetool may
// return before the background flush work has finished.
func (n *node) Flush(keyspace, table string) (commandResult, error) {
	return n.session.Run(fmt.Sprintf("nodetool flush -- %s %s", keyspace, table), false)
}

// Repair runs a primary-range anti-entropy repair for one table. nodetool
// blocks until the repair session completes, so this can run for a long
// time on large tables.
func (n *node) Repair(keyspace, table string) (commandResult, error) {
	return n.session.Run(fmt.Sprintf("nodetool repair -pr %s %s", keyspace, table), false)
}

// Cleanup drops data this node no longer owns for one table.
func (n *node) Cleanup(keyspace, table string) (commandResult, error) {
	return n.session.Run(fmt.Sprintf("nodetool cleanup %s %s", keyspace, table), false)
}

// Compact forces a major compaction of one table on this node.
func (n *node) Compact(keyspace, table string) (commandResult, error) {
	return n.session.Run(fmt.Sprintf("nodetool compact %s %s", keyspace, table), false)
}
