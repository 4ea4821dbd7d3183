// Package cmd implements the gctools command-line interface.
//
// The package organizes all CLI subcommands (health, restart, the per-table
// maintenance commands, remove-table, remove-schema, and the rest) and the
// underlying helpers for SSH connectivity, concurrent cluster fan-out,
// nodetool/cqlsh report parsing, and structured YAML report emission.
//
// New contributors should start by reading rootCmd.go to see how cobra is
// wired, remoteSession.go for the per-host SSH transport, node.go for the
// administrative operations a single host supports, cluster.go and fanOut.go
// for how those operations run across all hosts at once, and removeTable.go
// for the multi-step removal workflow built on top of them.
package cmd
