package cmd

// compactCmd major-compacts one table on every node.
var compactCmd = newTableCmd("compact", "Force a major compaction of a table on every node", (*cluster).Compact)
