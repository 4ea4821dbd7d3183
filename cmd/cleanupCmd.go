package cmd

// cleanupCmd drops no-longer-owned data for one table on every node.
var cleanupCmd = newTableCmd("cleanup", "Drop data each node no longer owns for a table", (*cluster).Cleanup)
