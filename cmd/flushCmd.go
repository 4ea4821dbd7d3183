package cmd

// flushCmd flushes one table's memtables on every node.
var flushCmd = newTableCmd("flush", "Flush a table's memtables to disk on every node", (*cluster).Flush)
