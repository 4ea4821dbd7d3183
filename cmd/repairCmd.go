package cmd

// repairCmd repairs one table's primary ranges on every node.
var repairCmd = newTableCmd("repair", "Run a primary-range repair of a table on every node", (*cluster).Repair)
