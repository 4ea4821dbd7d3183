package cmd

import "regexp"

// compactionRecord is one in-flight background compaction task as reported
// by `nodetool compactionstats`. A record is only meaningful on the node
// that reported it; Node carries that origin through cluster aggregation.
type compactionRecord struct {
	ID       string
	Kind     string
	Keyspace string
	Table    string
	Node     string
}

// compactionLine matches the leading columns of a compactionstats data row:
// id, compaction type, keyspace, table. Anchored at column zero so the
// indented header row and progress footers fall through.
var compactionLine = regexp.MustCompile(`^([0-9a-zA-Z-_]+)\s+([0-9a-zA-Z_]+)\s+([0-9a-zA-Z-_]+)\s+([0-9a-zA-Z-_]+)`)

// parseCompaction parses one line of compactionstats output. ok is false
// for lines that do not have the data-row shape; callers skip those.
func parseCompaction(line string) (compactionRecord, bool) {
	m := compactionLine.FindStringSubmatch(line)
	if m == nil {
		return compactionRecord{}, false
	}
	return compactionRecord{ID: m[1], Kind: m[2], Keyspace: m[3], Table: m[4]}, true
}
