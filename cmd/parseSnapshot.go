package cmd

import "regexp"

// snapshotRecord is one named on-disk snapshot as reported by
// `nodetool listsnapshots`. Snapshots are per-node artifacts; Node records
// which host owns the files.
type snapshotRecord struct {
	Name     string
	Keyspace string
	Table    string
	Node     string
}

// snapshotLine matches the leading columns of a listsnapshots data row:
// snapshot name, keyspace, table. Anchored at column zero; indented or
// punctuated lines fall through.
var snapshotLine = regexp.MustCompile(`^([0-9a-zA-Z-_]+)\s+([0-9a-zA-Z_]+)\s+([0-9a-zA-Z-_]+)`)

// parseSnapshot parses one line of listsnapshots output. ok is false for
// lines that do not have the data-row shape; callers skip those.
func parseSnapshot(line string) (snapshotRecord, bool) {
	m := snapshotLine.FindStringSubmatch(line)
	if m == nil {
		return snapshotRecord{}, false
	}
	return snapshotRecord{Name: m[1], Keyspace: m[2], Table: m[3]}, true
}
