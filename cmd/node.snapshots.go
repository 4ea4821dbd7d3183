package cmd

import (
	"fmt"
	"strings"
)

// Snapshots runs `nodetool listsnapshots` and parses every data row into
// records tagged with this node's name. Non-data lines are skipped.
func (n *node) Snapshots() ([]snapshotRecord, error) {
	res, err := n.session.Run("nodetool listsnapshots", false)
	if err != nil {
		return nil, err
	}
	if res.failed() {
		return nil, fmt.Errorf("listsnapshots exited %d", res.ExitStatus)
	}
	var records []snapshotRecord
	for _, line := range strings.Split(res.Stdout, "\n") {
		if rec, ok := parseSnapshot(line); ok {
			rec.Node = n.name
			records = append(records, rec)
		}
	}
	return records, nil
}

// ClearSnapshot deletes one named snapshot within a keyspace on this node.
func (n *node) ClearSnapshot(name, keyspace string) (commandResult, error) {
	return n.session.Run(fmt.Sprintf("nodetool clearsnapshot -t %s -- %s", name, keyspace), false)
}
