package cmd

import (
	"fmt"
	"strings"
)

// Compactions runs `nodetool compactionstats` and parses every data row
// into records tagged with this node's name. Lines that do not have the
// data-row shape (headers, banners, progress footers) are skipped.
func (n *node) Compactions() ([]compactionRecord, error) {
	res, err := n.session.Run("nodetool compactionstats", false)
	if err != nil {
		return nil, err
	}
	if res.failed() {
		return nil, fmt.Errorf("compactionstats exited %d", res.ExitStatus)
	}
	var records []compactionRecord
	for _, line := range strings.Split(res.Stdout, "\n") {
		if rec, ok := parseCompaction(line); ok {
			rec.Node = n.name
			records = append(records, rec)
		}
	}
	return records, nil
}

// StopCompaction cancels one compaction task by id. Cancelling an id that
// already finished reports success; cancellation is best-effort, not a
// guarantee the task was still running.
func (n *node) StopCompaction(id string) (commandResult, error) {
	return n.session.Run(fmt.Sprintf("nodetool stop -id %s", id), false)
}
