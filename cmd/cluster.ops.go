package cmd

import "context"

// Info fans out `nodetool info` to every node.
func (c *cluster) Info(ctx context.Context) []nodeResult[commandResult] {
	return fanOut(ctx, c.nodes, func(n *node) (commandResult, error) {
		return n.Info()
	})
}

// Run fans out an arbitrary command line to every node.
func (c *cluster) Run(ctx context.Context, command string, elevate bool) []nodeResult[commandResult] {
	return fanOut(ctx, c.nodes, func(n *node) (commandResult, error) {
		return n.session.Run(command, elevate)
	})
}

// Flush flushes one table's memtables on every node.
func (c *cluster) Flush(ctx context.Context, keyspace, table string) []nodeResult[commandResult] {
	return fanOut(ctx, c.nodes, func(n *node) (commandResult, error) {
		return n.Flush(keyspace, table)
	})
}

// Repair runs a primary-range repair of one table on every node. With -pr
// on each node the cluster collectively repairs every token range once.
func (c *cluster) Repair(ctx context.Context, keyspace, table string) []nodeResult[commandResult] {
	return fanOut(ctx, c.nodes, func(n *node) (commandResult, error) {
		return n.Repair(keyspace, table)
	})
}

// Cleanup drops no-longer-owned data for one table on every node.
func (c *cluster) Cleanup(ctx context.Context, keyspace, table string) []nodeResult[commandResult] {
	return fanOut(ctx, c.nodes, func(n *node) (commandResult, error) {
		return n.Cleanup(keyspace, table)
	})
}

// Compact forces a major compaction of one table on every node.
func (c *cluster) Compact(ctx context.Context, keyspace, table string) []nodeResult[commandResult] {
	return fanOut(ctx, c.nodes, func(n *node) (commandResult, error) {
		return n.Compact(keyspace, table)
	})
}

// StopCompactions cancels every in-flight compaction of one table, each on
// the node that owns it. Compactions that finish on their own in the
// meantime cancel harmlessly. The step results carry one entry per
// cancelled task.
func (c *cluster) StopCompactions(ctx context.Context, keyspace, table string) []stepResult {
	records, err := c.FindCompactions(ctx, keyspace, table, false)
	if err != nil {
		return []stepResult{{Step: "stop-compaction", Err: err}}
	}
	var steps []stepResult
	for _, rec := range records {
		n := c.nodeByName(rec.Node)
		if n == nil {
			continue
		}
		res, err := n.StopCompaction(rec.ID)
		steps = append(steps, stepResult{Step: "stop-compaction", Node: rec.Node, Result: res, Err: err})
	}
	return steps
}

// ClearTableSnapshots removes every snapshot of one table, each on the
// node that owns the files. The step results carry one entry per snapshot.
func (c *cluster) ClearTableSnapshots(ctx context.Context, keyspace, table string) []stepResult {
	records, err := c.FindSnapshots(ctx, keyspace, table, false)
	if err != nil {
		return []stepResult{{Step: "clear-snapshot", Err: err}}
	}
	var steps []stepResult
	for _, rec := range records {
		n := c.nodeByName(rec.Node)
		if n == nil {
			continue
		}
		res, err := n.ClearSnapshot(rec.Name, rec.Keyspace)
		steps = append(steps, stepResult{Step: "clear-snapshot", Node: rec.Node, Result: res, Err: err})
	}
	return steps
}
