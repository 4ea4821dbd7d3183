package cmd

import (
	"time"

	"github.com/rs/zerolog"
)

// cluster is the ordered collection of administrative nodes an operation
// fans out over. The node list never changes after construction; the first
// node doubles as the seed for operations that must run exactly once
// cluster-wide (truncation, catalog edits, ad-hoc CQL).
type cluster struct {
	nodes  []*node
	logger zerolog.Logger
}

// newCluster builds a cluster from resolved registry entries, one node per
// entry, preserving registry order. Each node gets its own exclusive
// session over the shared transport options.
func newCluster(entries []remoteEntry, opts sshOptions, timeout time.Duration, logger zerolog.Logger) *cluster {
	nodes := make([]*node, 0, len(entries))
	for _, e := range entries {
		sess := newRemoteSession(e.connectionInfo(), opts, timeout, logger)
		nodes = append(nodes, newNode(e.Name, sess, logger))
	}
	return &cluster{nodes: nodes, logger: logger}
}

// Nodes returns the ordered node list.
func (c *cluster) Nodes() []*node {
	return c.nodes
}

// Seed returns the node used for run-once operations.
func (c *cluster) Seed() *node {
	return c.nodes[0]
}

// nodeByName resolves a registry name back to its node, nil when unknown.
func (c *cluster) nodeByName(name string) *node {
	for _, n := range c.nodes {
		if n.name == name {
			return n
		}
	}
	return nil
}

// Close disconnects every node's session. Safe to call repeatedly.
func (c *cluster) Close() {
	for _, n := range c.nodes {
		n.session.Disconnect()
	}
}
