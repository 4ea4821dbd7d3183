package cmd

import "github.com/rs/zerolog"

// node wraps one remote session with Cassandra administration semantics:
// the nodetool and cqlsh command lines a host understands, plus the parsers
// that turn their textual reports into records. A node exclusively owns its
// session; nothing else issues commands through it.
type node struct {
	name    string
	session runner
	logger  zerolog.Logger
}

// newNode builds the administrative endpoint named name over session.
func newNode(name string, session runner, logger zerolog.Logger) *node {
	if name == "" {
		name = session.Host()
	}
	return &node{
		name:    name,
		session: session,
		logger:  logger.With().Str("node", name).Logger(),
	}
}

// Name returns the registry name of the node.
func (n *node) Name() string {
	return n.name
}
