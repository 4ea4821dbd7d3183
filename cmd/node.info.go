package cmd

import "regexp"

// activeMarkers matches a `nodetool info` report in which the Gossip,
// Thrift and Native Transport subsystems all read true. The markers appear
// in the tool's fixed order; everything between them is ignored.
var activeMarkers = regexp.MustCompile(`(?s)Gossip.*true.*Thrift.*true.*Transport.*true`)

// Info runs `nodetool info` and returns the raw report.
func (n *node) Info() (commandResult, error) {
	return n.session.Run("nodetool info", false)
}

// Status runs `nodetool status` and returns the raw ring summary.
func (n *node) Status() (commandResult, error) {
	return n.session.Run("nodetool status", false)
}

// IsActive reports whether the node's info report shows Gossip, Thrift and
// Native Transport simultaneously active. A report that cannot be fetched
// is an error, not a verdict.
func (n *node) IsActive() (bool, error) {
	res, err := n.Info()
	if err != nil {
		return false, err
	}
	active := res.ExitStatus == 0 && activeMarkers.MatchString(res.Stdout)
	n.logger.Info().Bool("active", active).Msg("health check")
	return active, nil
}
