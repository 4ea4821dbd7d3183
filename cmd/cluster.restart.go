package cmd

import (
	"fmt"
	"time"
)

// Restart performs a rolling restart: nodes restart one at a time in
// registry order, so the cluster keeps serving while each member cycles.
// The first node that fails to come back aborts the roll; restarting the
// rest into a cluster that already lost quorum would only widen the outage.
func (c *cluster) Restart(timeout, pollInterval time.Duration) error {
	for _, n := range c.nodes {
		c.logger.Info().Str("node", n.Name()).Msg("restarting node")
		if err := n.Restart(timeout, pollInterval); err != nil {
			return fmt.Errorf("rolling restart halted: %w", err)
		}
	}
	c.logger.Info().Int("nodes", len(c.nodes)).Msg("rolling restart complete")
	return nil
}
