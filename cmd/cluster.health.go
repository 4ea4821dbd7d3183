package cmd

import "context"

// AllHealthy fans out the health check and reports true only when every
// node is active. Every node is always evaluated, with no short-circuit,
// so the log carries a complete per-node picture even when the first node
// is already down.
func (c *cluster) AllHealthy(ctx context.Context) bool {
	results := fanOut(ctx, c.nodes, func(n *node) (bool, error) {
		return n.IsActive()
	})
	healthy := true
	for _, r := range results {
		switch {
		case r.Err != nil:
			c.logger.Error().Err(r.Err).Str("node", r.Node.Name()).Msg("health check failed")
			healthy = false
		case !r.Value:
			healthy = false
		}
	}
	c.logger.Info().Bool("healthy", healthy).Msg("cluster health")
	return healthy
}
