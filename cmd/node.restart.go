package cmd

import (
	"errors"
	"fmt"
	"time"
)

// errRestartTimeout reports that a restarted node did not become active
// within the allotted window.
var errRestartTimeout = errors.New("node did not become active before the timeout")

// Restart stops and starts the Cassandra service, then polls the health
// check until the node reports active or timeout elapses. Stop and start
// are both issued unconditionally; the service manager is idempotent for
// either state. The first poll fires immediately after start, later polls
// are separated by pollInterval. A timeout is surfaced, never swallowed.
func (n *node) Restart(timeout, pollInterval time.Duration) error {
	for _, step := range []struct {
		name string
		run  func() (commandResult, error)
	}{
		{"stop", n.StopService},
		{"start", n.StartService},
	} {
		res, err := step.run()
		if err != nil {
			return fmt.Errorf("%s service on %s: %w", step.name, n.name, err)
		}
		if res.failed() {
			// The health poll decides the outcome; a grumpy service
			// manager exit is worth recording but not fatal here.
			n.logger.Error().Int("exit", res.ExitStatus).Msgf("systemctl %s returned non-zero", step.name)
		}
	}

	n.logger.Info().Dur("timeout", timeout).Msg("waiting for node to come back")
	start := time.Now()
	for {
		active, err := n.IsActive()
		if err != nil {
			// Expected while the service boots; the deadline still applies.
			n.logger.Warn().Err(err).Msg("health check failed while polling")
		} else if active {
			n.logger.Info().Dur("took", time.Since(start)).Msg("node is active again")
			return nil
		}
		if time.Since(start) >= timeout {
			return fmt.Errorf("%w: %s after %s", errRestartTimeout, n.name, timeout)
		}
		sleepFunc(pollInterval)
	}
}
