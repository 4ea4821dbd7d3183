package cmd

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// remoteSession owns one authenticated SSH transport to a single host and
// executes command lines over per-command exec channels. Commands submitted
// through one session run strictly in submission order; concurrency exists
// across sessions, never within one.
type remoteSession struct {
	info    connectionInfo
	opts    sshOptions
	timeout time.Duration // per-command bound; zero disables it
	logger  zerolog.Logger

	mu     sync.Mutex
	client sessionClient // nil until connected
}

// newRemoteSession returns an unconnected session for info. The transport
// is established lazily by Connect or by the first Run.
func newRemoteSession(info connectionInfo, opts sshOptions, timeout time.Duration, logger zerolog.Logger) *remoteSession {
	return &remoteSession{
		info:    info,
		opts:    opts,
		timeout: timeout,
		logger:  logger.With().Str("host", info.Host).Logger(),
	}
}

// Host returns the endpoint hostname. cqlsh command lines are built
// against it.
func (s *remoteSession) Host() string {
	return s.info.Host
}
