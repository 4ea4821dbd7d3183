package cmd

import "fmt"

// Connect establishes the SSH transport. Connecting an already-connected
// session is a no-op.
func (s *remoteSession) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked()
}

func (s *remoteSession) connectLocked() error {
	if s.client != nil {
		return nil
	}
	s.logger.Debug().Msgf("connecting to %s", s.info.addr())
	client, err := dialSSHFunc(s.info, s.opts)
	if err != nil {
		return fmt.Errorf("connect %s: %w", s.info.addr(), err)
	}
	s.client = client
	return nil
}
