package cmd

// Disconnect releases the transport. It is safe to call on a session that
// never connected, and safe to call repeatedly from any exit path.
func (s *remoteSession) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return
	}
	s.logger.Debug().Msgf("disconnecting from %s", s.info.addr())
	_ = s.client.Close()
	s.client = nil
}
