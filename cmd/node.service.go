package cmd

// StopService stops the Cassandra service through the node's service
// manager. Stopping an already-stopped service succeeds.
func (n *node) StopService() (commandResult, error) {
	return n.session.Run("systemctl stop cassandra", true)
}

// StartService starts the Cassandra service. Idempotent like StopService.
func (n *node) StartService() (commandResult, error) {
	return n.session.Run("systemctl start cassandra", true)
}
