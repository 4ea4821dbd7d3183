package cmd

// sessionClient is a minimal interface to obtain command sessions from an
// established transport and to release the transport itself.
type sessionClient interface {
	NewSession() (session, error)
	Close() error
}
