package cmd

// Close tears down the underlying SSH transport and every channel open on it.
func (w sshClientWrapper) Close() error {
	if w.c == nil {
		return nil
	}
	return w.c.Close()
}
