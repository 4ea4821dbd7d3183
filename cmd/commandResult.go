package cmd

// commandResult captures one remote command execution: the two output
// streams, separated, and the remote exit status. Never mutated after
// creation. ExitStatus is -1 when the command could not be dispatched or
// the remote side reported no status.
type commandResult struct {
	Stdout     string
	Stderr     string
	ExitStatus int
}

// failed reports whether the remote process exited non-zero or never
// produced an exit status at all.
func (r commandResult) failed() bool {
	return r.ExitStatus != 0
}
