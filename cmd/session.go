package cmd

// session is a minimal interface for running a command and closing
type session interface {
	Output(cmd, stdin string) (stdout, stderr []byte, err error)
	Close() error
}
