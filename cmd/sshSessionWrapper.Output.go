package cmd

import (
	"bytes"
	"strings"
)

// Output executes cmd on the underlying ssh.Session and returns stdout and
// stderr separately. A non-empty stdin is handed to the remote process and
// closed once drained, so prompts that read a single line (sudo's password
// prompt) are satisfied exactly once.
func (w sshSessionWrapper) Output(cmd, stdin string) ([]byte, []byte, error) {
	var out, errOut bytes.Buffer
	w.s.Stdout = &out
	w.s.Stderr = &errOut
	if stdin != "" {
		w.s.Stdin = strings.NewReader(stdin)
	}
	err := w.s.Run(cmd)
	return out.Bytes(), errOut.Bytes(), err
}
