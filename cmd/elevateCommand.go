package cmd

import "strings"

// elevateCommand wraps command for privilege escalation. Commands already
// starting with sudo pass through untouched. The password is returned as
// the stdin payload for sudo's -S prompt; -p '' keeps the prompt text out
// of the captured streams.
func elevateCommand(command, password string) (line, stdin string) {
	line = command
	if !strings.HasPrefix(line, "sudo") {
		line = "sudo -S -p '' " + line
	}
	stdin = password
	if stdin != "" && !strings.HasSuffix(stdin, "\n") {
		stdin += "\n"
	}
	return line, stdin
}
