package cmd

import "fmt"

// cqlshCommand renders a cqlsh invocation that runs stmt against host and
// exits. The statement is shell-quoted as a whole, so embedded quotes in
// CQL string literals survive the remote shell.
func cqlshCommand(host, stmt string) string {
	return fmt.Sprintf("cqlsh %s -e %s", host, shellQuote(stmt))
}
