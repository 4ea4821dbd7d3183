package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeNodeSection writes one node's command outcome as a bounded section
// of a transcript
func writeNodeSection(w io.Writer, name string, res commandResult, runErr error) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 75))
	_, _ = fmt.Fprintf(bw, "Node: %s\n", name)
	_, _ = fmt.Fprintf(bw, "Exit Code: %d\n", res.ExitStatus)
	if runErr != nil {
		_, _ = fmt.Fprintf(bw, "Error: %v\n", runErr)
	}
	_, _ = fmt.Fprintln(bw, "Output:")
	_, _ = fmt.Fprintln(bw, "---8<---")
	_, _ = bw.WriteString(res.Stdout)
	if res.Stdout == "" || !strings.HasSuffix(res.Stdout, "\n") {
		_, _ = bw.WriteString("\n")
	}
	_, _ = fmt.Fprintln(bw, "---8<---")
	if res.Stderr != "" {
		_, _ = fmt.Fprintln(bw, "Stderr:")
		_, _ = bw.WriteString(res.Stderr)
		if !strings.HasSuffix(res.Stderr, "\n") {
			_, _ = bw.WriteString("\n")
		}
	}
	return bw.Flush()
}
