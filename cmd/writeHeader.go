package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// writeHeader writes run metadata at the top of a command transcript
func writeHeader(w io.Writer, command string, nodes int) {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "Command: %s\n", command)
	_, _ = fmt.Fprintf(bw, "Generated: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(bw, "Node Count: %d\n", nodes)
	_, _ = fmt.Fprintln(bw, strings.Repeat("=", 80))
	_ = bw.Flush()
}
