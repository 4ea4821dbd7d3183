package cmd

import (
	"bufio"
	"fmt"
	"io"
)

// printSteps summarizes workflow history, one line per (step, node)
// outcome, in execution order.
func printSteps(w io.Writer, steps []stepResult) {
	bw := bufio.NewWriter(w)
	for _, s := range steps {
		status := "ok"
		switch {
		case s.Err != nil:
			status = "error: " + s.Err.Error()
		case s.Result.failed():
			status = fmt.Sprintf("exit %d", s.Result.ExitStatus)
		}
		_, _ = fmt.Fprintf(bw, "%-22s %-16s %s\n", s.Step, s.Node, status)
	}
	_ = bw.Flush()
}
