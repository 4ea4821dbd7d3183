package cmd

import "fmt"

// stepResult records the outcome of one (step, node) pair during a
// maintenance workflow. A workflow's history is the ordered sequence of
// these, kept complete even when the run aborts early.
type stepResult struct {
	Step   string
	Node   string
	Result commandResult
	Err    error
}

// failed reports whether the step failed outright: a dispatch error or a
// non-zero exit from the remote tool.
func (s stepResult) failed() bool {
	return s.Err != nil || s.Result.failed()
}

// stepResults converts one fan-out round into workflow history entries.
func stepResults(step string, results []nodeResult[commandResult]) []stepResult {
	out := make([]stepResult, 0, len(results))
	for _, r := range results {
		out = append(out, stepResult{Step: step, Node: r.Node.Name(), Result: r.Value, Err: r.Err})
	}
	return out
}

// firstFailure returns the abort error for a required step when any node
// failed it, nil when the whole round succeeded.
func firstFailure(step string, results []nodeResult[commandResult]) error {
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%s on %s: %w: %v", step, r.Node.Name(), errStepFailed, r.Err)
		}
		if r.Value.failed() {
			return fmt.Errorf("%s on %s: %w: exit %d", step, r.Node.Name(), errStepFailed, r.Value.ExitStatus)
		}
	}
	return nil
}
