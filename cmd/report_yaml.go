package cmd

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport is the top-level structure serialized to the report file a
// workflow leaves behind: run identity, the target it operated on, and
// every (step, node) outcome in execution order. Aborted runs keep their
// partial history and record the abort reason.
type yamlReport struct {
	Run       string     `yaml:"run"`
	Workflow  string     `yaml:"workflow"`
	Keyspace  string     `yaml:"keyspace,omitempty"`
	Table     string     `yaml:"table,omitempty"`
	Catalog   string     `yaml:"catalog,omitempty"`
	Feature   string     `yaml:"feature,omitempty"`
	Generated string     `yaml:"generated"`
	Aborted   string     `yaml:"aborted,omitempty"`
	Steps     []yamlStep `yaml:"steps"`
}

// yamlStep records the outcome of a single workflow step on one node.
type yamlStep struct {
	Step     string `yaml:"step"`
	Node     string `yaml:"node,omitempty"`
	ExitCode int    `yaml:"exit_code"`
	Error    string `yaml:"error,omitempty"`
	Stdout   string `yaml:"stdout,omitempty"`
	Stderr   string `yaml:"stderr,omitempty"`
}

// newYAMLReport constructs a report seeded with run identity and a
// generated timestamp.
func newYAMLReport(workflow, runID string) *yamlReport {
	return &yamlReport{
		Run:       runID,
		Workflow:  workflow,
		Generated: time.Now().Format(time.RFC3339),
	}
}

// addSteps appends workflow history entries to the report in order.
func (r *yamlReport) addSteps(steps []stepResult) {
	for _, s := range steps {
		entry := yamlStep{
			Step:     s.Step,
			Node:     s.Node,
			ExitCode: s.Result.ExitStatus,
			Stdout:   s.Result.Stdout,
			Stderr:   s.Result.Stderr,
		}
		if s.Err != nil {
			entry.Error = s.Err.Error()
		}
		r.Steps = append(r.Steps, entry)
	}
}

// setOutcome records the workflow's terminal error, if any.
func (r *yamlReport) setOutcome(err error) {
	if err != nil {
		r.Aborted = err.Error()
	}
}

// writeYAMLReport serializes the report to YAML with indentation and writes
// to the provided writer in a buffered manner for efficiency.
func writeYAMLReport(w io.Writer, r *yamlReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}
