package cmd

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Compile-time checks: the fakes implement the seams they stand in for.
var _ runner = (*fakeRunner)(nil)
var _ session = (*fakeExecSession)(nil)
var _ sessionClient = (*fakeSessionClient)(nil)

// fakeRunner scripts per-command results for one node and records every
// command line it was asked to run, in order.
type fakeRunner struct {
	mu          sync.Mutex
	host        string
	connectErr  error
	results     map[string]commandResult
	errs        map[string]error
	seqs        map[string][]commandResult
	commands    []string
	elevated    []bool
	disconnects int
}

func newFakeRunner(host string) *fakeRunner {
	return &fakeRunner{
		host:    host,
		results: make(map[string]commandResult),
		errs:    make(map[string]error),
		seqs:    make(map[string][]commandResult),
	}
}

// script pins the result for one exact command line.
func (f *fakeRunner) script(command string, res commandResult) {
	f.results[command] = res
}

// scriptErr makes one exact command line fail at the transport level.
func (f *fakeRunner) scriptErr(command string, err error) {
	f.errs[command] = err
}

// scriptSeq pins successive results for repeated runs of one command line;
// once drained, script/default results apply again.
func (f *fakeRunner) scriptSeq(command string, seq ...commandResult) {
	f.seqs[command] = seq
}

func (f *fakeRunner) Connect() error { return f.connectErr }

func (f *fakeRunner) Run(command string, elevate bool) (commandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, command)
	f.elevated = append(f.elevated, elevate)
	if err, ok := f.errs[command]; ok {
		return commandResult{ExitStatus: -1}, err
	}
	if seq := f.seqs[command]; len(seq) > 0 {
		res := seq[0]
		f.seqs[command] = seq[1:]
		return res, nil
	}
	if res, ok := f.results[command]; ok {
		return res, nil
	}
	return commandResult{}, nil
}

func (f *fakeRunner) Disconnect() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnects++
}

func (f *fakeRunner) Host() string { return f.host }

// ran returns a copy of the command lines run so far.
func (f *fakeRunner) ran() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

func newTestNode(name string, f *fakeRunner) *node {
	return newNode(name, f, zerolog.Nop())
}

func newTestCluster(nodes ...*node) *cluster {
	return &cluster{nodes: nodes, logger: zerolog.Nop()}
}

// activeInfoReport is a nodetool info transcript with every transport up.
const activeInfoReport = `ID                     : 0b4f2a11-8f6d-4d4a-9f3e-2c3b1f6a7d21
Gossip active          : true
Thrift active          : true
Native Transport active: true
Load                   : 312.42 KiB
Data Center            : dc1
Rack                   : rack1
`

// startingInfoReport is the same node mid-boot: gossiping, not serving.
const startingInfoReport = `ID                     : 0b4f2a11-8f6d-4d4a-9f3e-2c3b1f6a7d21
Gossip active          : true
Thrift active          : false
Native Transport active: false
Load                   : 312.42 KiB
Data Center            : dc1
Rack                   : rack1
`

// fakeExecSession is a scripted exec channel for remoteSession tests.
type fakeExecSession struct {
	stdout []byte
	stderr []byte
	err    error
	delay  time.Duration
	cmd    string
	stdin  string
	closed bool
}

func (f *fakeExecSession) Output(cmd, stdin string) ([]byte, []byte, error) {
	f.cmd = cmd
	f.stdin = stdin
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.stdout, f.stderr, f.err
}

func (f *fakeExecSession) Close() error {
	f.closed = true
	return nil
}

// fakeSessionClient hands out one scripted session per NewSession call.
type fakeSessionClient struct {
	sess    *fakeExecSession
	newErr  error
	created int
	closed  bool
}

func (c *fakeSessionClient) NewSession() (session, error) {
	if c.newErr != nil {
		return nil, c.newErr
	}
	c.created++
	return c.sess, nil
}

func (c *fakeSessionClient) Close() error {
	c.closed = true
	return nil
}
