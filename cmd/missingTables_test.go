package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingTables_ChecksStderrNotExitStatus(t *testing.T) {
	// cqlsh exits zero for an unknown table; the "not found" complaint on
	// stderr is the only reliable signal.
	a := newFakeRunner("10.0.0.11")
	a.script("cqlsh 10.0.0.11 -e 'DESCRIBE geo.t1;exit;'",
		commandResult{Stdout: "CREATE TABLE geo.t1 (...)\n"})
	a.script("cqlsh 10.0.0.11 -e 'DESCRIBE geo.t2;exit;'",
		commandResult{Stderr: "'t2' not found in keyspace 'geo'\n"})
	c := newTestCluster(newTestNode("a", a))

	missing, err := c.missingTables("geo", []string{"t1", "t2"})
	require.NoError(t, err)
	require.Equal(t, []string{"t2"}, missing)
}

func TestMissingTables_TransportErrorSurfaces(t *testing.T) {
	a := newFakeRunner("10.0.0.11")
	a.scriptErr("cqlsh 10.0.0.11 -e 'DESCRIBE geo.t1;exit;'", errors.New("connection refused"))
	c := newTestCluster(newTestNode("a", a))

	_, err := c.missingTables("geo", []string{"t1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "describe geo.t1")
}
