package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNode_DefaultsNameToHost(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	require.Equal(t, "10.0.0.5", newTestNode("", f).Name())
	require.Equal(t, "cass-1", newTestNode("cass-1", f).Name())
}

func TestNodeMaintenance_CommandLines(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	n := newTestNode("cass-1", f)

	_, _ = n.Flush("geo", "tbl")
	_, _ = n.Repair("geo", "tbl")
	_, _ = n.Cleanup("geo", "tbl")
	_, _ = n.Compact("geo", "tbl")

	require.Equal(t, []string{
		"nodetool flush -- geo tbl",
		"nodetool repair -pr geo tbl",
		"nodetool cleanup geo tbl",
		"nodetool compact geo tbl",
	}, f.ran())
	require.Equal(t, []bool{false, false, false, false}, f.elevated)
}

func TestNodeIsActive_AllTransportsUp(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.script("nodetool info", commandResult{Stdout: activeInfoReport})
	n := newTestNode("cass-1", f)

	active, err := n.IsActive()
	require.NoError(t, err)
	require.True(t, active)
}

func TestNodeIsActive_TransportsDown(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.script("nodetool info", commandResult{Stdout: startingInfoReport})
	n := newTestNode("cass-1", f)

	active, err := n.IsActive()
	require.NoError(t, err)
	require.False(t, active)
}

func TestNodeIsActive_NonZeroExitIsInactive(t *testing.T) {
	// A healthy-looking report with a failing exit must not count as active.
	f := newFakeRunner("10.0.0.5")
	f.script("nodetool info", commandResult{Stdout: activeInfoReport, ExitStatus: 1})
	n := newTestNode("cass-1", f)

	active, err := n.IsActive()
	require.NoError(t, err)
	require.False(t, active)
}

func TestNodeIsActive_TransportErrorSurfaces(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.scriptErr("nodetool info", errors.New("connection refused"))
	n := newTestNode("cass-1", f)

	_, err := n.IsActive()
	require.Error(t, err)
}

func TestNodeCompactions_ParsesAndTagsRecords(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.script("nodetool compactionstats", commandResult{Stdout: "pending tasks: 2\n" +
		"c1 Compaction geo tbl1 10 20 bytes 50.00%\n" +
		"c2 Cleanup geo tbl2 5 50 bytes 10.00%\n"})
	n := newTestNode("cass-1", f)

	records, err := n.Compactions()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, compactionRecord{ID: "c1", Kind: "Compaction", Keyspace: "geo", Table: "tbl1", Node: "cass-1"}, records[0])
	require.Equal(t, "cass-1", records[1].Node)
}

func TestNodeCompactions_NonZeroExit(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.script("nodetool compactionstats", commandResult{ExitStatus: 2})
	n := newTestNode("cass-1", f)

	_, err := n.Compactions()
	require.Error(t, err)
	require.Contains(t, err.Error(), "compactionstats exited 2")
}

func TestNodeSnapshots_ParsesRows(t *testing.T) {
	// The column-zero header row has the data-row shape and comes back as a
	// record too; table-scoped filtering downstream discards it.
	f := newFakeRunner("10.0.0.5")
	f.script("nodetool listsnapshots", commandResult{Stdout: "Snapshot Details:\n" +
		"Snapshot name Keyspace name Column family name True size\n" +
		"truncated-1692871245000 geo tbl1 0 13.37\n" +
		"\nTotal TrueDiskSpaceUsed: 0 bytes\n"})
	n := newTestNode("cass-1", f)

	records, err := n.Snapshots()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, snapshotRecord{Name: "truncated-1692871245000", Keyspace: "geo", Table: "tbl1", Node: "cass-1"}, records[1])
}

func TestNodeStopCompactionAndClearSnapshot_CommandLines(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	n := newTestNode("cass-1", f)

	_, _ = n.StopCompaction("a6c2f090-5a3d-11ee-9c1a-2b7e4f8a9d10")
	_, _ = n.ClearSnapshot("truncated-1692871245000", "geo")

	require.Equal(t, []string{
		"nodetool stop -id a6c2f090-5a3d-11ee-9c1a-2b7e4f8a9d10",
		"nodetool clearsnapshot -t truncated-1692871245000 -- geo",
	}, f.ran())
}

func TestNodeQuery_BuildsCqlshLine(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	n := newTestNode("cass-1", f)

	_, _ = n.Query("SELECT sft FROM geo.gmcat;exit;")
	require.Equal(t, []string{"cqlsh 10.0.0.5 -e 'SELECT sft FROM geo.gmcat;exit;'"}, f.ran())
}

func TestNodeTruncateAndDrop_CommandLines(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	n := newTestNode("cass-1", f)

	_, _ = n.Truncate("geo", "tbl1")
	_, _ = n.Drop("geo", "tbl1")

	require.Equal(t, []string{
		"cqlsh 10.0.0.5 -e 'CONSISTENCY ALL;TRUNCATE geo.tbl1;exit;'",
		"cqlsh 10.0.0.5 -e 'DROP TABLE geo.tbl1;exit;'",
	}, f.ran())
}

func TestNodeService_ElevatesSystemctl(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	n := newTestNode("cass-1", f)

	_, _ = n.StopService()
	_, _ = n.StartService()

	require.Equal(t, []string{"systemctl stop cassandra", "systemctl start cassandra"}, f.ran())
	require.Equal(t, []bool{true, true}, f.elevated)
}
