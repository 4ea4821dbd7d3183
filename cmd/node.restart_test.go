package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func countRuns(f *fakeRunner, command string) int {
	n := 0
	for _, c := range f.ran() {
		if c == command {
			n++
		}
	}
	return n
}

func TestNodeRestart_BecomesActiveAfterThreePolls(t *testing.T) {
	origSleep := sleepFunc
	t.Cleanup(func() { sleepFunc = origSleep })
	sleeps := 0
	sleepFunc = func(time.Duration) { sleeps++ }

	f := newFakeRunner("10.0.0.5")
	f.scriptSeq("nodetool info",
		commandResult{Stdout: startingInfoReport},
		commandResult{Stdout: startingInfoReport},
		commandResult{Stdout: activeInfoReport},
	)
	n := newTestNode("cass-1", f)

	require.NoError(t, n.Restart(time.Minute, 10*time.Millisecond))
	require.Equal(t, 3, countRuns(f, "nodetool info"))
	require.Equal(t, 2, sleeps)
	require.Equal(t, []string{"systemctl stop cassandra", "systemctl start cassandra"}, f.ran()[:2])
}

func TestNodeRestart_FirstPollFiresImmediately(t *testing.T) {
	origSleep := sleepFunc
	t.Cleanup(func() { sleepFunc = origSleep })
	sleeps := 0
	sleepFunc = func(time.Duration) { sleeps++ }

	f := newFakeRunner("10.0.0.5")
	f.script("nodetool info", commandResult{Stdout: activeInfoReport})
	n := newTestNode("cass-1", f)

	require.NoError(t, n.Restart(time.Minute, time.Hour))
	require.Equal(t, 1, countRuns(f, "nodetool info"))
	require.Zero(t, sleeps)
}

func TestNodeRestart_TimesOutAgainstNeverActiveNode(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.script("nodetool info", commandResult{Stdout: startingInfoReport})
	n := newTestNode("cass-1", f)

	start := time.Now()
	err := n.Restart(30*time.Millisecond, 10*time.Millisecond)
	require.Error(t, err)
	require.True(t, errors.Is(err, errRestartTimeout))
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestNodeRestart_HealthErrorsKeepPolling(t *testing.T) {
	// A health check that cannot be fetched while the service boots is not
	// terminal; the deadline is.
	origSleep := sleepFunc
	t.Cleanup(func() { sleepFunc = origSleep })
	sleepFunc = func(time.Duration) {}

	f := newFakeRunner("10.0.0.5")
	f.scriptErr("nodetool info", errors.New("connection refused"))
	n := newTestNode("cass-1", f)

	err := n.Restart(time.Millisecond, time.Microsecond)
	require.Error(t, err)
	require.True(t, errors.Is(err, errRestartTimeout))
	require.GreaterOrEqual(t, countRuns(f, "nodetool info"), 1)
}

func TestNodeRestart_StopTransportErrorIsFatal(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.scriptErr("systemctl stop cassandra", errors.New("connection reset"))
	n := newTestNode("cass-1", f)

	err := n.Restart(time.Minute, time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "stop service on cass-1")
	require.Equal(t, []string{"systemctl stop cassandra"}, f.ran())
}

func TestNodeRestart_NonZeroSystemctlExitContinues(t *testing.T) {
	f := newFakeRunner("10.0.0.5")
	f.script("systemctl stop cassandra", commandResult{ExitStatus: 1, Stderr: "inactive"})
	f.script("nodetool info", commandResult{Stdout: activeInfoReport})
	n := newTestNode("cass-1", f)

	require.NoError(t, n.Restart(time.Minute, time.Millisecond))
	require.Equal(t, 1, countRuns(f, "systemctl start cassandra"))
}
