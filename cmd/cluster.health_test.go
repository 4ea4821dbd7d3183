package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllHealthy_TrueOnlyWhenEveryNodeActive(t *testing.T) {
	a := newFakeRunner("10.0.0.11")
	b := newFakeRunner("10.0.0.12")
	a.script("nodetool info", commandResult{Stdout: activeInfoReport})
	b.script("nodetool info", commandResult{Stdout: activeInfoReport})
	c := newTestCluster(newTestNode("a", a), newTestNode("b", b))

	require.True(t, c.AllHealthy(context.Background()))

	b.script("nodetool info", commandResult{Stdout: startingInfoReport})
	require.False(t, c.AllHealthy(context.Background()))
}

func TestAllHealthy_EveryNodeIsPolledEvenWhenFirstIsDown(t *testing.T) {
	a := newFakeRunner("10.0.0.11")
	b := newFakeRunner("10.0.0.12")
	a.script("nodetool info", commandResult{Stdout: startingInfoReport})
	b.script("nodetool info", commandResult{Stdout: activeInfoReport})
	c := newTestCluster(newTestNode("a", a), newTestNode("b", b))

	require.False(t, c.AllHealthy(context.Background()))
	require.Equal(t, 1, countRuns(a, "nodetool info"))
	require.Equal(t, 1, countRuns(b, "nodetool info"))
}

func TestAllHealthy_HealthErrorCountsAsUnhealthy(t *testing.T) {
	a := newFakeRunner("10.0.0.11")
	b := newFakeRunner("10.0.0.12")
	a.scriptErr("nodetool info", errors.New("connection refused"))
	b.script("nodetool info", commandResult{Stdout: activeInfoReport})
	c := newTestCluster(newTestNode("a", a), newTestNode("b", b))

	require.False(t, c.AllHealthy(context.Background()))
}
