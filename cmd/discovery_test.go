package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRingAddresses(t *testing.T) {
	data := []byte(`Datacenter: dc1
===============
Status=Up/Down
|/ State=Normal/Leaving/Joining/Moving
--  Address    Load        Tokens  Owns  Host ID                               Rack
UN  10.0.0.11  312.42 KiB  256     ?     0b4f2a11-8f6d-4d4a-9f3e-2c3b1f6a7d21  rack1
UN  10.0.0.12  298.17 KiB  256     ?     4c1d9b02-77aa-4e21-8d0f-9e4a5b6c7d83  rack1
DN  10.0.0.13  301.55 KiB  256     ?     7f8e6d5c-4b3a-4291-a0ff-1e2d3c4b5a69  rack1
UL  10.0.0.12  298.17 KiB  256     ?     4c1d9b02-77aa-4e21-8d0f-9e4a5b6c7d83  rack1
`)
	// Dedup preserves first occurrence order; down and leaving nodes are
	// still ring members.
	require.Equal(t, []string{"10.0.0.11", "10.0.0.12", "10.0.0.13"}, parseRingAddresses(data))
}

func TestParseRingAddresses_IgnoresNonRingLines(t *testing.T) {
	data := []byte("UN notanip x\n-- Address\nUp the hill\nUN\n")
	require.Empty(t, parseRingAddresses(data))
}

func TestRingStateCode(t *testing.T) {
	for _, code := range []string{"UN", "DN", "UL", "UJ", "UM", "DL"} {
		require.True(t, ringStateCode(code), code)
	}
	for _, code := range []string{"", "U", "NU", "XX", "UNX", "un", "--"} {
		require.False(t, ringStateCode(code), code)
	}
}

func TestDiscoverRing_UsesSeedStatus(t *testing.T) {
	a := newFakeRunner("10.0.0.11")
	b := newFakeRunner("10.0.0.12")
	a.script("nodetool status", commandResult{Stdout: "UN  10.0.0.11  1 KiB\nUN  10.0.0.12  1 KiB\n"})
	c := newTestCluster(newTestNode("a", a), newTestNode("b", b))

	addrs, err := c.DiscoverRing()
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.11", "10.0.0.12"}, addrs)
	require.Empty(t, b.ran(), "only the seed is asked")
}

func TestDiscoverRing_NonZeroExit(t *testing.T) {
	a := newFakeRunner("10.0.0.11")
	a.script("nodetool status", commandResult{ExitStatus: 1})
	c := newTestCluster(newTestNode("a", a))

	_, err := c.DiscoverRing()
	require.Error(t, err)
	require.Contains(t, err.Error(), "nodetool status exited 1")
}

func TestDiscoverRing_TransportErrorSurfaces(t *testing.T) {
	a := newFakeRunner("10.0.0.11")
	a.scriptErr("nodetool status", errors.New("connection refused"))
	c := newTestCluster(newTestNode("a", a))

	_, err := c.DiscoverRing()
	require.Error(t, err)
}
