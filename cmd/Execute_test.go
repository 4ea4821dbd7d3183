package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Happy path: Execute() should not call exitFunc when rootCmd succeeds.
func TestExecute_Success_NoExit(t *testing.T) {
	resetConfig()
	stubDialCLI(t, fakeExecSession{stdout: []byte("ok\n")})

	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	calledExit := 0
	exitFunc = func(code int) { calledExit = code }

	reg := writeTemp(t, t.TempDir(), "remotes.yaml", registryYAML)
	rootCmd.SetArgs([]string{"verify", "--remotes", reg})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	Execute()

	require.Equal(t, 0, calledExit)
	require.Contains(t, out.String(), "Registry OK (3 nodes)")
}

// Sad path: a failing command should land on stderr and exit 1.
func TestExecute_Failure_StderrAndExit1(t *testing.T) {
	resetConfig()

	rootCmd.SetArgs([]string{"health"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)

	// Capture process stderr where Execute prints the final error
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	code := 0
	origExit := exitFunc
	exitFunc = func(c int) { code = c }
	defer func() { exitFunc = origExit }()

	Execute()

	_ = w.Close()
	var captured bytes.Buffer
	_, _ = captured.ReadFrom(r)
	require.Contains(t, captured.String(), "--remotes is required")
	require.Equal(t, 1, code)
}
