package cmd

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dialInfo() connectionInfo {
	return connectionInfo{Host: "127.0.0.1", Port: 1, User: "ops", Password: "pw"}
}

func TestDialSSH_StrictHostKeyMissingKnownHosts(t *testing.T) {
	// Fail closed: no known_hosts file and strict checking means no dial.
	o := sshOptions{KnownHosts: filepath.Join(t.TempDir(), "nope"), StrictHost: true, DialTimeout: 100 * time.Millisecond}
	_, err := dialSSH(dialInfo(), o)
	require.Error(t, err)
	require.Contains(t, err.Error(), "known_hosts file not found")
}

func TestDialSSH_StrictHostKeyWithKnownHosts(t *testing.T) {
	// With a known_hosts file present the host key setup succeeds and the
	// dial proceeds to the (refused) endpoint.
	kh := writeTemp(t, t.TempDir(), "known_hosts", "\n")
	o := sshOptions{KnownHosts: kh, StrictHost: true, DialTimeout: 50 * time.Millisecond}
	_, err := dialSSH(dialInfo(), o)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "known_hosts")
}

func TestDialSSH_KeyAuthAssembly(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", filepath.Join(t.TempDir(), "no.sock"))
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	keyPath := writeTemp(t, t.TempDir(), "id_rsa", string(pemBytes))

	o := sshOptions{KeyPath: keyPath, DialTimeout: 50 * time.Millisecond}
	_, err = dialSSH(dialInfo(), o)
	require.Error(t, err)
}

func TestDialSSH_BadKeyPath(t *testing.T) {
	o := sshOptions{KeyPath: filepath.Join(t.TempDir(), "missing_key"), DialTimeout: 50 * time.Millisecond}
	_, err := dialSSH(dialInfo(), o)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load key")
}
