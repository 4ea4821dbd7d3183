package cmd

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// sshOptions carries the transport settings shared by every session in a
// cluster. The zero value dials with password auth only and without host
// key verification.
type sshOptions struct {
	KeyPath     string
	Passphrase  string
	KnownHosts  string
	StrictHost  bool
	DialTimeout time.Duration
}

// dialSSH establishes an SSH transport to the endpoint described by info.
// Authentication prefers a private key when configured, then the endpoint
// password, then any reachable SSH agent.
func dialSSH(info connectionInfo, o sshOptions) (sessionClient, error) {
	var auths []ssh.AuthMethod

	if o.KeyPath != "" {
		signer, err := loadSigner(o.KeyPath, o.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if info.Password != "" {
		auths = append(auths, ssh.Password(info.Password))
	}

	// Try SSH agent if available
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	var hostKeyCB ssh.HostKeyCallback
	if o.StrictHost {
		// Try known_hosts file if present; else fail closed
		if _, err := os.Stat(o.KnownHosts); err == nil {
			cb, err := knownhosts.New(o.KnownHosts)
			if err != nil {
				return nil, fmt.Errorf("known_hosts: %w", err)
			}
			hostKeyCB = cb
		} else {
			return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", o.KnownHosts)
		}
	} else {
		hostKeyCB = ssh.InsecureIgnoreHostKey()
	}

	cfg := &ssh.ClientConfig{
		User:            info.User,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         o.DialTimeout,
	}

	// Use explicit net.Dialer for connection timeout
	target := info.addr()
	d := net.Dialer{Timeout: o.DialTimeout}
	conn, err := d.Dial("tcp", target)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, target, cfg)
	if err != nil {
		return nil, err
	}
	return sshClientWrapper{ssh.NewClient(c, chans, reqs)}, nil
}
