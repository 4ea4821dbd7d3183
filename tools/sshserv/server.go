// Package sshserv is an in-process SSH server that emulates a Cassandra
// administrative host for integration tests: it accepts exec requests,
// answers nodetool/cqlsh/systemctl command lines with scripted reports, and
// returns real exit statuses over the wire.
package sshserv

import (
	"bufio"
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// Host scripts the behavior of one emulated node. The zero value serves a
// healthy node with a small default schema; fields tune the script.
type Host struct {
	// InactivePolls is how many `nodetool info` reports show the service
	// still starting after a systemctl start before health flips active.
	InactivePolls int
	// Keyspace and Catalog locate the scripted schema (defaults "geo" and
	// "gmcat").
	Keyspace string
	// Catalog is the table prefix the scripted feature tables hang off.
	Catalog string

	mu           sync.Mutex
	down         bool
	inactive     int
	lastPassword string
	dropped      []string
}

// LastPassword returns the most recent password read from a sudo prompt.
func (h *Host) LastPassword() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastPassword
}

// Dropped returns the CQL statements that truncated or dropped tables, in
// arrival order.
func (h *Host) Dropped() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.dropped...)
}

func (h *Host) keyspace() string {
	if h.Keyspace == "" {
		return "geo"
	}
	return h.Keyspace
}

func (h *Host) catalog() string {
	if h.Catalog == "" {
		return "gmcat"
	}
	return h.Catalog
}

// Start launches the emulated host listening on listenAddr (e.g.,
// 127.0.0.1:20222). It accepts any user with no authentication and answers
// one exec request per session. Returns a stop function that closes the
// listener and waits for shutdown.
func Start(listenAddr string, h *Host) (func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go handleConn(conn, cfg, h)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig, h *Host) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	_ = sc
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, reqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, reqs, h)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request, h *Host) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		switch req.Type {
		case "exec":
			cmd := execCommand(req.Payload)
			_ = req.Reply(true, nil)
			out, errOut, exit := h.respond(cmd, bufio.NewReader(ch))
			if out != "" {
				_, _ = ch.Write([]byte(out))
			}
			if errOut != "" {
				_, _ = ch.Stderr().Write([]byte(errOut))
			}
			_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{uint32(exit)}))
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}

// execCommand extracts the command line from an exec request payload
// (uint32 length prefix followed by the bytes).
func execCommand(payload []byte) string {
	if len(payload) < 4 {
		return ""
	}
	n := binary.BigEndian.Uint32(payload)
	if int(n)+4 > len(payload) {
		return ""
	}
	return string(payload[4 : 4+n])
}

// respond maps one command line to its scripted output streams and exit
// status, mutating host state for the service and schema commands.
func (h *Host) respond(cmd string, stdin *bufio.Reader) (string, string, int) {
	if strings.HasPrefix(cmd, "sudo -S") {
		// The client feeds the sudo password as the first stdin line.
		pw, _ := stdin.ReadString('\n')
		h.mu.Lock()
		h.lastPassword = strings.TrimSpace(pw)
		h.mu.Unlock()
		cmd = strings.TrimSpace(strings.TrimPrefix(cmd, "sudo -S -p ''"))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case cmd == "systemctl stop cassandra":
		h.down = true
		return "", "", 0
	case cmd == "systemctl start cassandra":
		h.down = false
		h.inactive = h.InactivePolls
		return "", "", 0
	case cmd == "nodetool info":
		if h.down {
			return "", "error: The node does not appear to be running.\n", 1
		}
		if h.inactive > 0 {
			h.inactive--
			return infoReport(false), "", 0
		}
		return infoReport(true), "", 0
	case cmd == "nodetool status":
		return statusReport, "", 0
	case cmd == "nodetool compactionstats":
		return compactionReport(h.keyspace(), h.catalog()), "", 0
	case cmd == "nodetool listsnapshots":
		return snapshotReport(h.keyspace(), h.catalog()), "", 0
	case strings.HasPrefix(cmd, "nodetool "):
		return "ok\n", "", 0
	case strings.HasPrefix(cmd, "cqlsh "):
		return h.respondCQL(cmd)
	case strings.HasPrefix(cmd, "echo "):
		return strings.TrimPrefix(cmd, "echo ") + "\n", "", 0
	}
	return "", fmt.Sprintf("%s: command not found\n", cmd), 127
}

// respondCQL answers the cqlsh invocations the tools build. Callers hold
// the host lock.
func (h *Host) respondCQL(cmd string) (string, string, int) {
	stmt := extractStatement(cmd)
	upper := strings.ToUpper(stmt)
	cat := h.catalog()
	switch {
	case strings.HasPrefix(upper, "SELECT SFT"):
		return " sft\n-----\n    gdelt\n    osm\n    gdelt\n\n(3 rows)\n", "", 0
	case strings.HasPrefix(upper, "SELECT VALUE"):
		return fmt.Sprintf(" value\n-------\n    %s_gdelt_z3_v7_01\n    %s_gdelt_id_v4\n\n(2 rows)\n", cat, cat), "", 0
	case strings.HasPrefix(upper, "DESCRIBE"):
		target := strings.TrimSuffix(strings.TrimSpace(stmt[len("DESCRIBE"):]), ";exit;")
		target = strings.TrimSuffix(strings.TrimSpace(target), ";")
		if strings.Contains(target, "missing") {
			return "", fmt.Sprintf("'%s' not found in keyspace '%s'\n", target, h.keyspace()), 0
		}
		return fmt.Sprintf("CREATE TABLE %s (...)\n", target), "", 0
	case strings.Contains(upper, "TRUNCATE"), strings.HasPrefix(upper, "DROP TABLE"):
		h.dropped = append(h.dropped, stmt)
		return "", "", 0
	case strings.HasPrefix(upper, "DELETE"), strings.HasPrefix(upper, "ALTER"), strings.HasPrefix(upper, "CONSISTENCY"):
		return "", "", 0
	}
	return "", fmt.Sprintf("SyntaxException: %s\n", stmt), 2
}

// extractStatement recovers the single-quoted -e argument from a cqlsh
// command line, undoing the '\'' escape.
func extractStatement(cmd string) string {
	i := strings.Index(cmd, "-e ")
	if i < 0 {
		return ""
	}
	s := strings.TrimSpace(cmd[i+3:])
	if strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") && len(s) >= 2 {
		s = s[1 : len(s)-1]
		s = strings.ReplaceAll(s, `'\''`, "'")
	}
	return s
}

func infoReport(active bool) string {
	transports := "true"
	if !active {
		transports = "false"
	}
	return fmt.Sprintf(`ID                     : 0b4f2a11-8f6d-4d4a-9f3e-2c3b1f6a7d21
Gossip active          : true
Thrift active          : %s
Native Transport active: %s
Load                   : 312.42 KiB
Generation No          : 1692871200
Uptime (seconds)       : 88201
Heap Memory (MB)       : 512.00 / 3970.00
Data Center            : dc1
Rack                   : rack1
`, transports, transports)
}

const statusReport = `Datacenter: dc1
===============
Status=Up/Down
|/ State=Normal/Leaving/Joining/Moving
--  Address    Load        Tokens  Owns  Host ID                               Rack
UN  10.0.0.11  312.42 KiB  256     ?     0b4f2a11-8f6d-4d4a-9f3e-2c3b1f6a7d21  rack1
UN  10.0.0.12  298.17 KiB  256     ?     4c1d9b02-77aa-4e21-8d0f-9e4a5b6c7d83  rack1
DN  10.0.0.13  301.55 KiB  256     ?     7f8e6d5c-4b3a-4291-a0ff-1e2d3c4b5a69  rack1
`

func compactionReport(keyspace, catalog string) string {
	return fmt.Sprintf(`pending tasks: 1
a6c2f090-5a3d-11ee-9c1a-2b7e4f8a9d10 Compaction %s %s_gdelt_z3_v7_01 12345 67890 bytes 18.18%%
`, keyspace, catalog)
}

func snapshotReport(keyspace, catalog string) string {
	return fmt.Sprintf(`Snapshot Details:
Snapshot name Keyspace name Column family name True size Size on disk
truncated-1692871245000 %s %s_gdelt_z3_v7_01 0 13.37
truncated-1692871299000 %s %s_gdelt_id_v4 0 8.21

Total TrueDiskSpaceUsed: 0 bytes
`, keyspace, catalog, keyspace, catalog)
}
