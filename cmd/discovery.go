package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"net"
	"strings"
)

// parseRingAddresses returns a deduplicated, in-order list of member
// addresses from `nodetool status` output. Ring rows open with a
// two-letter status/state code followed by the address; headers,
// datacenter banners and the legend fall through.
func parseRingAddresses(b []byte) []string {
	seen := make(map[string]struct{})
	var out []string
	s := bufio.NewScanner(bytes.NewReader(b))
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 2 {
			continue
		}
		if !ringStateCode(fields[0]) {
			continue
		}
		ip := fields[1]
		if v := net.ParseIP(ip); v != nil {
			if _, ok := seen[ip]; !ok {
				seen[ip] = struct{}{}
				out = append(out, ip)
			}
		}
	}
	return out
}

// ringStateCode reports whether a token is a nodetool status/state code:
// Up or Down crossed with Normal, Leaving, Joining or Moving.
func ringStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	switch s[0] {
	case 'U', 'D':
	default:
		return false
	}
	switch s[1] {
	case 'N', 'L', 'J', 'M':
	default:
		return false
	}
	return true
}

// DiscoverRing asks the seed node for its view of the ring and returns the
// member addresses it reports, so the registry can be checked against what
// the cluster itself believes.
func (c *cluster) DiscoverRing() ([]string, error) {
	res, err := c.Seed().Status()
	if err != nil {
		return nil, err
	}
	if res.failed() {
		return nil, fmt.Errorf("nodetool status exited %d", res.ExitStatus)
	}
	return parseRingAddresses([]byte(res.Stdout)), nil
}
