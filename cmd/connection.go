package cmd

import "fmt"

// connectionInfo identifies exactly one reachable administrative endpoint.
// Values never change once constructed; the password stays private to the
// transport layer and must not appear in logs or reports.
type connectionInfo struct {
	Host     string
	Port     uint16
	User     string
	Password string
}

// addr renders the host:port dial target.
func (c connectionInfo) addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
