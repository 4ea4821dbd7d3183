package cmd

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// remoteEntry is one named row of the node registry: the SSH endpoint of a
// single administrative host. The registry document maps node names to
// these; names stay unique and entries keep document order.
type remoteEntry struct {
	Name     string
	Host     string
	Port     uint16
	User     string
	Password string
}

// UnmarshalYAML decodes one registry row. Older registry files spell the
// credentials username/secret; both spellings load into the same fields,
// with user/password winning when a document carries both.
func (e *remoteEntry) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Host     string `yaml:"host"`
		Port     uint16 `yaml:"port"`
		User     string `yaml:"user"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Secret   string `yaml:"secret"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	e.Host = raw.Host
	e.Port = raw.Port
	e.User = raw.User
	if e.User == "" {
		e.User = raw.Username
	}
	e.Password = raw.Password
	if e.Password == "" {
		e.Password = raw.Secret
	}
	return nil
}

// connectionInfo converts the registry row into the transport's endpoint
// description.
func (e remoteEntry) connectionInfo() connectionInfo {
	return connectionInfo{Host: e.Host, Port: e.Port, User: e.User, Password: e.Password}
}

// validate checks the fields every registry row must carry to be dialable.
func (e remoteEntry) validate() error {
	if strings.TrimSpace(e.Host) == "" {
		return errors.New("host is required")
	}
	if e.Port == 0 {
		return errors.New("port is required")
	}
	if strings.TrimSpace(e.User) == "" {
		return errors.New("user is required")
	}
	return nil
}
