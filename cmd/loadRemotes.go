package cmd

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadRemotes reads and validates the node registry: a document mapping
// node names to connection details. Entries come back in document order so
// every run walks the cluster the same way and the first entry is a stable
// seed. YAML being a superset of JSON, registries written as JSON load
// unchanged.
func loadRemotes(path string) ([]remoteEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yamlUnmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, errors.New("registry is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("registry must map node names to connection details")
	}

	entries := make([]remoteEntry, 0, len(root.Content)/2)
	seenName := make(map[string]struct{})
	seenAddr := make(map[string]struct{})
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var e remoteEntry
		if err := root.Content[i+1].Decode(&e); err != nil {
			return nil, fmt.Errorf("remote %q: %w", name, err)
		}
		e.Name = name
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("remote %q: %w", name, err)
		}
		if _, ok := seenName[name]; ok {
			return nil, fmt.Errorf("duplicate remote name %q", name)
		}
		seenName[name] = struct{}{}
		addr := e.connectionInfo().addr()
		if _, ok := seenAddr[addr]; ok {
			return nil, fmt.Errorf("duplicate remote endpoint %s", addr)
		}
		seenAddr[addr] = struct{}{}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, errors.New("registry contains no remotes")
	}
	return entries, nil
}
