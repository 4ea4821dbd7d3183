package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// openCluster loads the registry, applies the --nodes subset, and builds
// the cluster a subcommand operates on. The caller owns Close.
func openCluster() (*cluster, error) {
	if cfgRemotes == "" {
		return nil, errors.New("--remotes is required (path to the node registry)")
	}
	entries, err := loadRemotes(cfgRemotes)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	if cfgNodes != "" {
		entries, err = selectRemotes(entries, strings.Split(cfgNodes, ","))
		if err != nil {
			return nil, err
		}
	}
	return newCluster(entries, sshOptionsFromConfig(), cfgCmdTimeout, appLogger), nil
}

// selectRemotes filters entries down to the named subset, preserving
// registry order. Unknown names are an error so a typo cannot silently
// shrink the operation's reach.
func selectRemotes(entries []remoteEntry, names []string) ([]remoteEntry, error) {
	want := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		want[name] = struct{}{}
	}
	if len(want) == 0 {
		return nil, errors.New("--nodes selects no nodes")
	}
	var selected []remoteEntry
	for _, e := range entries {
		if _, ok := want[e.Name]; ok {
			selected = append(selected, e)
			delete(want, e.Name)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for name := range want {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown node names: %s", strings.Join(unknown, ", "))
	}
	return selected, nil
}

// sshOptionsFromConfig folds the transport flags into dialing options.
func sshOptionsFromConfig() sshOptions {
	return sshOptions{
		KeyPath:     cfgKeyPath,
		Passphrase:  cfgPassphrase,
		KnownHosts:  cfgKnownHosts,
		StrictHost:  cfgStrictHost,
		DialTimeout: cfgConnTimeout,
	}
}
