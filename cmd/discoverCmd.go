package cmd

import "github.com/spf13/cobra"

// discoverCmd prints the ring members the seed node reports and flags the
// differences against the registry, so drift between the two is visible
// before it bites a maintenance run.
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List ring members as reported by the seed node",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()

		addrs, err := c.DiscoverRing()
		if err != nil {
			return err
		}

		registered := make(map[string]string, len(c.Nodes()))
		for _, n := range c.Nodes() {
			registered[n.session.Host()] = n.Name()
		}
		inRing := make(map[string]struct{}, len(addrs))
		for _, addr := range addrs {
			inRing[addr] = struct{}{}
			if name, ok := registered[addr]; ok {
				cmd.Printf("%s\t%s\n", addr, name)
			} else {
				cmd.Printf("%s\t(not in registry)\n", addr)
			}
		}
		for _, n := range c.Nodes() {
			if _, ok := inRing[n.session.Host()]; !ok {
				cmd.Printf("%s\t%s\t(registered but not in ring)\n", n.session.Host(), n.Name())
			}
		}
		cmd.Printf("%d ring members\n", len(addrs))
		return nil
	},
}
