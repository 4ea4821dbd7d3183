package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// verifyCmd validates the node registry. With --probe it also dials every
// node concurrently; the first unreachable node fails the probe, since a
// registry with dead endpoints should be fixed before running maintenance.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate the node registry, optionally probing SSH connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgRemotes == "" {
			return errors.New("--remotes is required (path to the node registry)")
		}
		entries, err := loadRemotes(cfgRemotes)
		if err != nil {
			return fmt.Errorf("invalid registry: %w", err)
		}

		if cfgProbe {
			var g errgroup.Group
			for _, e := range entries {
				e := e
				g.Go(func() error {
					client, err := dialSSHFunc(e.connectionInfo(), sshOptionsFromConfig())
					if err != nil {
						return fmt.Errorf("probe %s: %w", e.Name, err)
					}
					_ = client.Close()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registry OK (%d nodes)\n", len(entries))
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&cfgProbe, "probe", false, "Dial every node to verify SSH connectivity")
}
