package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// setGCGraceCmd applies a gc_grace_seconds window to every table backing
// one feature type.
var setGCGraceCmd = &cobra.Command{
	Use:   "set-gc-grace",
	Short: "Set gc_grace_seconds on every table backing a feature type",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSchemaTarget(); err != nil {
			return err
		}
		if cfgFeature == "" {
			return errors.New("--feature is required")
		}
		if cfgGCGrace < 0 {
			return errors.New("--seconds must not be negative")
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		return c.SetSchemaGCGrace(cfgKeyspace, cfgCatalog, cfgFeature, cfgGCGrace)
	},
}

func init() {
	setGCGraceCmd.Flags().IntVar(&cfgGCGrace, "seconds", 864000, "Tombstone grace period in seconds")
}
