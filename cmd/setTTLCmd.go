package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// setTTLCmd applies a default time-to-live to every table backing one
// feature type.
var setTTLCmd = &cobra.Command{
	Use:   "set-ttl",
	Short: "Set default_time_to_live on every table backing a feature type",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSchemaTarget(); err != nil {
			return err
		}
		if cfgFeature == "" {
			return errors.New("--feature is required")
		}
		if cfgTTL < 0 {
			return errors.New("--seconds must not be negative")
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()
		return c.SetSchemaTTL(cfgKeyspace, cfgCatalog, cfgFeature, cfgTTL)
	},
}

func init() {
	setTTLCmd.Flags().IntVar(&cfgTTL, "seconds", 0, "TTL in seconds; 0 disables expiry")
}
