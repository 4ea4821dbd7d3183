package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "gctools",
	Short: "Administer the Cassandra cluster behind a GeoMesa deployment over SSH",
	Long: "Connects to every node of a Cassandra cluster over SSH, runs nodetool and cqlsh " +
		"maintenance commands concurrently, aggregates the per-node results, and drives " +
		"multi-step workflows such as safe table removal and rolling restarts.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cfgLogLevel, cfgLogFile)
		if err != nil {
			return err
		}
		appLogger = logger
		return nil
	},
}
