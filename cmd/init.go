package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers all subcommands. This
// wiring keeps one configuration surface across every subcommand and makes
// environment overrides predictable for operators and cron jobs.
func init() {
	// Persistent flags (inherited by every subcommand)
	rootCmd.PersistentFlags().StringVarP(&cfgRemotes, "remotes", "r", "", "Path to the node registry (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&cfgNodes, "nodes", "", "Comma-separated subset of registry node names to operate on")
	rootCmd.PersistentFlags().StringVarP(&cfgKeyspace, "keyspace", "k", "", "Target keyspace")
	rootCmd.PersistentFlags().StringVarP(&cfgTable, "table", "t", "", "Target table")
	rootCmd.PersistentFlags().StringVarP(&cfgCatalog, "catalog", "c", "", "Schema catalog table")
	rootCmd.PersistentFlags().StringVarP(&cfgFeature, "feature", "f", "", "Feature type name")
	rootCmd.PersistentFlags().StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.PersistentFlags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set GCTOOLS_PASSPHRASE)")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")
	rootCmd.PersistentFlags().DurationVar(&cfgCmdTimeout, "cmd-timeout", 0, "Per-command timeout (e.g., 30s). 0 disables")
	rootCmd.PersistentFlags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout")
	rootCmd.PersistentFlags().StringVar(&cfgLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfgLogFile, "log-file", "", "Also append JSON log events to this file")

	// Bind env with Viper
	_ = viper.BindPFlag("remotes", rootCmd.PersistentFlags().Lookup("remotes"))
	_ = viper.BindPFlag("nodes", rootCmd.PersistentFlags().Lookup("nodes"))
	_ = viper.BindPFlag("keyspace", rootCmd.PersistentFlags().Lookup("keyspace"))
	_ = viper.BindPFlag("table", rootCmd.PersistentFlags().Lookup("table"))
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("feature", rootCmd.PersistentFlags().Lookup("feature"))
	_ = viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	_ = viper.BindPFlag("known-hosts", rootCmd.PersistentFlags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.PersistentFlags().Lookup("strict-host-key"))
	_ = viper.BindPFlag("cmd-timeout", rootCmd.PersistentFlags().Lookup("cmd-timeout"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.PersistentFlags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))

	viper.SetEnvPrefix("GCTOOLS")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("remotes"); v != "" {
			cfgRemotes = v
		}
		if v := viper.GetString("nodes"); v != "" {
			cfgNodes = v
		}
		if v := viper.GetString("keyspace"); v != "" {
			cfgKeyspace = v
		}
		if v := viper.GetString("table"); v != "" {
			cfgTable = v
		}
		if v := viper.GetString("catalog"); v != "" {
			cfgCatalog = v
		}
		if v := viper.GetString("feature"); v != "" {
			cfgFeature = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("cmd-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgCmdTimeout = d
			}
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if v := viper.GetString("log-level"); v != "" {
			cfgLogLevel = v
		}
		if v := viper.GetString("log-file"); v != "" {
			cfgLogFile = v
		}
	})

	// Add subcommands
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(compactCmd)
	rootCmd.AddCommand(truncateCmd)
	rootCmd.AddCommand(compactionsCmd)
	rootCmd.AddCommand(stopCompactionsCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(clearSnapshotsCmd)
	rootCmd.AddCommand(removeTableCmd)
	rootCmd.AddCommand(removeSchemaCmd)
	rootCmd.AddCommand(sftsCmd)
	rootCmd.AddCommand(schemaTablesCmd)
	rootCmd.AddCommand(setTTLCmd)
	rootCmd.AddCommand(setGCGraceCmd)
	rootCmd.AddCommand(cqlshCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(discoverCmd)
}
