package cmd

import (
	"time"

	"github.com/rs/zerolog"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// appLogger is the sink handed to every cluster component. It is replaced
// by the root command's PersistentPreRunE once flags are parsed; until then
// it stays a no-op so helpers can log safely from tests.
var appLogger = zerolog.Nop()

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgRemotes        string
	cfgNodes          string
	cfgKeyspace       string
	cfgTable          string
	cfgCatalog        string
	cfgFeature        string
	cfgKeyPath        string
	cfgPassphrase     string
	cfgKnownHosts     string
	cfgStrictHost     bool
	cfgCmdTimeout     time.Duration
	cfgConnTimeout    time.Duration
	cfgRestartTimeout time.Duration
	cfgPollInterval   time.Duration
	cfgStrict         bool
	cfgDropTable      bool
	cfgDeleteCatalog  bool
	cfgTTL            int
	cfgGCGrace        int
	cfgOutPath        string
	cfgSudo           bool
	cfgProbe          bool
	cfgLogLevel       string
	cfgLogFile        string
)

// Allow tests to stub dialing and the restart poll delay
var (
	dialSSHFunc = dialSSH
	sleepFunc   = time.Sleep
)
