package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"iface-caster/cast"
)

func newRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "iface-caster",
		Short: "Inspect the interface cast registry of the linked plugins",
		Long: `iface-caster freezes the cast registry assembled by the init() functions
linked into this binary and reports on it: which interfaces are castable,
who implements them, whether that matches a manifest, and how it looks
to Prometheus.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging(logLevel)
			cast.SetLogger(log.With().Str("component", "cast").Logger())
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv("LOG_LEVEL"),
		"log level: debug, info, warn or error (default info, env LOG_LEVEL)")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newMetricsCommand())
	rootCmd.AddCommand(newProbeCommand())

	return rootCmd
}

// setupLogging configures zerolog for human-readable output on stderr.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
