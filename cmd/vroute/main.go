package main

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vroute/internal/config"
	"github.com/vango-dev/vroute/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globals holds the persistent flags and the loaded configuration.
type globals struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "vroute",
		Short: "Declarative client-side routing for Go component trees",
		Long: `vroute renders and inspects applications built with Route, Switch and Link.

  • Resolve a route table against a path
  • Render the demo application at any location
  • Write static snapshots to disk or S3
  • Serve a websocket history bridge with Prometheus metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (default: vroute.json or vroute.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from config)")

	rootCmd.AddCommand(
		demoCmd(g),
		matchCmd(g),
		snapshotCmd(g),
		bridgeCmd(g),
		versionCmd(),
	)
	return rootCmd
}

// load reads the configuration and installs the default logger.
func (g *globals) load() error {
	var err error
	switch {
	case g.configPath != "":
		g.cfg, err = config.LoadFile(g.configPath)
	default:
		g.cfg, err = config.Load(".")
		if stderrors.Is(err, fs.ErrNotExist) {
			g.cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return err
	}

	if g.logLevel != "" {
		g.cfg.LogLevel = strings.ToLower(g.logLevel)
		if err := g.cfg.Validate(); err != nil {
			return err
		}
	}

	g.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: g.cfg.SlogLevel()}))
	slog.SetDefault(g.logger)
	return nil
}
