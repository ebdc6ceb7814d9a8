// Command server exposes the Latvian declension engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/declension?word=<word>&case=<case>[&number=plural][&gender=][&proper=][&ar=][&palatalized_r=]
//	GET  /api/paradigm?word=<word>[&gender=][&proper=][&ar=][&palatalized_r=]
//	POST /api/paradigms      body: {"words":["..."], "gender":"", "proper_noun":false, ...}
//	POST /api/special-cases  body: {"word":"...", "entry":{"group":"D6", ...}}
//	GET  /healthz
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/latvian/internal/config"
	"github.com/cours-de-latin/latvian/internal/logging"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve Latvian noun declensions over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			zap.ReplaceGlobals(log)

			if cfg.File != "" {
				log.Info("config loaded", zap.String("file", cfg.File))
			}
			s, err := newServer(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to load special cases: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Serve(ctx)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default lvdecl.yaml in the working directory)")
	f.String("addr", config.DefaultAddr, "listen address")
	f.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	f.String("log-format", config.DefaultLogFormat, "log format: json or console")
	f.StringSlice("cors-origins", []string{"*"}, "allowed CORS origins")
	f.Int("cache-size", config.DefaultCacheSize, "number of cached paradigms, 0 disables the cache")
	f.Int("batch-limit", config.DefaultBatchLimit, "concurrent declensions per batch request")
	f.Int("max-batch", config.DefaultMaxBatch, "maximum words per batch request")
	f.Bool("allow-register", true, "accept POST /api/special-cases")
	f.StringSlice("special-cases", nil, "special-case YAML files to load")
	f.Bool("watch", false, "reload special-case files when they change")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
