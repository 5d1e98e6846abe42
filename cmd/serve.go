package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ifrshub/internal/logging"
	"github.com/abhisek/ifrshub/internal/metrics"
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rendered views as JSON over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		lib, err := loadLibrary(ctx, cmd, cfg, logger)
		if err != nil {
			return err
		}

		srv := server.New(lib, render.New(cfg.Styles()), metrics.New(), logger)
		logger.Info("starting server", zap.String("addr", cfg.Addr))
		return srv.Run(ctx, cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides addr config key)")
}
