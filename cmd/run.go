package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ifrshub/internal/app"
	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/config"
	"github.com/abhisek/ifrshub/internal/logging"
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/store"
)

// loadConfig reads the config file named by --config (or IFRSHUB_CONFIG).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadLibrary picks the catalog source: --catalog, then catalog_path, then
// the newest import in the store, then the built-in sample content.
func loadLibrary(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) (*catalog.Library, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = cfg.CatalogPath
	}
	if path != "" {
		lib, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Info("catalog loaded from file", zap.String("path", path))
		return lib, nil
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		logger.Debug("no catalog database, using built-in content", zap.String("path", dbPath))
		return catalog.Default(), nil
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	imp, err := st.ImportRepo().Latest(ctx)
	if err != nil {
		return nil, err
	}
	if imp == nil {
		return catalog.Default(), nil
	}
	logger.Info("catalog loaded from store",
		zap.String("import", imp.ID),
		zap.Int64("revision", imp.Revision))
	return imp.Library, nil
}

// runApp loads config and content, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.ForTUI(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lib, err := loadLibrary(cmd.Context(), cmd, cfg, logger)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Library:  lib,
		Renderer: render.New(cfg.Styles()),
		Logger:   logger,
	})
}
