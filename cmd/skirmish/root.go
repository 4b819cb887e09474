package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/skirmish/internal/ai"
	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
)

// DefaultConfigPath is used when neither --config nor SKIRMISH_CONFIG is set.
const DefaultConfigPath = "config/skirmish.yaml"

// app is the state shared by all subcommands, filled in by the root
// PersistentPreRunE.
var app struct {
	cfg     config.Engine
	catalog *data.Catalog
}

var rootCmd = &cobra.Command{
	Use:           "skirmish",
	Short:         "Turn-based starship combat engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = configPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		app.cfg = cfg

		logLevel := parseLogLevel(cfg.LogLevel)
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})))
		ai.EnableDebugLogging(logLevel == slog.LevelDebug)

		if cmd.Annotations["content"] == "skip" {
			return nil
		}
		catalog, err := loadCatalog(cfg.ContentDir)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		app.catalog = catalog
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $SKIRMISH_CONFIG or "+DefaultConfigPath+")")
}

func configPath() string {
	if p := os.Getenv("SKIRMISH_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}

func loadCatalog(dir string) (*data.Catalog, error) {
	if dir == "" {
		return data.LoadDefault()
	}
	return data.LoadCatalog(os.DirFS(dir))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
