package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vyuha/gymtrack/internal/config"
)

// initLogger configures the global slog default with JSON output.
func initLogger(level slog.Level) {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}
	h := slog.NewJSONHandler(os.Stdout, opts)
	slog.SetDefault(slog.New(h))
}

// loadConfig resolves settings and installs the logger.
func loadConfig(v *viper.Viper, cfgPath string) (config.Config, error) {
	cfg, err := config.Load(v, cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	initLogger(cfg.SlogLevel())
	return cfg, nil
}

func main() {
	v := config.New()
	var cfgPath string

	root := &cobra.Command{
		Use:           "gymtrack",
		Short:         "Gym membership and workout records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default searches ./gymtrack.* and ./config)")
	root.PersistentFlags().String("db-path", "./gym.db", "Path to SQLite database file")
	root.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	_ = v.BindPFlag("db_path", root.PersistentFlags().Lookup("db-path"))
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(serveCMD(v, &cfgPath), initCMD(v, &cfgPath))

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("gymtrack failed", "error", err)
		os.Exit(1)
	}
}
