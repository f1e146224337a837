package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vyuha/gymtrack/internal/gym"
	"github.com/vyuha/gymtrack/internal/storage"
)

func initCMD(v *viper.Viper, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, *cfgPath)
			if err != nil {
				return err
			}

			store, err := storage.New(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialise storage: %w", err)
			}
			defer store.Close()

			svc := gym.NewService(store, slog.Default())
			if err := svc.Init(cmd.Context()); err != nil {
				return err
			}

			stats, err := store.GetStoreStats(cmd.Context())
			if err != nil {
				return err
			}
			slog.Info("store ready",
				"db_path", cfg.DBPath,
				"schema_version", stats.SchemaVersion,
				"members", stats.TotalMembers,
				"sessions", stats.TotalSessions,
			)
			return nil
		},
	}
}
