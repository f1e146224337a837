package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vyuha/gymtrack/internal/api"
	"github.com/vyuha/gymtrack/internal/gym"
	"github.com/vyuha/gymtrack/internal/storage"
)

func serveCMD(v *viper.Viper, cfgPath *string) *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, *cfgPath)
			if err != nil {
				return err
			}

			// ---- Storage -------------------------------------------------
			store, err := storage.New(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialise storage: %w", err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					slog.Error("storage close error", "error", err)
				}
			}()

			stats, err := store.GetStoreStats(cmd.Context())
			if err != nil {
				return err
			}

			// ---- HTTP Server ---------------------------------------------
			svc := gym.NewService(store, slog.Default())
			srv := api.NewServer(svc, store, api.Options{
				WriteRateLimit: cfg.WriteRateLimit,
				WriteRateBurst: cfg.WriteRateBurst,
			})
			srv.RegisterRoutes()

			slog.Info("gymtrack starting",
				"db_path", cfg.DBPath,
				"addr", cfg.HTTPAddr,
				"members", stats.TotalMembers,
				"sessions", stats.TotalSessions,
			)

			errCh := make(chan error, 1)
			go func() {
				slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
				if err := srv.ListenAndServe(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			// ---- Graceful shutdown ---------------------------------------
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-quit:
				slog.Info("shutdown signal received", "signal", sig.String())
			case err, ok := <-errCh:
				if ok {
					return fmt.Errorf("HTTP server error: %w", err)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("HTTP server shutdown error", "error", err)
			}

			slog.Info("gymtrack shutdown complete")
			return nil
		},
	}
	serve.Flags().String("addr", ":8080", "HTTP listen address")
	_ = v.BindPFlag("http_addr", serve.Flags().Lookup("addr"))
	return serve
}
