package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pawcare/internal/config"
	"pawcare/internal/platform/logger"
	"pawcare/internal/router"
)

// ServeCmd levanta el API HTTP de la clínica.
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic HTTP API",
		Long: `Start the clinic HTTP API.

The persistence backend comes from the environment:
  PAWCARE_MODE=local|remote   (default local)
  PAWCARE_DATA_DIR            badger directory for local mode (default data)
  DB_DSN                      use Postgres instead of badger in local mode
  API_BASE_URL / API_TOKEN    remote backend for remote mode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			log := logger.NewFromEnv()

			opts := router.Options{Cfg: cfg, Log: log}
			if cfg.Mode == config.ModeLocal {
				store, err := openStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer store.Close()
				opts.Store = store
			}

			h, err := router.NewRouter(opts)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:         cfg.Addr,
				Handler:      h,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				color.Green("pawcare listening on %s (mode=%s)", cfg.Addr, cfg.Mode)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				log.Info("shutting down", nil)
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides PORT)")
	return cmd
}
