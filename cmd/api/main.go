package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"pawcare/internal/adapters/storage/badgerdb"
	"pawcare/internal/adapters/storage/postgres"
	"pawcare/internal/config"
	"pawcare/internal/platform/logger"
	"pawcare/internal/router"
)

// Entrypoint mínimo sin CLI: mismo server que `pawcare serve`, pensado para
// contenedores donde toda la config entra por env.
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	opts := router.Options{Cfg: cfg, Log: log}
	if cfg.Mode == config.ModeLocal {
		if cfg.DBDSN != "" {
			db, err := postgres.Open(cfg.DBDSN)
			if err != nil {
				log.Error("open postgres", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
			st := postgres.NewStore(db)
			if err := st.EnsureSchema(context.Background()); err != nil {
				log.Error("ensure schema", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
			defer st.Close()
			opts.Store = st
		} else {
			st, err := badgerdb.Open(badgerdb.DefaultConfig(cfg.DataDir))
			if err != nil {
				log.Error("open badger", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
			defer st.Close()
			opts.Store = st
		}
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		log.Error("build router", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr, "mode": string(cfg.Mode)})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
