package cli

import (
	"context"
	"fmt"

	"pawcare/internal/adapters/storage"
	"pawcare/internal/adapters/storage/badgerdb"
	"pawcare/internal/adapters/storage/postgres"
	"pawcare/internal/config"
)

// openStore abre el backend local: Postgres si hay DSN, badger embebido si no.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		st := postgres.NewStore(db)
		if err := st.EnsureSchema(ctx); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return st, nil
	}

	st, err := badgerdb.Open(badgerdb.DefaultConfig(cfg.DataDir))
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", cfg.DataDir, err)
	}
	return st, nil
}
