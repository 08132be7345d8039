// Package postgres es el Entity Store sobre Postgres: una fila jsonb por
// colección más su secuencia, en una sola tabla. Backend alternativo al
// embebido; se elige con DB_DSN.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx vía database/sql.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema crea la tabla de colecciones si no existe.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name text PRIMARY KEY,
			data jsonb NOT NULL DEFAULT '[]'::jsonb,
			seq  bigint NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, collection string, out any) error {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = $1`, collection,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("postgres: get %s: %w", collection, err)
	}
	return json.Unmarshal(raw, out)
}

func (s *Store) Put(ctx context.Context, collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("postgres: marshal %s: %w", collection, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data
	`, collection, raw)
	if err != nil {
		return fmt.Errorf("postgres: put %s: %w", collection, err)
	}
	return nil
}

func (s *Store) NextID(ctx context.Context, collection string) (int64, error) {
	var next int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO collections (name, seq) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET seq = collections.seq + 1
		RETURNING seq
	`, collection).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("postgres: next id %s: %w", collection, err)
	}
	return next, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
