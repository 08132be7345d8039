// Package badgerdb es el Entity Store embebido por defecto, sobre BadgerDB.
// Cada colección se guarda como un blob JSON bajo "col:<name>" y su secuencia
// de ids bajo "seq:<name>"; ambas sobreviven reinicios del proceso.
package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

type Config struct {
	// Path es el directorio de datos. Se ignora con InMemory.
	Path string
	// InMemory corre sin disco (tests).
	InMemory bool
	// SyncWrites fuerza fsync por escritura; on para durabilidad real.
	SyncWrites bool
}

func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

func InMemoryConfig() Config {
	return Config{InMemory: true}
}

type Store struct {
	db *badger.DB
}

func Open(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil) // el logging de badger es muy ruidoso para esta app

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerdb: open: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, collection string, out any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(colKey(collection))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("badgerdb: get %s: %w", collection, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

func (s *Store) Put(ctx context.Context, collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("badgerdb: marshal %s: %w", collection, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(colKey(collection), raw)
	})
	if err != nil {
		return fmt.Errorf("badgerdb: put %s: %w", collection, err)
	}
	return nil
}

func (s *Store) NextID(ctx context.Context, collection string) (int64, error) {
	var next int64
	err := s.db.Update(func(txn *badger.Txn) error {
		key := seqKey(collection)

		var current int64
		item, err := txn.Get(key)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			// colección nueva: arranca en 1
		case err != nil:
			return err
		default:
			if err := item.Value(func(val []byte) error {
				n, perr := strconv.ParseInt(string(val), 10, 64)
				if perr != nil {
					return perr
				}
				current = n
				return nil
			}); err != nil {
				return err
			}
		}

		next = current + 1
		return txn.Set(key, []byte(strconv.FormatInt(next, 10)))
	})
	if err != nil {
		return 0, fmt.Errorf("badgerdb: next id %s: %w", collection, err)
	}
	return next, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func colKey(collection string) []byte { return []byte("col:" + collection) }
func seqKey(collection string) []byte { return []byte("seq:" + collection) }
