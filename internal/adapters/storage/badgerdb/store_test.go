package badgerdb_test

import (
	"context"
	"testing"

	"pawcare/internal/adapters/storage/badgerdb"
)

type rec struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func openInMemory(t *testing.T) *badgerdb.Store {
	t.Helper()
	st, err := badgerdb.Open(badgerdb.InMemoryConfig())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStore_PutGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := openInMemory(t)

	in := []rec{{ID: 1, Name: "Milo"}, {ID: 2, Name: "Luna"}}
	if err := st.Put(ctx, "pets", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out []rec
	if err := st.Get(ctx, "pets", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 2 || out[1].Name != "Luna" {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}
}

func TestStore_GetMissingCollection(t *testing.T) {
	ctx := context.Background()
	st := openInMemory(t)

	var out []rec
	if err := st.Get(ctx, "nothing", &out); err != nil {
		t.Fatalf("get missing collection: %v", err)
	}
	if out != nil {
		t.Fatalf("expected untouched nil slice, got %+v", out)
	}
}

func TestStore_NextIDMonotonicPerCollection(t *testing.T) {
	ctx := context.Background()
	st := openInMemory(t)

	for want := int64(1); want <= 3; want++ {
		got, err := st.NextID(ctx, "pets")
		if err != nil {
			t.Fatalf("next id: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	// Secuencia independiente por colección.
	got, err := st.NextID(ctx, "owners")
	if err != nil {
		t.Fatalf("next id owners: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected owners sequence to start at 1, got %d", got)
	}
}

func TestStore_PutReplacesWhole(t *testing.T) {
	ctx := context.Background()
	st := openInMemory(t)

	_ = st.Put(ctx, "pets", []rec{{ID: 1, Name: "Milo"}})
	_ = st.Put(ctx, "pets", []rec{{ID: 2, Name: "Luna"}})

	var out []rec
	if err := st.Get(ctx, "pets", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Luna" {
		t.Fatalf("put must replace the collection, got %+v", out)
	}
}
