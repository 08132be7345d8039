package local_test

import (
	"context"
	"testing"
	"time"

	"pawcare/internal/adapters/storage/local"
	"pawcare/internal/adapters/storage/memory"
	"pawcare/internal/domain/pets"
)

func fixedNow(date string) func() time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return t }
}

func TestPetsRepo_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := local.NewPetsRepo(store, local.NewActivityLog(store), t.TempDir())

	for _, name := range []string{"Milo", "Luna", "Rocky"} {
		if _, err := repo.Create(ctx, pets.Pet{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}

	p, err := repo.Create(ctx, pets.Pet{Name: "Coco"})
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if p.ID != 4 {
		t.Fatalf("expected id 4 after deleting #2, got %d", p.ID)
	}
}

func TestPetsRepo_SoftFailures(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	log := local.NewActivityLog(store)
	repo := local.NewPetsRepo(store, log, t.TempDir())

	// Get inexistente: (nil, nil), no error.
	p, err := repo.Get(ctx, 99)
	if err != nil || p != nil {
		t.Fatalf("expected (nil, nil) for missing pet, got (%v, %v)", p, err)
	}

	// Update inexistente: devuelve la entrada, no persiste nada.
	in := pets.Pet{ID: 99, Name: "Ghost"}
	out, err := repo.Update(ctx, in)
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if out.Name != "Ghost" {
		t.Fatalf("expected input back, got %+v", out)
	}
	list, _ := repo.List(ctx)
	if len(list) != 0 {
		t.Fatalf("update of missing pet must not persist, got %d pets", len(list))
	}

	// Delete inexistente: no-op y sin entrada en el log.
	if err := repo.Delete(ctx, 99); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	events, _ := log.List(ctx)
	if len(events) != 0 {
		t.Fatalf("no-op delete must not log, got %d events", len(events))
	}
}

func TestPetsRepo_ProcedureLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := local.NewPetsRepo(store, local.NewActivityLog(store), t.TempDir()).
		WithNow(fixedNow("2026-08-29"))

	created, err := repo.Create(ctx, pets.Pet{Name: "Choco"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := repo.AddProcedure(ctx, created.ID, pets.Procedure{Name: "Deworming", Cost: 250})
	if err != nil {
		t.Fatalf("add procedure: %v", err)
	}
	if len(p.Procedures) != 1 {
		t.Fatalf("expected 1 procedure, got %d", len(p.Procedures))
	}
	pr := p.Procedures[0]
	if pr.ID == "" {
		t.Fatal("procedure id must be assigned")
	}
	if pr.PerformedAt != "2026-08-29" {
		t.Fatalf("expected performedAt default to today, got %q", pr.PerformedAt)
	}

	// Update direccionado por uuid.
	p, err = repo.UpdateProcedure(ctx, created.ID, pr.ID, pets.Procedure{Name: "Deworming", Cost: 300})
	if err != nil {
		t.Fatalf("update procedure: %v", err)
	}
	if p.Procedures[0].Cost != 300 || p.Procedures[0].ID != pr.ID {
		t.Fatalf("expected cost 300 same id, got %+v", p.Procedures[0])
	}

	// Uuid inexistente: pet sin cambios.
	p, err = repo.UpdateProcedure(ctx, created.ID, "nope", pets.Procedure{Name: "X"})
	if err != nil {
		t.Fatalf("update missing procedure: %v", err)
	}
	if p.Procedures[0].Cost != 300 {
		t.Fatalf("missing procedure id must not mutate, got %+v", p.Procedures[0])
	}

	p, err = repo.DeleteProcedure(ctx, created.ID, pr.ID)
	if err != nil {
		t.Fatalf("delete procedure: %v", err)
	}
	if len(p.Procedures) != 0 {
		t.Fatalf("expected procedures removed, got %d", len(p.Procedures))
	}
}

func TestPetsRepo_NegativeCostClamped(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := local.NewPetsRepo(store, local.NewActivityLog(store), t.TempDir())

	created, _ := repo.Create(ctx, pets.Pet{Name: "Choco"})
	p, err := repo.AddProcedure(ctx, created.ID, pets.Procedure{Name: "Checkup", Cost: -5})
	if err != nil {
		t.Fatalf("add procedure: %v", err)
	}
	if p.Procedures[0].Cost != 0 {
		t.Fatalf("expected negative cost clamped to 0, got %v", p.Procedures[0].Cost)
	}
}

func TestPetsRepo_ActivityMessages(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	log := local.NewActivityLog(store)
	repo := local.NewPetsRepo(store, log, t.TempDir())

	created, _ := repo.Create(ctx, pets.Pet{Name: "Milo"})
	created.Breed = "mixed"
	_, _ = repo.Update(ctx, created)
	_ = repo.Delete(ctx, created.ID)

	events, err := log.List(ctx)
	if err != nil {
		t.Fatalf("list log: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Newest-first.
	want := []string{"Deleted pet #1", "Updated pet: Milo", "Added pet: Milo"}
	for i, w := range want {
		if events[i].Message != w {
			t.Fatalf("event %d: expected %q, got %q", i, w, events[i].Message)
		}
	}
}
