package local_test

import (
	"context"
	"regexp"
	"testing"

	"pawcare/internal/adapters/storage/local"
	"pawcare/internal/adapters/storage/memory"
	"pawcare/internal/domain/appointments"
)

func TestAppointmentsRepo_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := local.NewAppointmentsRepo(store, local.NewActivityLog(store)).
		WithNow(fixedNow("2026-08-29"))

	a, err := repo.Create(ctx, appointments.Appointment{
		Owner: "Maria",
		Date:  "2026-08-29",
		Time:  "14:30",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if a.Status != appointments.StatusPending {
		t.Fatalf("expected Pending default, got %q", a.Status)
	}
	codeRe := regexp.MustCompile(`^APT-20260829-1430-\d{3}$`)
	if !codeRe.MatchString(a.Code) {
		t.Fatalf("unexpected code %q", a.Code)
	}

	// Sin fecha: hoy, y el código lleva esa misma fecha.
	b, err := repo.Create(ctx, appointments.Appointment{Owner: "Jose"})
	if err != nil {
		t.Fatalf("create without date: %v", err)
	}
	if b.Date != "2026-08-29" {
		t.Fatalf("expected date default to today, got %q", b.Date)
	}
	if !regexp.MustCompile(`^APT-20260829-\d{3}$`).MatchString(b.Code) {
		t.Fatalf("code date must match stored date, got %q", b.Code)
	}
}

func TestAppointmentsRepo_ApproveOnlyFromPending(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := local.NewAppointmentsRepo(store, local.NewActivityLog(store)).
		WithNow(fixedNow("2026-08-29"))

	a, _ := repo.Create(ctx, appointments.Appointment{Owner: "Maria"})

	got, err := repo.Approve(ctx, a.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != appointments.StatusApproved {
		t.Fatalf("expected Approved, got %q", got.Status)
	}

	if _, err := repo.Done(ctx, a.ID); err != nil {
		t.Fatalf("done: %v", err)
	}

	// Approve sobre una cita Done no retrocede.
	got, err = repo.Approve(ctx, a.ID)
	if err != nil {
		t.Fatalf("approve done appt: %v", err)
	}
	if got.Status != appointments.StatusDone {
		t.Fatalf("transition must not regress, got %q", got.Status)
	}
}

func TestAppointmentsRepo_DoneStampsCompletedAt(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := local.NewAppointmentsRepo(store, local.NewActivityLog(store)).
		WithNow(fixedNow("2026-08-29"))

	a, _ := repo.Create(ctx, appointments.Appointment{Owner: "Maria"})

	got, err := repo.Done(ctx, a.ID)
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if got.Status != appointments.StatusDone || got.CompletedAt != "2026-08-29" {
		t.Fatalf("expected Done@2026-08-29, got %q@%q", got.Status, got.CompletedAt)
	}

	// Done repetido vuelve a estampar hoy.
	repo.WithNow(fixedNow("2026-08-30"))
	got, err = repo.Done(ctx, a.ID)
	if err != nil {
		t.Fatalf("done twice: %v", err)
	}
	if got.CompletedAt != "2026-08-30" {
		t.Fatalf("expected re-stamped completedAt, got %q", got.CompletedAt)
	}
}

func TestAppointmentsRepo_TransitionsOnMissing(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := local.NewAppointmentsRepo(store, local.NewActivityLog(store))

	if a, err := repo.Approve(ctx, 99); err != nil || a != nil {
		t.Fatalf("expected (nil, nil) approving missing appt, got (%v, %v)", a, err)
	}
	if a, err := repo.Done(ctx, 99); err != nil || a != nil {
		t.Fatalf("expected (nil, nil) on done for missing appt, got (%v, %v)", a, err)
	}
}

func TestAppointmentsRepo_ActivityMessages(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	log := local.NewActivityLog(store)
	repo := local.NewAppointmentsRepo(store, log).WithNow(fixedNow("2026-08-29"))

	a, _ := repo.Create(ctx, appointments.Appointment{Owner: "Maria"})
	_, _ = repo.Approve(ctx, a.ID)
	_, _ = repo.Done(ctx, a.ID)

	events, _ := log.List(ctx)
	want := []string{
		"Completed appointment #1",
		"Approved appointment #1",
		"Created appointment for Maria",
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, w := range want {
		if events[i].Message != w {
			t.Fatalf("event %d: expected %q, got %q", i, w, events[i].Message)
		}
	}
}
