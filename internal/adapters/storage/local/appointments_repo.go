package local

import (
	"context"
	"fmt"
	"time"

	"pawcare/internal/adapters/storage"
	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/appointments"
)

type AppointmentsRepo struct {
	store storage.Store
	log   activity.Log
	now   func() time.Time
}

func NewAppointmentsRepo(store storage.Store, log activity.Log) *AppointmentsRepo {
	return &AppointmentsRepo{store: store, log: log, now: time.Now}
}

func (r *AppointmentsRepo) WithNow(now func() time.Time) *AppointmentsRepo {
	r.now = now
	return r
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	var list []appointments.Appointment
	if err := r.store.Get(ctx, storage.ColAppointments, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []appointments.Appointment{}
	}
	return list, nil
}

func (r *AppointmentsRepo) Get(ctx context.Context, id int64) (*appointments.Appointment, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			a := list[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	list, err := r.List(ctx)
	if err != nil {
		return appointments.Appointment{}, err
	}

	id, err := r.store.NextID(ctx, storage.ColAppointments)
	if err != nil {
		return appointments.Appointment{}, err
	}
	a.ID = id

	if a.Status == "" {
		a.Status = appointments.StatusPending
	}
	// La fecha se resuelve antes del código: el código lleva la misma
	// fecha que queda persistida.
	if a.Date == "" {
		a.Date = r.now().Format("2006-01-02")
	}
	if a.Code == "" {
		a.Code = appointments.GenerateCode(a.Date, a.Time)
	}

	list = append(list, a)
	if err := r.store.Put(ctx, storage.ColAppointments, list); err != nil {
		return appointments.Appointment{}, err
	}

	r.record(ctx, activity.TypeApptCreated, "Created appointment for "+a.Owner, activity.Ref(a.PetID))
	return a, nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	list, err := r.List(ctx)
	if err != nil {
		return appointments.Appointment{}, err
	}

	for i := range list {
		if list[i].ID != a.ID {
			continue
		}
		list[i] = a
		if err := r.store.Put(ctx, storage.ColAppointments, list); err != nil {
			return appointments.Appointment{}, err
		}
		r.record(ctx, activity.TypeApptUpdated, fmt.Sprintf("Updated appointment #%d", a.ID), activity.Ref(a.ID))
		return a, nil
	}

	return a, nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]appointments.Appointment, 0, len(list))
	removed := false
	for _, a := range list {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return nil
	}

	if err := r.store.Put(ctx, storage.ColAppointments, kept); err != nil {
		return err
	}
	r.record(ctx, activity.TypeApptDeleted, fmt.Sprintf("Deleted appointment #%d", id), activity.Ref(id))
	return nil
}

// Approve solo avanza desde Pending; las transiciones nunca retroceden.
func (r *AppointmentsRepo) Approve(ctx context.Context, id int64) (*appointments.Appointment, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}

		if list[i].Status == appointments.StatusPending {
			list[i].Status = appointments.StatusApproved
			if err := r.store.Put(ctx, storage.ColAppointments, list); err != nil {
				return nil, err
			}
			r.record(ctx, activity.TypeApptApproved, fmt.Sprintf("Approved appointment #%d", id), activity.Ref(id))
		}

		a := list[i]
		return &a, nil
	}

	return nil, nil
}

// Done estampa completedAt = hoy. Sobre una cita ya Done vuelve a estampar
// hoy; se preserva tal cual (ver tests que fijan este comportamiento).
func (r *AppointmentsRepo) Done(ctx context.Context, id int64) (*appointments.Appointment, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}

		list[i].Status = appointments.StatusDone
		list[i].CompletedAt = r.now().Format("2006-01-02")
		if err := r.store.Put(ctx, storage.ColAppointments, list); err != nil {
			return nil, err
		}
		r.record(ctx, activity.TypeApptDone, fmt.Sprintf("Completed appointment #%d", id), activity.Ref(id))

		a := list[i]
		return &a, nil
	}

	return nil, nil
}

func (r *AppointmentsRepo) record(ctx context.Context, typ, msg string, ref *int64) {
	_ = r.log.Record(ctx, activity.Event{Type: typ, Message: msg, RefID: ref})
}
