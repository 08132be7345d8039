package local

import (
	"context"
	"fmt"
	"time"

	"pawcare/internal/adapters/storage"
	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/prescriptions"
)

type PrescriptionsRepo struct {
	store storage.Store
	log   activity.Log
	now   func() time.Time
}

func NewPrescriptionsRepo(store storage.Store, log activity.Log) *PrescriptionsRepo {
	return &PrescriptionsRepo{store: store, log: log, now: time.Now}
}

func (r *PrescriptionsRepo) WithNow(now func() time.Time) *PrescriptionsRepo {
	r.now = now
	return r
}

func (r *PrescriptionsRepo) List(ctx context.Context) ([]prescriptions.Prescription, error) {
	var list []prescriptions.Prescription
	if err := r.store.Get(ctx, storage.ColPrescriptions, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []prescriptions.Prescription{}
	}
	return list, nil
}

func (r *PrescriptionsRepo) Get(ctx context.Context, id int64) (*prescriptions.Prescription, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			p := list[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PrescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	list, err := r.List(ctx)
	if err != nil {
		return prescriptions.Prescription{}, err
	}

	id, err := r.store.NextID(ctx, storage.ColPrescriptions)
	if err != nil {
		return prescriptions.Prescription{}, err
	}
	p.ID = id

	// Una receta nace sin despachar, pase lo que pase en el input.
	p.Dispensed = false
	p.DispensedAt = ""
	p.Archived = false
	if p.Date == "" {
		p.Date = r.now().Format("2006-01-02")
	}

	list = append(list, p)
	if err := r.store.Put(ctx, storage.ColPrescriptions, list); err != nil {
		return prescriptions.Prescription{}, err
	}

	r.record(ctx, activity.TypeRxCreated, "Created prescription for "+p.Pet, activity.Ref(p.PetID))
	return p, nil
}

func (r *PrescriptionsRepo) Update(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	list, err := r.List(ctx)
	if err != nil {
		return prescriptions.Prescription{}, err
	}

	for i := range list {
		if list[i].ID != p.ID {
			continue
		}
		list[i] = p
		if err := r.store.Put(ctx, storage.ColPrescriptions, list); err != nil {
			return prescriptions.Prescription{}, err
		}
		r.record(ctx, activity.TypeRxUpdated, fmt.Sprintf("Updated prescription #%d", p.ID), activity.Ref(p.ID))
		return p, nil
	}

	return p, nil
}

func (r *PrescriptionsRepo) Delete(ctx context.Context, id int64) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]prescriptions.Prescription, 0, len(list))
	removed := false
	for _, p := range list {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}

	if err := r.store.Put(ctx, storage.ColPrescriptions, kept); err != nil {
		return err
	}
	r.record(ctx, activity.TypeRxDeleted, fmt.Sprintf("Deleted prescription #%d", id), activity.Ref(id))
	return nil
}

// Dispense acopla despachar y archivar a propósito: no existe un-dispense
// ni un-archive.
func (r *PrescriptionsRepo) Dispense(ctx context.Context, id int64) (*prescriptions.Prescription, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}

		list[i].Dispensed = true
		list[i].DispensedAt = r.now().Format("2006-01-02")
		list[i].Archived = true
		if err := r.store.Put(ctx, storage.ColPrescriptions, list); err != nil {
			return nil, err
		}
		r.record(ctx, activity.TypeRxDispensed, fmt.Sprintf("Dispensed prescription #%d", id), activity.Ref(id))

		p := list[i]
		return &p, nil
	}

	return nil, nil
}

func (r *PrescriptionsRepo) record(ctx context.Context, typ, msg string, ref *int64) {
	_ = r.log.Record(ctx, activity.Event{Type: typ, Message: msg, RefID: ref})
}
