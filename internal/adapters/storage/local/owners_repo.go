package local

import (
	"context"

	"pawcare/internal/adapters/storage"
	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/owners"
)

type OwnersRepo struct {
	store storage.Store
	log   activity.Log
}

func NewOwnersRepo(store storage.Store, log activity.Log) *OwnersRepo {
	return &OwnersRepo{store: store, log: log}
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	var list []owners.Owner
	if err := r.store.Get(ctx, storage.ColOwners, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []owners.Owner{}
	}
	return list, nil
}

func (r *OwnersRepo) Get(ctx context.Context, id int64) (*owners.Owner, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			o := list[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	list, err := r.List(ctx)
	if err != nil {
		return owners.Owner{}, err
	}

	id, err := r.store.NextID(ctx, storage.ColOwners)
	if err != nil {
		return owners.Owner{}, err
	}
	o.ID = id

	list = append(list, o)
	if err := r.store.Put(ctx, storage.ColOwners, list); err != nil {
		return owners.Owner{}, err
	}

	_ = r.log.Record(ctx, activity.Event{
		Type:    activity.TypeOwnerCreated,
		Message: "Added owner: " + o.FullName,
		RefID:   activity.Ref(o.ID),
	})
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	list, err := r.List(ctx)
	if err != nil {
		return owners.Owner{}, err
	}

	for i := range list {
		if list[i].ID != o.ID {
			continue
		}
		list[i] = o
		if err := r.store.Put(ctx, storage.ColOwners, list); err != nil {
			return owners.Owner{}, err
		}
		_ = r.log.Record(ctx, activity.Event{
			Type:    activity.TypeOwnerUpdated,
			Message: "Updated owner: " + o.FullName,
			RefID:   activity.Ref(o.ID),
		})
		return o, nil
	}

	return o, nil
}
