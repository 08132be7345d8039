package local

import (
	"context"
	"fmt"

	"pawcare/internal/adapters/storage"
	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/users"
)

type UsersRepo struct {
	store storage.Store
	log   activity.Log
}

func NewUsersRepo(store storage.Store, log activity.Log) *UsersRepo {
	return &UsersRepo{store: store, log: log}
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	var list []users.User
	if err := r.store.Get(ctx, storage.ColUsers, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []users.User{}
	}
	return list, nil
}

func (r *UsersRepo) Get(ctx context.Context, id int64) (*users.User, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			u := list[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	list, err := r.List(ctx)
	if err != nil {
		return users.User{}, err
	}

	id, err := r.store.NextID(ctx, storage.ColUsers)
	if err != nil {
		return users.User{}, err
	}
	u.ID = id

	list = append(list, u)
	if err := r.store.Put(ctx, storage.ColUsers, list); err != nil {
		return users.User{}, err
	}

	r.record(ctx, activity.TypeUserCreated, "Added user: "+u.Name, activity.Ref(u.ID))
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	list, err := r.List(ctx)
	if err != nil {
		return users.User{}, err
	}

	for i := range list {
		if list[i].ID != u.ID {
			continue
		}
		list[i] = u
		if err := r.store.Put(ctx, storage.ColUsers, list); err != nil {
			return users.User{}, err
		}
		r.record(ctx, activity.TypeUserUpdated, "Updated user: "+u.Name, activity.Ref(u.ID))
		return u, nil
	}

	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]users.User, 0, len(list))
	removed := false
	for _, u := range list {
		if u.ID == id {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	if !removed {
		return nil
	}

	if err := r.store.Put(ctx, storage.ColUsers, kept); err != nil {
		return err
	}
	r.record(ctx, activity.TypeUserDeleted, fmt.Sprintf("Deleted user #%d", id), activity.Ref(id))
	return nil
}

func (r *UsersRepo) record(ctx context.Context, typ, msg string, ref *int64) {
	_ = r.log.Record(ctx, activity.Event{Type: typ, Message: msg, RefID: ref})
}
