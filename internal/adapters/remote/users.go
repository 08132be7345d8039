package remote

import (
	"context"
	"fmt"
	"net/http"

	"pawcare/internal/domain/users"
)

type UsersRepo struct {
	c *Client
}

func NewUsersRepo(c *Client) *UsersRepo {
	return &UsersRepo{c: c}
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	var list []users.User
	if err := r.c.hc.DoJSON(ctx, http.MethodGet, "/users", nil, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []users.User{}
	}
	return list, nil
}

func (r *UsersRepo) Get(ctx context.Context, id int64) (*users.User, error) {
	var u users.User
	err := r.c.hc.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &u)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	var out users.User
	if err := r.c.hc.DoJSON(ctx, http.MethodPost, "/users", nil, u, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	var out users.User
	err := r.c.hc.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", u.ID), nil, u, &out)
	if err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	return r.c.hc.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}
