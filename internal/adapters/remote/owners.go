package remote

import (
	"context"
	"fmt"
	"net/http"

	"pawcare/internal/domain/owners"
)

type OwnersRepo struct {
	c *Client
}

func NewOwnersRepo(c *Client) *OwnersRepo {
	return &OwnersRepo{c: c}
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	var list []owners.Owner
	if err := r.c.hc.DoJSON(ctx, http.MethodGet, "/owners", nil, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []owners.Owner{}
	}
	return list, nil
}

func (r *OwnersRepo) Get(ctx context.Context, id int64) (*owners.Owner, error) {
	var o owners.Owner
	err := r.c.hc.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/owners/%d", id), nil, nil, &o)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	var out owners.Owner
	if err := r.c.hc.DoJSON(ctx, http.MethodPost, "/owners", nil, o, &out); err != nil {
		return owners.Owner{}, err
	}
	return out, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	var out owners.Owner
	err := r.c.hc.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/owners/%d", o.ID), nil, o, &out)
	if err != nil {
		return owners.Owner{}, err
	}
	return out, nil
}
