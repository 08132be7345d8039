package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"pawcare/internal/domain/pets"
)

type PetsRepo struct {
	c *Client
}

func NewPetsRepo(c *Client) *PetsRepo {
	return &PetsRepo{c: c}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	var list []pets.Pet
	if err := r.c.hc.DoJSON(ctx, http.MethodGet, "/pets", nil, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []pets.Pet{}
	}
	return list, nil
}

func (r *PetsRepo) Get(ctx context.Context, id int64) (*pets.Pet, error) {
	var p pets.Pet
	err := r.c.hc.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/pets/%d", id), nil, nil, &p)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out pets.Pet
	if err := r.c.hc.DoJSON(ctx, http.MethodPost, "/pets", nil, p, &out); err != nil {
		return pets.Pet{}, err
	}
	return out, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out pets.Pet
	err := r.c.hc.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/pets/%d", p.ID), nil, p, &out)
	if err != nil {
		return pets.Pet{}, err
	}
	return out, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	return r.c.hc.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/pets/%d", id), nil, nil, nil)
}

func (r *PetsRepo) AddProcedure(ctx context.Context, petID int64, pr pets.Procedure) (*pets.Pet, error) {
	var out pets.Pet
	err := r.c.hc.DoJSON(ctx, http.MethodPost,
		fmt.Sprintf("/pets/%d/procedures", petID), nil, pr, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *PetsRepo) UpdateProcedure(ctx context.Context, petID int64, procedureID string, pr pets.Procedure) (*pets.Pet, error) {
	var out pets.Pet
	err := r.c.hc.DoJSON(ctx, http.MethodPut,
		fmt.Sprintf("/pets/%d/procedures/%s", petID, procedureID), nil, pr, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *PetsRepo) DeleteProcedure(ctx context.Context, petID int64, procedureID string) (*pets.Pet, error) {
	var out pets.Pet
	err := r.c.hc.DoJSON(ctx, http.MethodDelete,
		fmt.Sprintf("/pets/%d/procedures/%s", petID, procedureID), nil, nil, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *PetsRepo) UploadPhoto(ctx context.Context, petID int64, filename string, src io.Reader) (string, error) {
	var out struct {
		Photo string `json:"photo"`
	}
	err := r.c.hc.UploadFile(ctx, fmt.Sprintf("/pets/%d/photo", petID), filename, src, &out)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return out.Photo, nil
}
