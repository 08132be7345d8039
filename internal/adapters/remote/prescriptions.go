package remote

import (
	"context"
	"fmt"
	"net/http"

	"pawcare/internal/domain/prescriptions"
)

type PrescriptionsRepo struct {
	c *Client
}

func NewPrescriptionsRepo(c *Client) *PrescriptionsRepo {
	return &PrescriptionsRepo{c: c}
}

func (r *PrescriptionsRepo) List(ctx context.Context) ([]prescriptions.Prescription, error) {
	var list []prescriptions.Prescription
	if err := r.c.hc.DoJSON(ctx, http.MethodGet, "/prescriptions", nil, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []prescriptions.Prescription{}
	}
	return list, nil
}

func (r *PrescriptionsRepo) Get(ctx context.Context, id int64) (*prescriptions.Prescription, error) {
	var p prescriptions.Prescription
	err := r.c.hc.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/prescriptions/%d", id), nil, nil, &p)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	var out prescriptions.Prescription
	if err := r.c.hc.DoJSON(ctx, http.MethodPost, "/prescriptions", nil, p, &out); err != nil {
		return prescriptions.Prescription{}, err
	}
	return out, nil
}

func (r *PrescriptionsRepo) Update(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	var out prescriptions.Prescription
	err := r.c.hc.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/prescriptions/%d", p.ID), nil, p, &out)
	if err != nil {
		return prescriptions.Prescription{}, err
	}
	return out, nil
}

func (r *PrescriptionsRepo) Delete(ctx context.Context, id int64) error {
	return r.c.hc.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/prescriptions/%d", id), nil, nil, nil)
}

func (r *PrescriptionsRepo) Dispense(ctx context.Context, id int64) (*prescriptions.Prescription, error) {
	var out prescriptions.Prescription
	err := r.c.hc.DoJSON(ctx, http.MethodPost,
		fmt.Sprintf("/prescriptions/%d/dispense", id), nil, nil, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
