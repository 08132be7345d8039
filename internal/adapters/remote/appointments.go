package remote

import (
	"context"
	"fmt"
	"net/http"

	"pawcare/internal/domain/appointments"
)

type AppointmentsRepo struct {
	c *Client
}

func NewAppointmentsRepo(c *Client) *AppointmentsRepo {
	return &AppointmentsRepo{c: c}
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	var list []appointments.Appointment
	if err := r.c.hc.DoJSON(ctx, http.MethodGet, "/appointments", nil, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []appointments.Appointment{}
	}
	return list, nil
}

func (r *AppointmentsRepo) Get(ctx context.Context, id int64) (*appointments.Appointment, error) {
	var a appointments.Appointment
	err := r.c.hc.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/appointments/%d", id), nil, nil, &a)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	var out appointments.Appointment
	if err := r.c.hc.DoJSON(ctx, http.MethodPost, "/appointments", nil, a, &out); err != nil {
		return appointments.Appointment{}, err
	}
	return out, nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := r.c.hc.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", a.ID), nil, a, &out)
	if err != nil {
		return appointments.Appointment{}, err
	}
	return out, nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	return r.c.hc.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil, nil, nil)
}

func (r *AppointmentsRepo) Approve(ctx context.Context, id int64) (*appointments.Appointment, error) {
	return r.transition(ctx, id, "approve")
}

func (r *AppointmentsRepo) Done(ctx context.Context, id int64) (*appointments.Appointment, error) {
	return r.transition(ctx, id, "done")
}

func (r *AppointmentsRepo) transition(ctx context.Context, id int64, action string) (*appointments.Appointment, error) {
	var out appointments.Appointment
	err := r.c.hc.DoJSON(ctx, http.MethodPost,
		fmt.Sprintf("/appointments/%d/%s", id, action), nil, nil, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
