package remote

import (
	"context"
	"net/http"
	"net/url"

	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/reports"
)

// Reports delega el agregado al servidor; el Summary llega ya calculado.
type Reports struct {
	c *Client
}

func NewReports(c *Client) *Reports {
	return &Reports{c: c}
}

func (r *Reports) Summarize(ctx context.Context, period, from, to string) (reports.Summary, error) {
	q := url.Values{}
	q.Set("period", period)
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}

	var s reports.Summary
	if err := r.c.hc.DoJSON(ctx, http.MethodGet, "/reports/summary?"+q.Encode(), nil, nil, &s); err != nil {
		return reports.Summary{}, err
	}
	if s.NewPatients == nil {
		s.NewPatients = []reports.NewPatient{}
	}
	if s.Finished == nil {
		s.Finished = []reports.FinishedAppointment{}
	}
	if s.Events == nil {
		s.Events = []activity.Event{}
	}
	return s, nil
}
