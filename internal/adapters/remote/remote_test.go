package remote_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawcare/internal/adapters/remote"
	"pawcare/internal/domain/activity"
	"pawcare/internal/platform/httpclient"
)

const base = "http://clinic.test"

func newTestClient(t *testing.T) (*remote.Client, *httpmock.MockTransport) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	hc := httpclient.NewWithTransport(0, mt)
	hc.BaseURL = base
	return remote.NewClientWithHTTP(hc), mt
}

func TestPetsRepo_GetMissingIsNil(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder(http.MethodGet, base+"/pets/9",
		httpmock.NewStringResponder(404, "pet not found"))

	p, err := remote.NewPetsRepo(c).Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPetsRepo_ListNormalizesNil(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder(http.MethodGet, base+"/pets",
		httpmock.NewStringResponder(200, `null`))

	list, err := remote.NewPetsRepo(c).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPetsRepo_ServerErrorSurfaces(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder(http.MethodGet, base+"/pets",
		httpmock.NewStringResponder(500, "boom"))

	_, err := remote.NewPetsRepo(c).List(context.Background())
	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, 500, he.StatusCode)
	assert.Equal(t, "boom", he.Body)
}

func TestAppointmentsRepo_Transitions(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder(http.MethodPost, base+"/appointments/3/approve",
		httpmock.NewStringResponder(200, `{"id":3,"owner":"Maria","status":"Approved"}`))
	mt.RegisterResponder(http.MethodPost, base+"/appointments/3/done",
		httpmock.NewStringResponder(200, `{"id":3,"owner":"Maria","status":"Done","completedAt":"2026-08-29"}`))

	repo := remote.NewAppointmentsRepo(c)

	a, err := repo.Approve(context.Background(), 3)
	require.NoError(t, err)
	assert.EqualValues(t, "Approved", a.Status)

	a, err = repo.Done(context.Background(), 3)
	require.NoError(t, err)
	assert.EqualValues(t, "Done", a.Status)
	assert.Equal(t, "2026-08-29", a.CompletedAt)
}

func TestPrescriptionsRepo_Dispense(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder(http.MethodPost, base+"/prescriptions/7/dispense",
		httpmock.NewStringResponder(200,
			`{"id":7,"drug":"Amoxicillin","dispensed":true,"dispensedAt":"2026-08-29","archived":true}`))

	p, err := remote.NewPrescriptionsRepo(c).Dispense(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, p.Dispensed)
	assert.True(t, p.Archived)
	assert.Equal(t, "2026-08-29", p.DispensedAt)
}

func TestActivityLog_ListUsesWideRange(t *testing.T) {
	c, mt := newTestClient(t)

	var gotFrom, gotTo string
	mt.RegisterResponder(http.MethodGet, base+"/ops/log",
		func(req *http.Request) (*http.Response, error) {
			gotFrom = req.URL.Query().Get("from")
			gotTo = req.URL.Query().Get("to")
			return httpmock.NewStringResponse(200, `[]`), nil
		})

	log := remote.NewActivityLog(c)
	events, err := log.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Equal(t, "1970-01-01", gotFrom)
	assert.Equal(t, "9999-12-31", gotTo)

	// Record es no-op: el server ya registra cada mutación.
	calls := mt.GetTotalCallCount()
	require.NoError(t, log.Record(context.Background(), activity.Event{Type: activity.TypePetCreated}))
	assert.Equal(t, calls, mt.GetTotalCallCount())
}

func TestReports_SummarizePassesWindow(t *testing.T) {
	c, mt := newTestClient(t)

	var gotQuery string
	mt.RegisterResponder(http.MethodGet, base+"/reports/summary",
		func(req *http.Request) (*http.Response, error) {
			gotQuery = req.URL.RawQuery
			return httpmock.NewStringResponse(200,
				`{"period":"custom","from":"2026-08-01","to":"2026-08-15","appointmentsDone":2,"totalProfit":500}`), nil
		})

	s, err := remote.NewReports(c).Summarize(context.Background(), "custom", "2026-08-01", "2026-08-15")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "period=custom")
	assert.Contains(t, gotQuery, "from=2026-08-01")
	assert.Equal(t, 2, s.AppointmentsDone)
	assert.Equal(t, 500.0, s.TotalProfit)
	// Slices ausentes en el wire llegan no-nil.
	assert.NotNil(t, s.NewPatients)
	assert.NotNil(t, s.Finished)
	assert.NotNil(t, s.Events)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := remote.NewClient(remote.Config{})
	require.Error(t, err)
}
