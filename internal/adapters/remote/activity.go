package remote

import (
	"context"
	"net/http"
	"net/url"

	"pawcare/internal/domain/activity"
)

// ActivityLog lee el log que mantiene el servidor. Record es no-op: en modo
// remoto cada mutación ya queda registrada del lado del server, registrar
// acá duplicaría entradas.
type ActivityLog struct {
	c *Client
}

func NewActivityLog(c *Client) *ActivityLog {
	return &ActivityLog{c: c}
}

func (l *ActivityLog) Record(ctx context.Context, e activity.Event) error {
	return nil
}

func (l *ActivityLog) List(ctx context.Context) ([]activity.Event, error) {
	// El endpoint exige rango; un rango ancho devuelve el ring completo
	// (el server retiene como mucho las últimas entradas).
	q := url.Values{}
	q.Set("from", "1970-01-01")
	q.Set("to", "9999-12-31")

	var events []activity.Event
	if err := l.c.hc.DoJSON(ctx, http.MethodGet, "/ops/log?"+q.Encode(), nil, nil, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []activity.Event{}
	}
	return events, nil
}

func (l *ActivityLog) Clear(ctx context.Context) error {
	return l.c.hc.DoJSON(ctx, http.MethodDelete, "/ops/log", nil, nil, nil)
}
