// Package local implementa los repositorios en modo local: asignación de ids
// desde el Entity Store, defaults por tipo, transiciones de estado y trail de
// actividad. Ningún repo cachea nada: cada lectura vuelve al store.
package local

import (
	"context"
	"time"

	"pawcare/internal/adapters/storage"
	"pawcare/internal/domain/activity"
)

// ActivityLog persiste el trail como la colección "activity": más reciente
// primero, recortado a activity.Cap.
type ActivityLog struct {
	store storage.Store
	now   func() time.Time
}

func NewActivityLog(store storage.Store) *ActivityLog {
	return &ActivityLog{store: store, now: time.Now}
}

// WithNow fija el reloj (tests).
func (l *ActivityLog) WithNow(now func() time.Time) *ActivityLog {
	l.now = now
	return l
}

func (l *ActivityLog) Record(ctx context.Context, e activity.Event) error {
	if e.TS.IsZero() {
		e.TS = l.now()
	}

	var events []activity.Event
	if err := l.store.Get(ctx, storage.ColActivity, &events); err != nil {
		return err
	}

	events = append([]activity.Event{e}, events...)
	if len(events) > activity.Cap {
		events = events[:activity.Cap]
	}

	return l.store.Put(ctx, storage.ColActivity, events)
}

func (l *ActivityLog) List(ctx context.Context) ([]activity.Event, error) {
	var events []activity.Event
	if err := l.store.Get(ctx, storage.ColActivity, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []activity.Event{}
	}
	return events, nil
}

func (l *ActivityLog) Clear(ctx context.Context) error {
	return l.store.Put(ctx, storage.ColActivity, []activity.Event{})
}
