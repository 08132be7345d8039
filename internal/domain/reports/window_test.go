package reports

import (
	"errors"
	"testing"
	"time"
)

func TestResolveWindow(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)

	cases := []struct {
		name     string
		period   string
		from, to string
		wantFrom string
		wantTo   string
		wantErr  error
	}{
		{name: "day", period: "day", wantFrom: "2026-08-29", wantTo: "2026-08-29"},
		{name: "week", period: "week", wantFrom: "2026-08-23", wantTo: "2026-08-29"},
		{name: "month", period: "month", wantFrom: "2026-08-01", wantTo: "2026-08-29"},
		{
			name: "custom", period: "custom", from: "2026-08-01", to: "2026-08-15",
			wantFrom: "2026-08-01", wantTo: "2026-08-15",
		},
		{name: "custom without from", period: "custom", to: "2026-08-15", wantErr: ErrInvalidRange},
		{name: "custom without to", period: "custom", from: "2026-08-01", wantErr: ErrInvalidRange},
		{name: "custom bad format", period: "custom", from: "01/08/2026", to: "2026-08-15", wantErr: ErrInvalidRange},
		{name: "unknown period", period: "year", wantErr: ErrInvalidPeriod},
		{name: "empty period", period: "", wantErr: ErrInvalidPeriod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ResolveWindow(tc.period, tc.from, tc.to, today)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w.FromString() != tc.wantFrom || w.ToString() != tc.wantTo {
				t.Fatalf("expected %s..%s, got %s..%s", tc.wantFrom, tc.wantTo, w.FromString(), w.ToString())
			}
		})
	}
}

func TestWindowContainsDate(t *testing.T) {
	w, err := ResolveWindow("custom", "2026-08-10", "2026-08-20", time.Now())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	cases := []struct {
		date string
		want bool
	}{
		{"2026-08-10", true}, // borde inferior inclusivo
		{"2026-08-20", true}, // borde superior inclusivo
		{"2026-08-15", true},
		{"2026-08-09", false},
		{"2026-08-21", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		if got := w.ContainsDate(tc.date); got != tc.want {
			t.Fatalf("ContainsDate(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestWindowNonUTCZones(t *testing.T) {
	// Los registros guardan fechas como strings YYYY-MM-DD sin zona; la
	// ventana se arma en la zona del proceso. El día de hoy tiene que caer
	// dentro de la ventana "day" sin importar el offset del proceso.
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-5", -5*60*60),
		time.FixedZone("UTC+2", 2*60*60),
		time.FixedZone("UTC+9", 9*60*60),
	}

	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			now := time.Date(2026, 8, 29, 10, 0, 0, 0, loc)
			today := now.Format("2006-01-02")

			for _, period := range []string{"day", "week", "month"} {
				w, err := ResolveWindow(period, "", "", now)
				if err != nil {
					t.Fatalf("resolve %s: %v", period, err)
				}
				if !w.ContainsDate(today) {
					t.Fatalf("%s window must contain today %s in %s", period, today, loc)
				}
				if !w.ContainsTime(now) {
					t.Fatalf("%s window must contain now (%v)", period, now)
				}
			}

			// Ayer y mañana quedan fuera del día.
			w, _ := ResolveWindow("day", "", "", now)
			if w.ContainsDate(now.AddDate(0, 0, -1).Format("2006-01-02")) {
				t.Fatal("day window must exclude yesterday")
			}
			if w.ContainsDate(now.AddDate(0, 0, 1).Format("2006-01-02")) {
				t.Fatal("day window must exclude tomorrow")
			}
		})
	}
}

func TestWindowContainsTimeIgnoresClock(t *testing.T) {
	w, _ := ResolveWindow("custom", "2026-08-10", "2026-08-10", time.Now())

	late := time.Date(2026, 8, 10, 23, 59, 59, 0, time.UTC)
	if !w.ContainsTime(late) {
		t.Fatal("timestamp on window date must match regardless of clock")
	}
	next := time.Date(2026, 8, 11, 0, 0, 1, 0, time.UTC)
	if w.ContainsTime(next) {
		t.Fatal("timestamp on next day must not match")
	}
}
