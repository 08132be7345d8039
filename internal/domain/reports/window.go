package reports

import (
	"errors"
	"time"
)

var (
	// ErrInvalidPeriod: period desconocido.
	ErrInvalidPeriod = errors.New("invalid period")
	// ErrInvalidRange: period=custom sin from/to válidos.
	ErrInvalidRange = errors.New("custom period requires from and to (YYYY-MM-DD)")
)

const dateLayout = "2006-01-02"

// Window es un rango de fechas calendario inclusivo en ambos extremos.
type Window struct {
	From time.Time
	To   time.Time
}

// ResolveWindow traduce period a ventana, con "hoy" inyectado.
// Se valida antes de tocar storage.
func ResolveWindow(period, from, to string, today time.Time) (Window, error) {
	// Normaliza a fecha calendario en la zona del proceso; Truncate(24h)
	// corre el día en zonas != UTC.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	switch period {
	case "day":
		return Window{From: day, To: day}, nil
	case "week":
		return Window{From: day.AddDate(0, 0, -6), To: day}, nil
	case "month":
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Window{From: first, To: day}, nil
	case "custom":
		f, err1 := time.Parse(dateLayout, from)
		t, err2 := time.Parse(dateLayout, to)
		if err1 != nil || err2 != nil {
			return Window{}, ErrInvalidRange
		}
		return Window{From: f, To: t}, nil
	default:
		return Window{}, ErrInvalidPeriod
	}
}

// ContainsDate evalúa una fecha YYYY-MM-DD contra la ventana.
// Strings vacíos o mal formados quedan fuera.
//
// La comparación es entre strings de fecha calendario, nunca entre
// time.Time: los bordes viven en la zona del proceso y time.Parse
// devuelve UTC, mezclarlos corre el día fuera de UTC.
func (w Window) ContainsDate(date string) bool {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false
	}
	return date >= w.FromString() && date <= w.ToString()
}

// ContainsTime evalúa un timestamp por su fecha calendario, ignorando
// la hora del día.
func (w Window) ContainsTime(ts time.Time) bool {
	return w.ContainsDate(ts.Format(dateLayout))
}

func (w Window) FromString() string { return w.From.Format(dateLayout) }
func (w Window) ToString() string   { return w.To.Format(dateLayout) }
