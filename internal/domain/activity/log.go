package activity

import "context"

// Log es append-only y acotado: Record antepone la entrada (más reciente
// primero) y recorta a Cap. List devuelve newest-first.
type Log interface {
	Record(ctx context.Context, e Event) error
	List(ctx context.Context) ([]Event, error)
	Clear(ctx context.Context) error
}

// Ref arma el puntero de referencia para un Event.
func Ref(id int64) *int64 { return &id }
