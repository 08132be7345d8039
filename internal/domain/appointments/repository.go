package appointments

import "context"

// Repository sigue la misma política blanda que pets: ids inexistentes
// degradan a nil/no-op en modo local. Approve y Done devuelven nil cuando
// la cita no existe.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	Get(ctx context.Context, id int64) (*Appointment, error)
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	Delete(ctx context.Context, id int64) error

	Approve(ctx context.Context, id int64) (*Appointment, error)
	Done(ctx context.Context, id int64) (*Appointment, error)
}
