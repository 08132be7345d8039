package prescriptions

import "context"

type Repository interface {
	List(ctx context.Context) ([]Prescription, error)
	Get(ctx context.Context, id int64) (*Prescription, error)
	Create(ctx context.Context, p Prescription) (Prescription, error)
	Update(ctx context.Context, p Prescription) (Prescription, error)
	Delete(ctx context.Context, id int64) error

	// Dispense marca dispensed, estampa la fecha y archiva. nil si no existe.
	Dispense(ctx context.Context, id int64) (*Prescription, error)
}
