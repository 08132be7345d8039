package pets

import (
	"context"
	"io"
)

// Repository es el contrato común de ambos backends (store local o servicio
// remoto); el modo se fija al construir y es invisible para el caller.
// Política de fallas blandas: Get con id inexistente devuelve nil sin error,
// Update devuelve el registro de entrada sin tocar nada, Delete es no-op.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	Get(ctx context.Context, id int64) (*Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id int64) error

	AddProcedure(ctx context.Context, petID int64, pr Procedure) (*Pet, error)
	UpdateProcedure(ctx context.Context, petID int64, procedureID string, pr Procedure) (*Pet, error)
	DeleteProcedure(ctx context.Context, petID int64, procedureID string) (*Pet, error)

	// UploadPhoto guarda la foto y devuelve la URL asignada al pet.
	UploadPhoto(ctx context.Context, petID int64, filename string, r io.Reader) (string, error)
}
