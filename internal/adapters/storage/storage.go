// Package storage define el contrato del Entity Store: colecciones JSON
// completas con reemplazo total en Put y contadores de identidad monótonos
// por colección.
package storage

import "context"

// Colecciones persistidas. Cada una vive como un documento independiente
// y lleva su secuencia de ids al lado.
const (
	ColPets          = "pets"
	ColOwners        = "owners"
	ColAppointments  = "appointments"
	ColPrescriptions = "prescriptions"
	ColUsers         = "users"
	ColActivity      = "activity"
)

// Store es el Entity Store.
//
// Put reemplaza la colección entera; desde la vista de un único escritor es
// atómico (queda lo nuevo o queda lo anterior). No hay locking ni CAS entre
// escritores: dos procesos concurrentes pisan con last-write-wins. Ese es el
// modelo soportado (single-writer); mutación concurrente externa es UB.
//
// NextID arranca en 1 por colección, crece estricto y nunca se reusa,
// incluso después de borrar registros.
type Store interface {
	Get(ctx context.Context, collection string, out any) error
	Put(ctx context.Context, collection string, v any) error
	NextID(ctx context.Context, collection string) (int64, error)
	Close() error
}
