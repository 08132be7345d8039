package activity

import "time"

// Cap es la cantidad de entradas retenidas; las más viejas se descartan
// en silencio. El log es un trail de observabilidad, no bookkeeping
// autoritativo: sistemas con más de Cap operaciones sub-reportan historia.
const Cap = 20

// Tipos de evento registrados por las operaciones de mutación.
const (
	TypePetCreated     = "PET_CREATED"
	TypePetUpdated     = "PET_UPDATED"
	TypePetDeleted     = "PET_DELETED"
	TypeProcedureAdded = "PROC_ADDED"

	TypeApptCreated  = "APPT_CREATED"
	TypeApptUpdated  = "APPT_UPDATED"
	TypeApptDeleted  = "APPT_DELETED"
	TypeApptApproved = "APPT_APPROVED"
	TypeApptDone     = "APPT_DONE"

	TypeRxCreated   = "RX_CREATED"
	TypeRxUpdated   = "RX_UPDATED"
	TypeRxDeleted   = "RX_DELETED"
	TypeRxDispensed = "RX_DISPENSED"

	TypeUserCreated = "USER_CREATED"
	TypeUserUpdated = "USER_UPDATED"
	TypeUserDeleted = "USER_DELETED"

	TypeOwnerCreated = "OWNER_CREATED"
	TypeOwnerUpdated = "OWNER_UPDATED"
)

// Event es una entrada del log: descripción legible, timestamp y una
// referencia opcional a la entidad tocada.
type Event struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	TS      time.Time `json:"ts"`
	RefID   *int64    `json:"refId,omitempty"`
}
