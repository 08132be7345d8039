package appointments

// Status es el ciclo de vida de una cita. Las transiciones solo avanzan:
// Pending → Approved → Done.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDone     Status = "Done"
)

// Appointment referencia a su Pet por id y lleva el nombre del dueño
// desnormalizado para display. Vet queda vacío hasta que se asigna.
type Appointment struct {
	ID          int64  `json:"id"`
	PetID       int64  `json:"petId"`
	Pet         string `json:"pet,omitempty"`
	Owner       string `json:"owner"`
	Date        string `json:"date"`           // YYYY-MM-DD
	Time        string `json:"time,omitempty"` // HH:mm
	Vet         string `json:"vet,omitempty"`
	Code        string `json:"code,omitempty"`
	Status      Status `json:"status"`
	CompletedAt string `json:"completedAt,omitempty"` // YYYY-MM-DD, solo con Status=Done
}
