package reports

import (
	"context"

	"pawcare/internal/domain/activity"
)

// NewPatient sale de re-parsear el log de actividad ("Added pet: X") y
// cruzar por nombre contra la colección actual de pets.
type NewPatient struct {
	PetName   string `json:"petName"`
	OwnerName string `json:"ownerName"`
	AddedAt   string `json:"addedAt"` // RFC3339
}

// FinishedAppointment es una cita Done enriquecida con los procedimientos
// del mismo pet realizados el día de la completación.
type FinishedAppointment struct {
	Code       string   `json:"code"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Vet        string   `json:"vet"`
	Pet        string   `json:"pet"`
	Owner      string   `json:"owner"`
	Procedures []string `json:"procedures"`
	Cost       float64  `json:"cost"`
}

// Summary es el agregado por ventana de tiempo. Los slices siempre vienen
// no-nil, aunque estén vacíos.
type Summary struct {
	Period string `json:"period"`
	From   string `json:"from"`
	To     string `json:"to"`

	AppointmentsDone       int `json:"appointmentsDone"`
	PrescriptionsDispensed int `json:"prescriptionsDispensed"`
	PetsAdded              int `json:"petsAdded"`

	NewPatients []NewPatient          `json:"newPatients"`
	Finished    []FinishedAppointment `json:"finished"`
	TotalProfit float64               `json:"totalProfit"`

	Events []activity.Event `json:"events"`
}

// Summarizer es el contrato del motor de reportes; local y remoto lo
// implementan por igual.
type Summarizer interface {
	Summarize(ctx context.Context, period, from, to string) (Summary, error)
}
