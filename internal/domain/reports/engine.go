package reports

import (
	"context"
	"fmt"
	"time"

	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/appointments"
	"pawcare/internal/domain/owners"
	"pawcare/internal/domain/pets"
	"pawcare/internal/domain/prescriptions"
)

// Engine es el motor local: una función pura de la ventana más el snapshot
// actual de cada colección. No guarda estado propio; cada Summarize
// re-consulta los repositorios.
type Engine struct {
	pets  pets.Repository
	owner owners.Repository
	appts appointments.Repository
	rx    prescriptions.Repository
	log   activity.Log

	now func() time.Time
}

func NewEngine(
	petsRepo pets.Repository,
	ownersRepo owners.Repository,
	apptsRepo appointments.Repository,
	rxRepo prescriptions.Repository,
	log activity.Log,
) *Engine {
	return &Engine{
		pets:  petsRepo,
		owner: ownersRepo,
		appts: apptsRepo,
		rx:    rxRepo,
		log:   log,
		now:   time.Now,
	}
}

// WithNow fija el reloj del engine (tests).
func (e *Engine) WithNow(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) Summarize(ctx context.Context, period, from, to string) (Summary, error) {
	// Validación primero: un period inválido no toca storage.
	win, err := ResolveWindow(period, from, to, e.now())
	if err != nil {
		return Summary{}, err
	}

	apptList, err := e.appts.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("reports: list appointments: %w", err)
	}
	rxList, err := e.rx.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("reports: list prescriptions: %w", err)
	}
	petList, err := e.pets.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("reports: list pets: %w", err)
	}
	ownerList, err := e.owner.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("reports: list owners: %w", err)
	}
	events, err := e.log.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("reports: list activity: %w", err)
	}

	s := Summary{
		Period:      period,
		From:        win.FromString(),
		To:          win.ToString(),
		NewPatients: []NewPatient{},
		Finished:    []FinishedAppointment{},
		Events:      []activity.Event{},
	}

	for _, a := range apptList {
		if a.Status == appointments.StatusDone && win.ContainsDate(a.CompletedAt) {
			s.AppointmentsDone++
		}
	}

	for _, r := range rxList {
		if r.Dispensed && win.ContainsDate(r.DispensedAt) {
			s.PrescriptionsDispensed++
		}
	}

	// petsAdded y newPatients salen del log, no del store: en modo local no
	// hay timestamps de alta para registros previos al log. Asimetría
	// conocida con el modo remoto (conteo autoritativo del server).
	for _, ev := range events {
		if !win.ContainsTime(ev.TS) {
			continue
		}
		s.Events = append(s.Events, ev)

		if ev.Type != activity.TypePetCreated {
			continue
		}
		s.PetsAdded++

		name, ok := petAddedName(ev.Message)
		if !ok {
			continue
		}
		p := petByName(petList, name)
		s.NewPatients = append(s.NewPatients, NewPatient{
			PetName:   name,
			OwnerName: ownerNameFor(p, ownerList),
			AddedAt:   ev.TS.Format(time.RFC3339),
		})
	}

	for _, a := range apptList {
		if a.Status != appointments.StatusDone || !win.ContainsDate(a.CompletedAt) {
			continue
		}

		var pet *pets.Pet
		for i := range petList {
			if petList[i].ID == a.PetID {
				pet = &petList[i]
				break
			}
		}

		names, cost := proceduresOn(pet, a.CompletedAt)

		petName := a.Pet
		if petName == "" && pet != nil {
			petName = pet.Name
		}

		s.Finished = append(s.Finished, FinishedAppointment{
			Code:       a.Code,
			Date:       a.CompletedAt,
			Time:       a.Time,
			Vet:        a.Vet,
			Pet:        petName,
			Owner:      a.Owner,
			Procedures: names,
			Cost:       cost,
		})
		s.TotalProfit += cost
	}

	return s, nil
}
