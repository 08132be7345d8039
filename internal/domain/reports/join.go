package reports

import (
	"strings"

	"pawcare/internal/domain/owners"
	"pawcare/internal/domain/pets"
)

const petAddedPrefix = "Added pet: "

// petAddedName extrae el nombre del pet desde un mensaje "Added pet: X"
// del log de actividad.
func petAddedName(message string) (string, bool) {
	if !strings.HasPrefix(message, petAddedPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(message, petAddedPrefix)), true
}

// petByName es el join por nombre que alimenta newPatients. Aproximación
// deliberada: si dos pets comparten nombre gana el primero. Limitación
// conocida y documentada; no se "arregla" acá.
func petByName(list []pets.Pet, name string) *pets.Pet {
	for i := range list {
		if list[i].Name == name {
			return &list[i]
		}
	}
	return nil
}

// ownerNameFor resuelve el nombre del dueño: campo inline primero, y si no,
// lookup por ownerId en la colección de owners.
func ownerNameFor(p *pets.Pet, ownerList []owners.Owner) string {
	if p == nil {
		return ""
	}
	if p.Owner != "" {
		return p.Owner
	}
	if p.OwnerID != 0 {
		for _, o := range ownerList {
			if o.ID == p.OwnerID {
				return o.FullName
			}
		}
	}
	return ""
}

// proceduresOn junta los procedimientos del pet realizados exactamente en la
// fecha dada. El modelo no registra a qué cita pertenece cada procedimiento,
// solo pet y fecha, así que la asociación cita↔procedimiento es mismo
// pet + misma fecha. Dos citas Done del mismo pet el mismo día cuentan los
// mismos procedimientos dos veces; comportamiento a preservar tal cual.
func proceduresOn(p *pets.Pet, date string) (names []string, total float64) {
	names = []string{}
	if p == nil || date == "" {
		return names, 0
	}
	for _, pr := range p.Procedures {
		if pr.PerformedAt != date {
			continue
		}
		names = append(names, pr.Name)
		total += pr.Cost
	}
	return names, total
}
