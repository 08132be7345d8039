package pets

// Procedure vive embebido dentro de su Pet; no existe como recurso suelto.
// El ID (uuid) se asigna al agregarlo y es la única forma estable de
// direccionarlo: los índices posicionales se corren al borrar.
type Procedure struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	LabType     string  `json:"labType,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Medications string  `json:"medications,omitempty"`
	Cost        float64 `json:"cost"`
	PerformedAt string  `json:"performedAt"` // YYYY-MM-DD
}

// Pet es el registro clínico de una mascota. El dueño puede venir inline
// (Owner/ContactNumber/Address) o como referencia a un Owner (OwnerID).
type Pet struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Species       string `json:"species"`
	Breed         string `json:"breed,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Age           int    `json:"age,omitempty"`
	Microchip     string `json:"microchip,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Owner         string `json:"owner,omitempty"`
	OwnerID       int64  `json:"ownerId,omitempty"`
	Address       string `json:"address,omitempty"`
	Federation    string `json:"federation,omitempty"`
	Photo         string `json:"photo,omitempty"`

	Procedures []Procedure `json:"procedures"`
}
