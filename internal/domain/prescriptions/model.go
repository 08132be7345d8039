package prescriptions

// Prescription. Invariante: DispensedAt está seteado si y solo si
// Dispensed es true; Archived se prende automáticamente al despachar
// (no hay un-dispense ni un-archive).
type Prescription struct {
	ID          int64  `json:"id"`
	PetID       int64  `json:"petId,omitempty"`
	Pet         string `json:"pet,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Drug        string `json:"drug"`
	Dosage      string `json:"dosage,omitempty"`
	Directions  string `json:"directions,omitempty"`
	Prescriber  string `json:"prescriber,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD de emisión
	Dispensed   bool   `json:"dispensed"`
	DispensedAt string `json:"dispensedAt,omitempty"` // YYYY-MM-DD
	Archived    bool   `json:"archived,omitempty"`
}
