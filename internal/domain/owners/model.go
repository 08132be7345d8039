package owners

// Owner es el variante "dueño como registro propio": los pets lo referencian
// por ownerId. Nunca embebe mascotas.
type Owner struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Contact  string `json:"contact,omitempty"`
	Address  string `json:"address,omitempty"`
}
