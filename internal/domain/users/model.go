package users

// Role define los roles fijos del personal.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVet          Role = "vet"
	RoleReceptionist Role = "receptionist"
	RolePharmacist   Role = "pharmacist"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleVet, RoleReceptionist, RolePharmacist:
		return true
	}
	return false
}

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
