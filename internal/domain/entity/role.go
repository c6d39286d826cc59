package entity

// Role is the access tier (nivel) attached to an Account.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProfessional Role = "profissional"
	RoleReception    Role = "recepcao"
)

// Roles lists every role an Account may hold.
var Roles = []Role{RoleAdmin, RoleProfessional, RoleReception}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
