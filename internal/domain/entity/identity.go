package entity

// Identity is the authenticated principal bound to a session.
type Identity struct {
	AccountID      uint   `json:"account_id"`
	ProfessionalID uint   `json:"professional_id"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	Email          string `json:"email"`
}

// HasRole reports whether the identity holds one of roles.
func (i *Identity) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}
