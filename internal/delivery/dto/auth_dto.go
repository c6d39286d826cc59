package dto

// Request DTOs

// LoginRequest is checked by the usecase so a missing field still answers {sucesso:false}.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Response DTOs

type IdentityResponse struct {
	AccountID      uint   `json:"conta_id"`
	ProfessionalID uint   `json:"profissional_id"`
	Name           string `json:"nome"`
	Role           string `json:"nivel"`
	Email          string `json:"email"`
}

// SessionResponse is returned by a successful login; Token becomes the cookie value.
type SessionResponse struct {
	Token     string
	ExpiresIn int
	Identity  *IdentityResponse
}
