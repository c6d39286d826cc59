package entity

import "time"

// Account is the login credential of a Professional.
type Account struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(30);not null" json:"role"`
	Active       bool      `gorm:"not null" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// Credential is the account joined to its professional, as read at login.
type Credential struct {
	AccountID          uint
	Email              string
	PasswordHash       string
	Role               Role
	AccountActive      bool
	ProfessionalID     uint
	Name               string
	ProfessionalActive bool
}

// CanLogin reports whether both sides of the credential are active.
func (c *Credential) CanLogin() bool {
	return c.AccountActive && c.ProfessionalActive
}
