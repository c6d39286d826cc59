package entity

import "time"

// Patient is a person treated by the clinic. Duplicate names and emails are allowed.
type Patient struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email     string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Street    string     `gorm:"type:varchar(255)" json:"street,omitempty"`
	Number    string     `gorm:"type:varchar(20)" json:"number,omitempty"`
	District  string     `gorm:"type:varchar(100)" json:"district,omitempty"`
	City      string     `gorm:"type:varchar(100)" json:"city,omitempty"`
	State     string     `gorm:"type:varchar(50)" json:"state,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
