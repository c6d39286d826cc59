package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingStatus represents the payment state of a billing entry
type BillingStatus string

const (
	BillingStatusPending BillingStatus = "Pendente"
	BillingStatusPaid    BillingStatus = "Pago"
)

func (s BillingStatus) IsValid() bool {
	return s == BillingStatusPending || s == BillingStatusPaid
}

// BillingEntry (financeiro) is a payable record linked to an appointment.
type BillingEntry struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID    uint            `gorm:"not null;index" json:"appointment_id"`
	PatientID        uint            `gorm:"not null;index" json:"patient_id"`
	ProfessionalID   uint            `gorm:"not null;index" json:"professional_id"`
	Description      string          `gorm:"type:varchar(255)" json:"description"`
	Value            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"value"`
	Status           BillingStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	EntryDate        *time.Time      `json:"entry_date,omitempty"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod    string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaymentAccountID *uint           `json:"payment_account_id,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment  Appointment  `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (BillingEntry) TableName() string {
	return "billing_entries"
}

// IsPaid checks if the entry has been paid
func (b *BillingEntry) IsPaid() bool {
	return b.Status == BillingStatusPaid
}

// Payment is the data recorded when a billing entry is paid.
type Payment struct {
	Method    string
	AccountID *uint
	Date      time.Time
}
