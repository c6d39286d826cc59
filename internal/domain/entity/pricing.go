package entity

import "github.com/shopspring/decimal"

var appointmentPrices = map[string]decimal.Decimal{
	"Consulta":                   decimal.NewFromInt(200),
	"Retorno":                    decimal.NewFromInt(150),
	"Avaliação Neuropsicológica": decimal.NewFromInt(800),
	"Avaliação Neuropsicológica Personalizada": decimal.NewFromInt(1200),
}

// ExtraBillingValue is charged by a manually generated billing entry.
var ExtraBillingValue = decimal.NewFromInt(150)

// PriceForType returns the price of an appointment type. Unknown types are free.
func PriceForType(appointmentType string) decimal.Decimal {
	if price, ok := appointmentPrices[appointmentType]; ok {
		return price
	}
	return decimal.Zero
}

// BillingDescription is the description of the entry created with an appointment.
func BillingDescription(appointmentType string) string {
	return "Consulta - " + appointmentType
}

// ExtraBillingDescription is the description of a manually generated entry.
func ExtraBillingDescription(appointmentType string) string {
	return "Cobrança adicional - " + appointmentType
}
