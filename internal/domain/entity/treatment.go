package entity

import "github.com/shopspring/decimal"

// Treatment is a priced procedure offered by exactly one hospital.
// Cost and ConsultationFee are whole currency units.
type Treatment struct {
	ID              string          `json:"id"`
	Name            string          `json:"treatment_name"`
	Cost            decimal.Decimal `json:"cost"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	HospitalID      string          `json:"hospital_id"`
	Duration        string          `json:"duration"`
	Description     string          `json:"description"`
}
