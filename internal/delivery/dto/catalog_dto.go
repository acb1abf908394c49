package dto

import (
	"github.com/shopspring/decimal"
)

// Response DTOs

type HospitalResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"hospital_name"`
	Image         string   `json:"image"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Rating        float64  `json:"rating"`
	ReviewsCount  int      `json:"reviews_count"`
	Timings       string   `json:"timings"`
	ContactNumber string   `json:"contact_number"`
	Specialties   []string `json:"specialties"`
	Established   string   `json:"established"`
	Beds          int      `json:"beds"`
}

type DoctorResponse struct {
	ID             string `json:"id"`
	Name           string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Experience     string `json:"experience"`
	HospitalID     string `json:"hospital_id"`
}

type TreatmentResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"treatment_name"`
	Cost            decimal.Decimal `json:"cost"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	HospitalID      string          `json:"hospital_id"`
	Duration        string          `json:"duration"`
	Description     string          `json:"description"`
}

type ReviewResponse struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	HospitalID  string `json:"hospital_id"`
	Date        string `json:"date"`
	Verified    bool   `json:"verified"`
}

// SearchResultResponse is a hospital card: the hospital plus the matched treatment
type SearchResultResponse struct {
	HospitalResponse
	Treatment TreatmentResponse `json:"treatment"`
}

type BudgetRangeResponse struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type BudgetPresetResponse struct {
	Label string          `json:"label"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
}

type StarCountResponse struct {
	Stars   int     `json:"stars"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type ReviewSummaryResponse struct {
	Count         int                 `json:"count"`
	AverageRating float64             `json:"average_rating"`
	Histogram     []StarCountResponse `json:"histogram"`
}

type HospitalDetailResponse struct {
	Hospital   HospitalResponse      `json:"hospital"`
	Doctors    []DoctorResponse      `json:"doctors"`
	Treatments []TreatmentResponse   `json:"treatments"`
	Reviews    []ReviewResponse      `json:"reviews"`
	Summary    ReviewSummaryResponse `json:"review_summary"`
}
