package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type SetCityRequest struct {
	City string `json:"city"`
}

// SearchRequest budgets are optional and default to 500 and 5000
type SearchRequest struct {
	Treatment string           `json:"treatment"`
	MinBudget *decimal.Decimal `json:"min_budget"`
	MaxBudget *decimal.Decimal `json:"max_budget"`
}

type SelectionRequest struct {
	HospitalID  string `json:"hospital_id" validate:"required"`
	TreatmentID string `json:"treatment_id" validate:"required"`
}

// Response DTOs

type FlowStateResponse struct {
	SessionID     uuid.UUID              `json:"session_id"`
	Phone         string                 `json:"phone"`
	City          string                 `json:"city"`
	TreatmentName string                 `json:"treatment_name"`
	Budget        BudgetRangeResponse    `json:"budget"`
	Results       []SearchResultResponse `json:"results"`
	Selected      *SearchResultResponse  `json:"selected,omitempty"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type GuardDecisionResponse struct {
	Screen     string `json:"screen"`
	Proceed    bool   `json:"proceed"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

type SearchResponse struct {
	Results    []SearchResultResponse `json:"results"`
	NextScreen string                 `json:"next_screen"`
}

type SelectionResponse struct {
	Selected   SearchResultResponse `json:"selected"`
	NextScreen string               `json:"next_screen"`
}

type DetectCityResponse struct {
	City  string            `json:"city"`
	State FlowStateResponse `json:"state"`
}

type FlowDetailResponse struct {
	HospitalDetailResponse
	SelectedTreatment TreatmentResponse `json:"selected_treatment"`
}
