package entity

import (
	"time"

	"github.com/google/uuid"
)

// FlowSession holds one user's in-progress selections across the five screens.
// It is created after a successful OTP check and addressed by ID.
type FlowSession struct {
	ID            uuid.UUID      `json:"id"`
	Phone         string         `json:"phone"`
	City          string         `json:"city,omitempty"`
	TreatmentName string         `json:"treatment_name,omitempty"`
	Budget        BudgetRange    `json:"budget"`
	Results       []SearchResult `json:"results"`
	Selected      *SearchResult  `json:"selected,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewFlowSession creates a session with default budget and nothing selected
func NewFlowSession(phone string, now time.Time) *FlowSession {
	return &FlowSession{
		ID:        uuid.New(),
		Phone:     phone,
		Budget:    DefaultBudget(),
		Results:   []SearchResult{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetCity overwrites the selected city. Previous results are kept.
func (s *FlowSession) SetCity(city string, now time.Time) {
	s.City = city
	s.UpdatedAt = now
}

// RecordSearch stores the search parameters and a copy of its results
func (s *FlowSession) RecordSearch(treatmentName string, budget BudgetRange, results []SearchResult, now time.Time) {
	s.TreatmentName = treatmentName
	s.Budget = budget
	s.Results = append(make([]SearchResult, 0, len(results)), results...)
	s.UpdatedAt = now
}

// FindResult returns the last-search result for the hospital/treatment pair
func (s *FlowSession) FindResult(hospitalID, treatmentID string) (SearchResult, bool) {
	for _, r := range s.Results {
		if r.Matches(hospitalID, treatmentID) {
			return r, true
		}
	}
	return SearchResult{}, false
}

// SelectForDetail stores the result the user drilled into
func (s *FlowSession) SelectForDetail(result SearchResult, now time.Time) {
	selected := result
	s.Selected = &selected
	s.UpdatedAt = now
}

// HasCity reports whether a city has been chosen
func (s *FlowSession) HasCity() bool {
	return s.City != ""
}

// Guard evaluates the entry condition of a screen.
// Search needs a city and detail needs a selected result; other screens always proceed.
func (s *FlowSession) Guard(screen Screen) GuardDecision {
	switch screen {
	case ScreenSearch:
		if !s.HasCity() {
			return redirect(screen, ScreenLocation)
		}
	case ScreenDetail:
		if s.Selected == nil {
			return redirect(screen, ScreenHospitals)
		}
	}
	return proceed(screen)
}

// Clone returns a deep copy that shares no slices or pointers with s
func (s *FlowSession) Clone() *FlowSession {
	if s == nil {
		return nil
	}
	c := *s
	c.Results = make([]SearchResult, len(s.Results))
	for i, r := range s.Results {
		c.Results[i] = r.clone()
	}
	if s.Selected != nil {
		selected := s.Selected.clone()
		c.Selected = &selected
	}
	return &c
}
