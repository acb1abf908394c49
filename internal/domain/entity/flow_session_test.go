package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)

func apolloHeartSurgery() SearchResult {
	return SearchResult{
		Hospital:  Hospital{ID: "H001", Name: "Apollo Hospital", City: "Hyderabad", Rating: 4.7, Specialties: []string{"Cardiology"}},
		Treatment: Treatment{ID: "T001", Name: "Heart Surgery", Cost: decimal.NewFromInt(3000), HospitalID: "H001"},
	}
}

func TestNewFlowSession(t *testing.T) {
	s := NewFlowSession("9876543210", t0)

	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
	assert.Equal(t, DefaultBudget(), s.Budget)
	assert.NotNil(t, s.Results)
	assert.Nil(t, s.Selected)
	assert.False(t, s.HasCity())
}

func TestGuard(t *testing.T) {
	s := NewFlowSession("9876543210", t0)

	d := s.Guard(ScreenSearch)
	assert.False(t, d.Proceed)
	assert.Equal(t, ScreenLocation, d.RedirectTo)

	d = s.Guard(ScreenDetail)
	assert.False(t, d.Proceed)
	assert.Equal(t, ScreenHospitals, d.RedirectTo)

	for _, screen := range []Screen{ScreenLogin, ScreenLocation, ScreenHospitals} {
		assert.True(t, s.Guard(screen).Proceed, screen)
	}

	s.SetCity("Hyderabad", t0)
	assert.True(t, s.Guard(ScreenSearch).Proceed)

	s.SelectForDetail(apolloHeartSurgery(), t0)
	assert.True(t, s.Guard(ScreenDetail).Proceed)
}

func TestRecordSearch_CopiesResults(t *testing.T) {
	s := NewFlowSession("9876543210", t0)
	results := []SearchResult{apolloHeartSurgery()}

	later := t0.Add(time.Minute)
	s.RecordSearch("Heart Surgery", BudgetRange{Min: decimal.NewFromInt(2000), Max: decimal.NewFromInt(3500)}, results, later)
	results[0].Hospital.Name = "changed"

	assert.Equal(t, "Apollo Hospital", s.Results[0].Hospital.Name)
	assert.Equal(t, "Heart Surgery", s.TreatmentName)
	assert.Equal(t, later, s.UpdatedAt)
}

func TestFindResult(t *testing.T) {
	s := NewFlowSession("9876543210", t0)
	s.RecordSearch("Heart Surgery", DefaultBudget(), []SearchResult{apolloHeartSurgery()}, t0)

	r, ok := s.FindResult("H001", "T001")
	require.True(t, ok)
	assert.Equal(t, "Apollo Hospital", r.Hospital.Name)

	_, ok = s.FindResult("H001", "T002")
	assert.False(t, ok)
}

func TestClone_SharesNothing(t *testing.T) {
	s := NewFlowSession("9876543210", t0)
	s.RecordSearch("Heart Surgery", DefaultBudget(), []SearchResult{apolloHeartSurgery()}, t0)
	s.SelectForDetail(apolloHeartSurgery(), t0)

	c := s.Clone()
	c.Results[0].Hospital.Specialties[0] = "changed"
	c.Selected.Hospital.Name = "changed"

	assert.Equal(t, "Cardiology", s.Results[0].Hospital.Specialties[0])
	assert.Equal(t, "Apollo Hospital", s.Selected.Hospital.Name)
	assert.Nil(t, (*FlowSession)(nil).Clone())
}
