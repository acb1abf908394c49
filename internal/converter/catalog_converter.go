package converter

import (
	"medicompare/internal/delivery/dto"
	"medicompare/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(h *entity.Hospital) *dto.HospitalResponse {
	if h == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:            h.ID,
		Name:          h.Name,
		Image:         h.Image,
		Address:       h.Address,
		City:          h.City,
		Rating:        h.Rating,
		ReviewsCount:  h.ReviewsCount,
		Timings:       h.Timings,
		ContactNumber: h.ContactNumber,
		Specialties:   append([]string{}, h.Specialties...),
		Established:   h.Established,
		Beds:          h.Beds,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = dto.DoctorResponse{
			ID:             d.ID,
			Name:           d.Name,
			Specialization: d.Specialization,
			Qualification:  d.Qualification,
			Experience:     d.Experience,
			HospitalID:     d.HospitalID,
		}
	}
	return responses
}

func TreatmentToResponse(t entity.Treatment) dto.TreatmentResponse {
	return dto.TreatmentResponse{
		ID:              t.ID,
		Name:            t.Name,
		Cost:            t.Cost,
		ConsultationFee: t.ConsultationFee,
		HospitalID:      t.HospitalID,
		Duration:        t.Duration,
		Description:     t.Description,
	}
}

func TreatmentsToResponses(treatments []entity.Treatment) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, len(treatments))
	for i, t := range treatments {
		responses[i] = TreatmentToResponse(t)
	}
	return responses
}

func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		responses[i] = dto.ReviewResponse{
			ID:          r.ID,
			PatientName: r.PatientName,
			Rating:      r.Rating,
			Comment:     r.Comment,
			HospitalID:  r.HospitalID,
			Date:        r.Date,
			Verified:    r.Verified,
		}
	}
	return responses
}

func SearchResultToResponse(r entity.SearchResult) dto.SearchResultResponse {
	return dto.SearchResultResponse{
		HospitalResponse: *HospitalToResponse(&r.Hospital),
		Treatment:        TreatmentToResponse(r.Treatment),
	}
}

// SearchResultsToResponses keeps the result order
func SearchResultsToResponses(results []entity.SearchResult) []dto.SearchResultResponse {
	responses := make([]dto.SearchResultResponse, len(results))
	for i, r := range results {
		responses[i] = SearchResultToResponse(r)
	}
	return responses
}

func BudgetPresetsToResponses(presets []entity.BudgetPreset) []dto.BudgetPresetResponse {
	responses := make([]dto.BudgetPresetResponse, len(presets))
	for i, p := range presets {
		responses[i] = dto.BudgetPresetResponse{Label: p.Label, Min: p.Range.Min, Max: p.Range.Max}
	}
	return responses
}

func ReviewSummaryToResponse(s entity.ReviewSummary) dto.ReviewSummaryResponse {
	histogram := make([]dto.StarCountResponse, len(s.Histogram))
	for i, bar := range s.Histogram {
		histogram[i] = dto.StarCountResponse{Stars: bar.Stars, Count: bar.Count, Percent: bar.Percent}
	}
	return dto.ReviewSummaryResponse{
		Count:         s.Count,
		AverageRating: s.AverageRating,
		Histogram:     histogram,
	}
}

func HospitalDetailToResponse(d *entity.HospitalDetail) *dto.HospitalDetailResponse {
	if d == nil {
		return nil
	}

	return &dto.HospitalDetailResponse{
		Hospital:   *HospitalToResponse(&d.Hospital),
		Doctors:    DoctorsToResponses(d.Doctors),
		Treatments: TreatmentsToResponses(d.Treatments),
		Reviews:    ReviewsToResponses(d.Reviews),
		Summary:    ReviewSummaryToResponse(d.Summary),
	}
}
