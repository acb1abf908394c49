package converter

import (
	"medicompare/internal/delivery/dto"
	"medicompare/internal/domain/entity"
	"medicompare/internal/usecase"
)

func FlowSessionToResponse(s *entity.FlowSession) *dto.FlowStateResponse {
	if s == nil {
		return nil
	}

	resp := &dto.FlowStateResponse{
		SessionID:     s.ID,
		Phone:         s.Phone,
		City:          s.City,
		TreatmentName: s.TreatmentName,
		Budget:        dto.BudgetRangeResponse{Min: s.Budget.Min, Max: s.Budget.Max},
		Results:       SearchResultsToResponses(s.Results),
		UpdatedAt:     s.UpdatedAt,
	}
	if s.Selected != nil {
		selected := SearchResultToResponse(*s.Selected)
		resp.Selected = &selected
	}
	return resp
}

func GuardDecisionToResponse(d entity.GuardDecision) dto.GuardDecisionResponse {
	return dto.GuardDecisionResponse{
		Screen:     string(d.Screen),
		Proceed:    d.Proceed,
		RedirectTo: string(d.RedirectTo),
	}
}

func AuthenticationToResponse(a *usecase.Authentication) *dto.AuthResponse {
	return &dto.AuthResponse{
		Token:      a.Token,
		SessionID:  a.Session.ID.String(),
		ExpiresIn:  int64(a.ExpiresIn.Seconds()),
		NextScreen: string(a.NextScreen),
	}
}

func OTPChallengeToResponse(c *usecase.OTPChallenge) *dto.OTPChallengeResponse {
	return &dto.OTPChallengeResponse{
		Phone:  c.Phone,
		Length: c.Length,
		Hint:   c.Hint,
	}
}

func DetailViewToResponse(v *usecase.DetailView) *dto.FlowDetailResponse {
	return &dto.FlowDetailResponse{
		HospitalDetailResponse: *HospitalDetailToResponse(v.Detail),
		SelectedTreatment:      TreatmentToResponse(v.Treatment),
	}
}
