package handler

import (
	"errors"
	"net/http"

	"medicompare/internal/converter"
	"medicompare/internal/usecase"
	"medicompare/pkg/response"
)

// writeFlowError maps usecase errors onto HTTP statuses.
// Anything unrecognised is an infrastructure fault and answers 500 with fallback.
func writeFlowError(w http.ResponseWriter, err error, fallback string) {
	var verr *usecase.ValidationError
	var gerr *usecase.GuardError

	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Fields)
	case errors.As(err, &gerr):
		response.Conflict(w, "Screen "+string(gerr.Decision.Screen)+" is not available yet", converter.GuardDecisionToResponse(gerr.Decision))
	case errors.Is(err, usecase.ErrSessionNotFound):
		response.Unauthorized(w, "Session has ended")
	case errors.Is(err, usecase.ErrResultNotInSearch):
		response.NotFound(w, "Result not found in the last search")
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
