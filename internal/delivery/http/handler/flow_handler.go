package handler

import (
	"encoding/json"
	"net/http"

	"medicompare/internal/converter"
	"medicompare/internal/delivery/dto"
	"medicompare/internal/delivery/http/middleware"
	"medicompare/internal/domain/entity"
	"medicompare/internal/usecase"
	"medicompare/pkg/response"
	"medicompare/pkg/validator"

	"github.com/gorilla/mux"
)

type FlowHandler struct {
	flowUsecase     usecase.FlowUsecase
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewFlowHandler(flowUsecase usecase.FlowUsecase, locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *FlowHandler {
	return &FlowHandler{
		flowUsecase:     flowUsecase,
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

func (h *FlowHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	session, err := h.flowUsecase.State(r.Context(), sessionID)
	if err != nil {
		writeFlowError(w, err, "Failed to load flow state")
		return
	}

	response.Success(w, http.StatusOK, "Flow state retrieved successfully", converter.FlowSessionToResponse(session))
}

// EnterScreen reports whether the session may enter {screen}; a redirect is still a 200
func (h *FlowHandler) EnterScreen(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	screen, ok := entity.ParseScreen(mux.Vars(r)["screen"])
	if !ok {
		response.NotFound(w, "Unknown screen")
		return
	}

	decision, err := h.flowUsecase.Enter(r.Context(), sessionID, screen)
	if err != nil {
		writeFlowError(w, err, "Failed to evaluate screen guard")
		return
	}

	response.Success(w, http.StatusOK, "Guard evaluated", converter.GuardDecisionToResponse(decision))
}

func (h *FlowHandler) SetCity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	session, err := h.flowUsecase.SetCity(r.Context(), sessionID, req.City)
	if err != nil {
		writeFlowError(w, err, "Failed to set city")
		return
	}

	response.Success(w, http.StatusOK, "City selected", converter.FlowSessionToResponse(session))
}

// DetectCity simulates GPS detection and selects the detected city
func (h *FlowHandler) DetectCity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	detected := make(chan string, 1)
	h.locationUsecase.DetectCity(r.Context(), func(city string) {
		detected <- city
	})

	var city string
	select {
	case city = <-detected:
	case <-r.Context().Done():
		return
	}

	session, err := h.flowUsecase.SetCity(r.Context(), sessionID, city)
	if err != nil {
		writeFlowError(w, err, "Failed to set detected city")
		return
	}

	response.Success(w, http.StatusOK, "Location detected", dto.DetectCityResponse{
		City:  session.City,
		State: *converter.FlowSessionToResponse(session),
	})
}

func (h *FlowHandler) Search(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	minBudget, maxBudget := entity.DefaultMinBudget, entity.DefaultMaxBudget
	if req.MinBudget != nil {
		minBudget = *req.MinBudget
	}
	if req.MaxBudget != nil {
		maxBudget = *req.MaxBudget
	}

	outcome, err := h.flowUsecase.RunSearch(r.Context(), sessionID, req.Treatment, minBudget, maxBudget)
	if err != nil {
		writeFlowError(w, err, "Failed to search hospitals")
		return
	}

	results := converter.SearchResultsToResponses(outcome.Results)
	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Message: "Search completed",
		Data:    dto.SearchResponse{Results: results, NextScreen: string(outcome.NextScreen)},
		Meta:    &response.Meta{Total: len(results)},
	})
}

func (h *FlowHandler) Select(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	outcome, err := h.flowUsecase.SelectForDetail(r.Context(), sessionID, req.HospitalID, req.TreatmentID)
	if err != nil {
		writeFlowError(w, err, "Failed to select hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital selected", dto.SelectionResponse{
		Selected:   converter.SearchResultToResponse(outcome.Selected),
		NextScreen: string(outcome.NextScreen),
	})
}

func (h *FlowHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	view, err := h.flowUsecase.Detail(r.Context(), sessionID)
	if err != nil {
		writeFlowError(w, err, "Failed to load hospital detail")
		return
	}

	response.Success(w, http.StatusOK, "Hospital detail retrieved successfully", converter.DetailViewToResponse(view))
}
