package handler

import (
	"encoding/json"
	"net/http"

	"medicompare/internal/converter"
	"medicompare/internal/delivery/dto"
	"medicompare/internal/delivery/http/middleware"
	"medicompare/internal/usecase"
	"medicompare/pkg/response"
	"medicompare/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

type otpOutcome struct {
	challenge *usecase.OTPChallenge
	err       error
}

type authOutcome struct {
	auth *usecase.Authentication
	err  error
}

// RequestOTP handles POST /auth/otp. The response is written once the simulated send completes.
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// buffered so a late completion never blocks after the client has gone
	done := make(chan otpOutcome, 1)
	h.authUsecase.RequestOTP(r.Context(), req.Phone, func(c *usecase.OTPChallenge, err error) {
		done <- otpOutcome{challenge: c, err: err}
	})

	select {
	case out := <-done:
		if out.err != nil {
			writeFlowError(w, out.err, "Failed to send OTP")
			return
		}
		response.Success(w, http.StatusOK, "OTP sent successfully", converter.OTPChallengeToResponse(out.challenge))
	case <-r.Context().Done():
	}
}

// VerifyOTP handles POST /auth/verify and starts a flow session on success
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	done := make(chan authOutcome, 1)
	h.authUsecase.VerifyOTP(r.Context(), req.Phone, req.OTP, func(a *usecase.Authentication, err error) {
		done <- authOutcome{auth: a, err: err}
	})

	select {
	case out := <-done:
		if out.err != nil {
			writeFlowError(w, out.err, "Failed to verify OTP")
			return
		}
		response.Success(w, http.StatusOK, "Login successful", converter.AuthenticationToResponse(out.auth))
	case <-r.Context().Done():
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), sessionID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
