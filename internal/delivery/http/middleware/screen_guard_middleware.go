package middleware

import (
	"net/http"

	"medicompare/internal/converter"
	"medicompare/internal/domain/entity"
	"medicompare/internal/usecase"
	"medicompare/pkg/response"
)

// RequireScreen rejects the request with 409 and the redirect decision when the
// session may not enter screen yet. The session is read from context (set by SessionMiddleware).
func RequireScreen(flowUsecase usecase.FlowUsecase, screen entity.Screen) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := GetSessionIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Session information not found")
				return
			}

			decision, err := flowUsecase.Enter(r.Context(), sessionID, screen)
			if err != nil {
				response.InternalServerError(w, "Failed to evaluate screen guard")
				return
			}

			if !decision.Proceed {
				response.Conflict(w, "Screen "+string(screen)+" is not available yet", converter.GuardDecisionToResponse(decision))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
