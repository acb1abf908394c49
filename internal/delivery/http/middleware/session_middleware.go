package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"medicompare/internal/usecase"
	"medicompare/pkg/jwt"
	"medicompare/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const SessionIDKey contextKey = "session_id"

type SessionMiddleware struct {
	jwtService  *jwt.JWTService
	flowUsecase usecase.FlowUsecase
}

func NewSessionMiddleware(jwtService *jwt.JWTService, flowUsecase usecase.FlowUsecase) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService:  jwtService,
		flowUsecase: flowUsecase,
	}
}

// Authenticate accepts a bearer session token whose flow session still exists
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.SessionToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// logout deletes the session, which revokes every token issued for it
		if _, err := m.flowUsecase.State(r.Context(), claims.SessionID); err != nil {
			if errors.Is(err, usecase.ErrSessionNotFound) {
				response.Unauthorized(w, "Session has ended")
				return
			}
			response.InternalServerError(w, "Failed to validate session")
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionIDFromContext extracts the flow session ID from context
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(uuid.UUID)
	return sessionID, ok
}
