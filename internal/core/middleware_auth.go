package core

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"atmosai/internal/types"
)

// authPublicPaths lists URL paths that are exempt from authentication.
var authPublicPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// AuthMiddleware gates every non-public endpoint behind the service API key.
//
//  1. Extracts the Bearer token from the Authorization header.
//  2. Calls Authenticator.Verify.
//  3. Returns 401 Unauthorized on failure with distinct error codes:
//     - auth_token_missing: no Authorization header or empty Bearer token.
//     - auth_token_invalid: the presented key does not match.
//
// If the Authenticator field on Server is nil (e.g. during tests that don't
// inject one), the middleware passes through without authentication.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Authenticator == nil {
			next.ServeHTTP(w, r)
			return
		}

		if authPublicPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.writeAuthError(w, r, types.ErrCodeAuthTokenMissing, "Authorization header is required")
			return
		}

		token := extractBearerToken(authHeader)
		if token == "" {
			s.writeAuthError(w, r, types.ErrCodeAuthTokenMissing, "Bearer token is required")
			return
		}

		if err := s.Authenticator.Verify(r.Context(), token); err != nil {
			s.Logger.Warn("authentication failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			s.writeAuthError(w, r, types.ErrCodeAuthTokenInvalid, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractBearerToken parses the Authorization header value and returns the
// token string. It expects the format "Bearer <token>" (case-insensitive
// scheme per RFC 7235). Returns empty string if the format is invalid.
func extractBearerToken(authHeader string) string {
	const prefix = "Bearer "
	if len(authHeader) < len(prefix) {
		return ""
	}
	if !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(prefix):])
}

// writeAuthError writes a 401 Unauthorized JSON response with the given code.
func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, code types.ErrorCode, message string) {
	resp := APIErrorResponse{
		Error: ErrorDetail{
			Code:      string(code),
			Message:   message,
			RequestID: types.GetRequestID(r.Context()),
		},
	}
	JSON(w, r, http.StatusUnauthorized, resp)
}

// StaticKeyAuthenticator verifies bearer tokens against the single service
// API key from configuration. The comparison is constant-time so response
// timing reveals nothing about the key.
type StaticKeyAuthenticator struct {
	key types.SecretString
}

// NewStaticKeyAuthenticator creates an Authenticator for the given key.
func NewStaticKeyAuthenticator(key types.SecretString) *StaticKeyAuthenticator {
	return &StaticKeyAuthenticator{key: key}
}

// Verify implements Authenticator.
func (a *StaticKeyAuthenticator) Verify(_ context.Context, token string) error {
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.key.Unmask())) != 1 {
		return types.NewAppError(types.ErrCodeAuthTokenInvalid, "invalid API key", nil)
	}
	return nil
}
