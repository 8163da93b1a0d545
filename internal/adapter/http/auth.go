package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"reklamito/internal/core/domain"
)

type contextKey struct{}

var userKey contextKey

// userFrom returns the authenticated user stored by the middleware, if any.
func userFrom(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

// bearerToken extracts the token from an "Authorization: Bearer ..."
// header; empty when the header is absent or malformed.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// requireUser guards the management API. Requests without a resolvable
// token get 401; lookup failures are treated the same rather than leaking
// storage errors to unauthenticated callers.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		user, err := h.identity.UserByToken(r.Context(), token)
		if err != nil {
			h.logger.Error("token lookup error", slog.Any("error", err))
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		if user == nil {
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, *user)))
	})
}

// withOptionalUser resolves a bearer token when one is supplied but never
// rejects the request. The serving endpoints stay public; a known user only
// enriches the recorded event.
func (h *Handler) withOptionalUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			user, err := h.identity.UserByToken(r.Context(), token)
			if err != nil {
				h.logger.Warn("token lookup error", slog.Any("error", err))
			} else if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, *user))
			}
		}
		next(w, r)
	}
}
