package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// UserIDHeader carries the caller's profile id. Authentication happens upstream.
const UserIDHeader = "X-User-Id"

type ctxKey struct{}

// RequireUser rejects requests without a valid caller id with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(strings.TrimSpace(r.Header.Get(UserIDHeader)))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "missing or invalid "+UserIDHeader+" header")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// UserFromContext returns the id stored by RequireUser.
func UserFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return id, ok
}

func headerUserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(UserIDHeader))
}
