package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/services/escrow"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// HandlerProvider exposes the escrow workflow over HTTP.
type HandlerProvider struct {
	svc  Workflow
	feed feed.Subscriber
}

// NewHandler returns a handler provider. sub may be nil when the realtime feed is disabled.
func NewHandler(svc Workflow, sub feed.Subscriber) *HandlerProvider {
	return &HandlerProvider{svc: svc, feed: sub}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps workflow errors to status codes. Unknown errors are
// logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status int
		msg    string
	)

	switch {
	case errors.Is(err, escrow.ErrReasonTooShort),
		errors.Is(err, escrow.ErrInvalidListing),
		errors.Is(err, escrow.ErrInvalidPrice):
		status, msg = http.StatusBadRequest, err.Error()

	case errors.Is(err, escrow.ErrForbidden):
		status, msg = http.StatusForbidden, "forbidden"

	case errors.Is(err, escrow.ErrListingNotFound):
		status, msg = http.StatusNotFound, "listing not found"
	case errors.Is(err, escrow.ErrOfferNotFound):
		status, msg = http.StatusNotFound, "offer not found"
	case errors.Is(err, escrow.ErrTransactionNotFound):
		status, msg = http.StatusNotFound, "transaction not found"
	case errors.Is(err, escrow.ErrProfileNotFound):
		status, msg = http.StatusNotFound, "user not found"
	case errors.Is(err, escrow.ErrNotificationNotFound):
		status, msg = http.StatusNotFound, "notification not found"

	case errors.Is(err, escrow.ErrListingUnavailable):
		status, msg = http.StatusConflict, "listing no longer available"
	case errors.Is(err, escrow.ErrTransactionClosed):
		status, msg = http.StatusConflict, "transaction already closed"
	case errors.Is(err, escrow.ErrTransactionExpired):
		status, msg = http.StatusConflict, "transaction expired"
	case errors.Is(err, escrow.ErrInvalidOffer):
		status, msg = http.StatusConflict, "offer is not pending on this listing"
	case errors.Is(err, escrow.ErrNotForSale):
		status, msg = http.StatusConflict, "listing does not take direct offers"
	case errors.Is(err, escrow.ErrInvalidTransition), errors.Is(err, escrow.ErrNotExpired):
		status, msg = http.StatusConflict, "invalid state transition"

	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		status, msg = http.StatusInternalServerError, "internal error"
	}

	writeError(w, status, msg)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}

		return errors.New("invalid JSON")
	}

	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("missing %s", name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}

	return id, nil
}

// caller is only called behind RequireUser.
func caller(r *http.Request) uuid.UUID {
	id, _ := UserFromContext(r.Context())
	return id
}
