package api

import (
	"net/http"

	"github.com/fastprodman/cardescrow/internal/infra/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter registers every API endpoint on a chi router.
func NewRouter(h *HandlerProvider) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(headerUserID))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(RequireUser)

		r.Post("/listings", h.CreateListingHandler)
		r.Route("/listings/{listingId}", func(r chi.Router) {
			r.Get("/", h.GetListingHandler)
			r.Get("/offers", h.ListOffersHandler)
			r.Post("/offers", h.PlaceOfferHandler)
			r.Post("/offers/{offerId}/accept", h.AcceptOfferHandler)
			r.Post("/offers/{offerId}/reject", h.RejectOfferHandler)
		})

		r.Route("/transactions/{transactionId}", func(r chi.Router) {
			r.Get("/", h.GetTransactionHandler)
			r.Get("/cancellations", h.ListCancellationsHandler)
			r.Get("/events", h.TransactionEventsHandler)
			r.Post("/complete", h.CompleteTransactionHandler)
			r.Post("/cancel", h.CancelTransactionHandler)
		})

		r.Get("/users/{userId}/reputation", h.GetReputationHandler)

		r.Get("/notifications", h.ListNotificationsHandler)
		r.Post("/notifications/{notificationId}/read", h.MarkNotificationReadHandler)
	})

	return r
}
