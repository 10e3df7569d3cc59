package api

import (
	"net/http"
	"strings"

	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/services/escrow"
	"github.com/shopspring/decimal"
)

type createListingRequest struct {
	Name        string              `json:"name"`
	ListingType string              `json:"listingType"`
	Price       decimal.NullDecimal `json:"price"`
	CurrentBid  decimal.NullDecimal `json:"currentBid"`
	TicketPrice decimal.NullDecimal `json:"ticketPrice"`
}

type placeOfferRequest struct {
	Price decimal.Decimal `json:"price"`
}

// CreateListingHandler handles POST /listings
func (h *HandlerProvider) CreateListingHandler(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.svc.CreateListing(r.Context(), caller(r), escrow.NewListing{
		Name:        req.Name,
		Type:        listings.Type(strings.ToLower(strings.TrimSpace(req.ListingType))),
		Price:       req.Price,
		CurrentBid:  req.CurrentBid,
		TicketPrice: req.TicketPrice,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListing(l))
}

// GetListingHandler handles GET /listings/{listingId}
func (h *HandlerProvider) GetListingHandler(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathUUID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.svc.GetListing(r.Context(), listingID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListing(l))
}

// ListOffersHandler handles GET /listings/{listingId}/offers
func (h *HandlerProvider) ListOffersHandler(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathUUID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.svc.ListOffers(r.Context(), listingID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(list, toOffer))
}

// PlaceOfferHandler handles POST /listings/{listingId}/offers
func (h *HandlerProvider) PlaceOfferHandler(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathUUID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req placeOfferRequest

	err = decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.svc.PlaceOffer(r.Context(), caller(r), listingID, req.Price)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOffer(o))
}

// AcceptOfferHandler handles POST /listings/{listingId}/offers/{offerId}/accept
func (h *HandlerProvider) AcceptOfferHandler(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathUUID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offerID, err := pathUUID(r, "offerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := h.svc.AcceptOffer(r.Context(), caller(r), listingID, offerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransaction(txn))
}

// RejectOfferHandler handles POST /listings/{listingId}/offers/{offerId}/reject
func (h *HandlerProvider) RejectOfferHandler(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathUUID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offerID, err := pathUUID(r, "offerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.svc.RejectOffer(r.Context(), caller(r), listingID, offerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOffer(o))
}
