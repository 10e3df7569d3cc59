package api

import (
	"time"

	"github.com/fastprodman/cardescrow/internal/services/escrow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prices go over the wire as fixed two-decimal strings.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

func nullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}

	s := money(d.Decimal)

	return &s
}

func nullUUID(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}

	return &id.UUID
}

type listingResponse struct {
	ID            uuid.UUID `json:"id"`
	SellerID      uuid.UUID `json:"sellerId"`
	Name          string    `json:"name"`
	ListingType   string    `json:"listingType"`
	Price         *string   `json:"price"`
	CurrentBid    *string   `json:"currentBid"`
	TicketPrice   *string   `json:"ticketPrice"`
	Status        string    `json:"status"`
	LastSoldPrice *string   `json:"lastSoldPrice"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toListing(l escrow.Listing) listingResponse {
	return listingResponse{
		ID:            l.ID,
		SellerID:      l.SellerID,
		Name:          l.Name,
		ListingType:   string(l.Type),
		Price:         nullMoney(l.Price),
		CurrentBid:    nullMoney(l.CurrentBid),
		TicketPrice:   nullMoney(l.TicketPrice),
		Status:        string(l.Status),
		LastSoldPrice: nullMoney(l.LastSoldPrice),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

type offerResponse struct {
	ID            uuid.UUID  `json:"id"`
	ListingID     uuid.UUID  `json:"cardId"`
	BuyerID       uuid.UUID  `json:"buyerId"`
	Price         string     `json:"price"`
	Status        string     `json:"status"`
	TransactionID *uuid.UUID `json:"transactionId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toOffer(o escrow.Offer) offerResponse {
	return offerResponse{
		ID:            o.ID,
		ListingID:     o.ListingID,
		BuyerID:       o.BuyerID,
		Price:         money(o.Price),
		Status:        string(o.Status),
		TransactionID: nullUUID(o.TransactionID),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type transactionResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ListingID          uuid.UUID  `json:"cardId"`
	SellerID           uuid.UUID  `json:"sellerId"`
	BuyerID            uuid.UUID  `json:"buyerId"`
	OfferID            uuid.UUID  `json:"offerId"`
	Price              string     `json:"price"`
	Status             string     `json:"status"`
	ExpiresAt          time.Time  `json:"expiresAt"`
	CancelledBy        *string    `json:"cancelledBy"`
	CancellationReason *string    `json:"cancellationReason"`
	CreatedAt          time.Time  `json:"createdAt"`
	CompletedAt        *time.Time `json:"completedAt"`
	CancelledAt        *time.Time `json:"cancelledAt"`
}

func toTransaction(t escrow.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:                 t.ID,
		ListingID:          t.ListingID,
		SellerID:           t.SellerID,
		BuyerID:            t.BuyerID,
		OfferID:            t.OfferID,
		Price:              money(t.Price),
		Status:             string(t.Status),
		ExpiresAt:          t.ExpiresAt,
		CancellationReason: t.CancellationReason,
		CreatedAt:          t.CreatedAt,
		CompletedAt:        t.CompletedAt,
		CancelledAt:        t.CancelledAt,
	}

	if t.CancelledBy != nil {
		by := string(*t.CancelledBy)
		resp.CancelledBy = &by
	}

	return resp
}

type cancellationResponse struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transactionId"`
	ListingID     uuid.UUID `json:"cardId"`
	CancelledBy   string    `json:"cancelledBy"`
	Reason        *string   `json:"reason"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toCancellation(c escrow.Cancellation) cancellationResponse {
	return cancellationResponse{
		ID:            c.ID,
		TransactionID: c.TransactionID,
		ListingID:     c.ListingID,
		CancelledBy:   c.CancelledBy,
		Reason:        c.Reason,
		CreatedAt:     c.CreatedAt,
	}
}

type reputationResponse struct {
	UserID                uuid.UUID `json:"userId"`
	LegitRate             int       `json:"legitRate"`
	TotalTransactions     int       `json:"totalTransactions"`
	CompletedTransactions int       `json:"completedTransactions"`
	CancelledTransactions int       `json:"cancelledTransactions"`
	DailyCancellations    int       `json:"dailyCancellations"`
	LastCancellationDate  *string   `json:"lastCancellationDate"`
}

func toReputation(rep escrow.Reputation) reputationResponse {
	resp := reputationResponse{
		UserID:                rep.UserID,
		LegitRate:             rep.LegitRate,
		TotalTransactions:     rep.TotalTransactions,
		CompletedTransactions: rep.CompletedTransactions,
		CancelledTransactions: rep.CancelledTransactions,
		DailyCancellations:    rep.DailyCancellations,
	}

	if rep.LastCancellationDate != nil {
		d := rep.LastCancellationDate.Format(time.DateOnly)
		resp.LastCancellationDate = &d
	}

	return resp
}

type notificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ListingID *uuid.UUID `json:"cardId"`
	OfferID   *uuid.UUID `json:"offerId"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toNotification(n escrow.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		ListingID: nullUUID(n.ListingID),
		OfferID:   nullUUID(n.OfferID),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}

	return out
}
