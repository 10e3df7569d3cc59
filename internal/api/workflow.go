package api

//go:generate mockgen -source=workflow.go -destination=mock/workflow.go -package=mock

import (
	"context"

	"github.com/fastprodman/cardescrow/internal/services/escrow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Workflow is the part of the escrow service the HTTP layer calls.
type Workflow interface {
	CreateListing(ctx context.Context, sellerID uuid.UUID, in escrow.NewListing) (escrow.Listing, error)
	GetListing(ctx context.Context, listingID uuid.UUID) (escrow.Listing, error)
	ListOffers(ctx context.Context, listingID uuid.UUID) ([]escrow.Offer, error)
	PlaceOffer(ctx context.Context, buyerID, listingID uuid.UUID, price decimal.Decimal) (escrow.Offer, error)
	AcceptOffer(ctx context.Context, actorID, listingID, offerID uuid.UUID) (escrow.Transaction, error)
	RejectOffer(ctx context.Context, sellerID, listingID, offerID uuid.UUID) (escrow.Offer, error)

	GetTransaction(ctx context.Context, viewerID, transactionID uuid.UUID) (escrow.Transaction, error)
	ListCancellations(ctx context.Context, viewerID, transactionID uuid.UUID) ([]escrow.Cancellation, error)
	Complete(ctx context.Context, actorID, transactionID uuid.UUID) (escrow.Transaction, error)
	Cancel(ctx context.Context, actorID, transactionID uuid.UUID, reason string) (escrow.Transaction, error)

	GetReputation(ctx context.Context, userID uuid.UUID) (escrow.Reputation, error)
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]escrow.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

var _ Workflow = (*escrow.Service)(nil)
