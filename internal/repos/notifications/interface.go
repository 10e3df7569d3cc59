package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Type string

const (
	TypeOfferAccepted      Type = "offer_accepted"
	TypeOfferRejected      Type = "offer_rejected"
	TypeCardSold           Type = "card_sold"
	TypeTransactionExpired Type = "transaction_expired"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      Type
	Title     string
	Message   string
	ListingID uuid.NullUUID
	OfferID   uuid.NullUUID
	Read      bool
	CreatedAt time.Time
}

// Notifications are written outside workflow transactions; a failed insert
// never rolls back the state change that triggered it.
type Notifications interface {
	Insert(ctx context.Context, n Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}
