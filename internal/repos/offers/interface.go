package offers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOfferNotFound   = errors.New("offer not found")
	ErrOfferNotPending = errors.New("offer is not pending")
	ErrBuyerNotFound   = errors.New("buyer profile not found")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusChosen   Status = "chosen"
	StatusRejected Status = "rejected"
	StatusAccepted Status = "accepted"
)

type Offer struct {
	ID            uuid.UUID
	ListingID     uuid.UUID
	BuyerID       uuid.UUID
	Price         decimal.Decimal
	Status        Status
	TransactionID uuid.NullUUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Offers interface {
	Get(ctx context.Context, id uuid.UUID) (Offer, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]Offer, error)
	LockAndGet(ctx context.Context, tx *sql.Tx, id uuid.UUID) (Offer, error)
	Upsert(ctx context.Context, tx *sql.Tx, o Offer) (Offer, error)
	Choose(ctx context.Context, tx *sql.Tx, id, transactionID uuid.UUID) error
	Reject(ctx context.Context, tx *sql.Tx, id uuid.UUID) error
}
