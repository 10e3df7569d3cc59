package listings

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingUnavailable means a guarded status change matched zero rows:
	// another request moved the listing first.
	ErrListingUnavailable = errors.New("listing no longer available")
)

type Type string

const (
	TypeSale    Type = "sale"
	TypeAuction Type = "auction"
	TypeRazz    Type = "razz"
)

type Status string

const (
	StatusActive        Status = "active"
	StatusInTransaction Status = "in_transaction"
	StatusSold          Status = "sold"
	StatusExpired       Status = "expired"
)

// Listing is a sellable card. Which of Price, CurrentBid and TicketPrice is
// meaningful depends on Type.
type Listing struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	Name          string
	Type          Type
	Price         decimal.NullDecimal
	CurrentBid    decimal.NullDecimal
	TicketPrice   decimal.NullDecimal
	Status        Status
	LastSoldPrice decimal.NullDecimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Listings interface {
	Create(ctx context.Context, tx *sql.Tx, l Listing) error
	Get(ctx context.Context, id uuid.UUID) (Listing, error)
	LockAndGet(ctx context.Context, tx *sql.Tx, id uuid.UUID) (Listing, error)
	SetStatus(ctx context.Context, tx *sql.Tx, id uuid.UUID, from, to Status) error
	MarkSold(ctx context.Context, tx *sql.Tx, id uuid.UUID, price decimal.Decimal) error
}
