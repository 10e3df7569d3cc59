package transactions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrDuplicateTransaction    = errors.New("duplicate transaction")
	ErrActiveTransactionExists = errors.New("listing already has an active transaction")
	ErrTransactionNotActive    = errors.New("transaction is not active")
)

type Status string

const (
	StatusActive        Status = "active"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
	StatusAutoCancelled Status = "auto_cancelled"
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s != StatusActive
}

type Party string

const (
	PartySeller Party = "seller"
	PartyBuyer  Party = "buyer"
	PartySystem Party = "system"
)

// Transaction is the time-boxed escrow record created when an offer is accepted.
type Transaction struct {
	ID                 uuid.UUID
	ListingID          uuid.UUID
	SellerID           uuid.UUID
	BuyerID            uuid.UUID
	OfferID            uuid.UUID
	Price              decimal.Decimal
	Status             Status
	ExpiresAt          time.Time
	CancelledBy        *Party
	CancellationReason *string
	CreatedAt          time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
}

// Expired reports whether the deadline has passed at now.
func (t Transaction) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Closure describes a terminal cancellation write.
type Closure struct {
	Status Status
	By     Party
	Reason *string
	At     time.Time
}

type Transactions interface {
	Insert(ctx context.Context, tx *sql.Tx, t Transaction) error
	Get(ctx context.Context, id uuid.UUID) (Transaction, error)
	LockAndGet(ctx context.Context, tx *sql.Tx, id uuid.UUID) (Transaction, error)
	Complete(ctx context.Context, tx *sql.Tx, id uuid.UUID, at time.Time) error
	Cancel(ctx context.Context, tx *sql.Tx, id uuid.UUID, c Closure) error
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}
