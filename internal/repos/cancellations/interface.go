package cancellations

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Cancellation is an append-only audit record of a closed-without-sale transaction.
type Cancellation struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	ListingID     uuid.UUID
	CancelledBy   string
	Reason        *string
	CreatedAt     time.Time
}

type Cancellations interface {
	Insert(ctx context.Context, tx *sql.Tx, c Cancellation) error
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]Cancellation, error)
}
