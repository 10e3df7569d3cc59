package profiles

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// Reputation is the buyer-trust ledger kept on a profile.
type Reputation struct {
	UserID                uuid.UUID
	LegitRate             int
	TotalTransactions     int
	CompletedTransactions int
	CancelledTransactions int
	DailyCancellations    int
	// LastCancellationDate is a calendar date at UTC midnight, nil if the user never cancelled.
	LastCancellationDate *time.Time
}

type Profiles interface {
	Exists(ctx context.Context, userID uuid.UUID) error
	GetReputation(ctx context.Context, userID uuid.UUID) (Reputation, error)
	LockAndGetReputation(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (Reputation, error)
	SaveReputation(ctx context.Context, tx *sql.Tx, rep Reputation) error
}
