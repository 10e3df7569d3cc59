package cancellations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/cancellations"
	"github.com/google/uuid"
)

var _ cancellations.Cancellations = (*cancellationsRepo)(nil)

type cancellationsRepo struct{ db *sql.DB }

func New(db *sql.DB) *cancellationsRepo {
	return &cancellationsRepo{db: db}
}

func (r *cancellationsRepo) Insert(ctx context.Context, tx *sql.Tx, c cancellations.Cancellation) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO cancellations (id, transaction_id, card_id, cancelled_by, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.TransactionID, c.ListingID, c.CancelledBy, c.Reason, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert cancellation: %w", err)
	}

	return nil
}

func (r *cancellationsRepo) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]cancellations.Cancellation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, transaction_id, card_id, cancelled_by, reason, created_at
		FROM cancellations
		WHERE transaction_id = $1
		ORDER BY created_at ASC
	`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list cancellations: %w", err)
	}
	defer rows.Close()

	var out []cancellations.Cancellation

	for rows.Next() {
		var (
			c      cancellations.Cancellation
			reason sql.NullString
		)

		err = rows.Scan(&c.ID, &c.TransactionID, &c.ListingID, &c.CancelledBy, &reason, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan cancellation: %w", err)
		}

		if reason.Valid {
			c.Reason = &reason.String
		}

		out = append(out, c)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate cancellations: %w", err)
	}

	return out, nil
}
