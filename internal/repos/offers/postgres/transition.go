package offers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/google/uuid"
)

// Choose binds a pending offer to its transaction.
func (r *offersRepo) Choose(ctx context.Context, tx *sql.Tx, id, transactionID uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE offers
		SET status = $2, transaction_id = $3, updated_at = now()
		WHERE id = $1
		  AND status = $4
	`, id, offers.StatusChosen, transactionID, offers.StatusPending)
	if err != nil {
		return fmt.Errorf("choose offer: %w", err)
	}

	return requirePending(res)
}

func (r *offersRepo) Reject(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE offers
		SET status = $2, updated_at = now()
		WHERE id = $1
		  AND status = $3
	`, id, offers.StatusRejected, offers.StatusPending)
	if err != nil {
		return fmt.Errorf("reject offer: %w", err)
	}

	return requirePending(res)
}

func requirePending(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return offers.ErrOfferNotPending
	}

	return nil
}
