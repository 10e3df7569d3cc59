package profiles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/profiles"
)

func (r *profilesRepo) SaveReputation(ctx context.Context, tx *sql.Tx, rep profiles.Reputation) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE profiles
		SET legit_rate = $2,
		    total_transactions = $3,
		    completed_transactions = $4,
		    cancelled_transactions = $5,
		    daily_cancellations = $6,
		    last_cancellation_date = $7
		WHERE id = $1
	`, rep.UserID, rep.LegitRate, rep.TotalTransactions, rep.CompletedTransactions,
		rep.CancelledTransactions, rep.DailyCancellations, rep.LastCancellationDate)
	if err != nil {
		return fmt.Errorf("save reputation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return profiles.ErrProfileNotFound
	}

	return nil
}
