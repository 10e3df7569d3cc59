package transactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fastprodman/cardescrow/internal/infra/pgutils"
	"github.com/fastprodman/cardescrow/internal/repos/transactions"
	"github.com/google/uuid"
)

func (r *transactionsRepo) Insert(ctx context.Context, tx *sql.Tx, t transactions.Transaction) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (
			id, card_id, seller_id, buyer_id, offer_id, price, status, expires_at, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, t.ID, t.ListingID, t.SellerID, t.BuyerID, t.OfferID, t.Price, t.Status, t.ExpiresAt, t.CreatedAt)
	if err != nil {
		switch {
		case pgutils.IsUniqueViolation(err, activePerCardIndex):
			return transactions.ErrActiveTransactionExists
		case pgutils.IsUniqueViolation(err, offerUniqueKey), pgutils.IsUniqueViolation(err, "transactions_pkey"):
			return transactions.ErrDuplicateTransaction
		}

		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

func (r *transactionsRepo) Get(ctx context.Context, id uuid.UUID) (transactions.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transactions.Transaction{}, transactions.ErrTransactionNotFound
		}

		return transactions.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}

	return t, nil
}

func (r *transactionsRepo) LockAndGet(ctx context.Context, tx *sql.Tx, id uuid.UUID) (transactions.Transaction, error) {
	t, err := scanTransaction(tx.QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1
		FOR UPDATE
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transactions.Transaction{}, transactions.ErrTransactionNotFound
		}

		return transactions.Transaction{}, fmt.Errorf("lock/get transaction: %w", err)
	}

	return t, nil
}

func (r *transactionsRepo) Complete(ctx context.Context, tx *sql.Tx, id uuid.UUID, at time.Time) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE transactions
		SET status = $2, completed_at = $3
		WHERE id = $1
		  AND status = $4
	`, id, transactions.StatusCompleted, at, transactions.StatusActive)
	if err != nil {
		return fmt.Errorf("complete transaction: %w", err)
	}

	return requireActive(res)
}

func (r *transactionsRepo) Cancel(ctx context.Context, tx *sql.Tx, id uuid.UUID, c transactions.Closure) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE transactions
		SET status = $2, cancelled_by = $3, cancellation_reason = $4, cancelled_at = $5
		WHERE id = $1
		  AND status = $6
	`, id, c.Status, c.By, c.Reason, c.At, transactions.StatusActive)
	if err != nil {
		return fmt.Errorf("cancel transaction: %w", err)
	}

	return requireActive(res)
}

// ListDue returns ids of active transactions whose deadline is at or before now,
// oldest deadline first.
func (r *transactionsRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id
		FROM transactions
		WHERE status = $1
		  AND expires_at <= $2
		ORDER BY expires_at ASC
		LIMIT $3
	`, transactions.StatusActive, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due transactions: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID

		err = rows.Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("scan due transaction: %w", err)
		}

		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate due transactions: %w", err)
	}

	return ids, nil
}

func requireActive(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return transactions.ErrTransactionNotActive
	}

	return nil
}
