package transactions

import (
	"database/sql"
	"time"

	"github.com/fastprodman/cardescrow/internal/repos/transactions"
)

var _ transactions.Transactions = (*transactionsRepo)(nil)

const (
	activePerCardIndex = "transactions_one_active_per_card_idx"
	offerUniqueKey     = "transactions_offer_id_key"
)

type transactionsRepo struct{ db *sql.DB }

func New(db *sql.DB) *transactionsRepo {
	return &transactionsRepo{db: db}
}

const transactionColumns = `
	id, card_id, seller_id, buyer_id, offer_id, price, status, expires_at,
	cancelled_by, cancellation_reason, created_at, completed_at, cancelled_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (transactions.Transaction, error) {
	var (
		t           transactions.Transaction
		cancelledBy sql.NullString
		reason      sql.NullString
		completedAt sql.NullTime
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&t.ID, &t.ListingID, &t.SellerID, &t.BuyerID, &t.OfferID, &t.Price, &t.Status, &t.ExpiresAt,
		&cancelledBy, &reason, &t.CreatedAt, &completedAt, &cancelledAt,
	)
	if err != nil {
		return transactions.Transaction{}, err
	}

	if cancelledBy.Valid {
		p := transactions.Party(cancelledBy.String)
		t.CancelledBy = &p
	}
	if reason.Valid {
		t.CancellationReason = &reason.String
	}
	t.CompletedAt = timePtr(completedAt)
	t.CancelledAt = timePtr(cancelledAt)

	return t, nil
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}

	return &nt.Time
}
