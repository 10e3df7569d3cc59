package cancellations

import (
	"testing"
	"time"

	"github.com/fastprodman/cardescrow/internal/infra/pgtestutil"
	"github.com/fastprodman/cardescrow/internal/repos/cancellations"
	"github.com/google/uuid"
)

func TestCancellations_InsertAndList(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	sellerID, buyerID, listingID, offerID, txnID := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	stmts := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO profiles (id, username) VALUES ($1, 'seller'), ($2, 'buyer')`, []any{sellerID, buyerID}},
		{`INSERT INTO cards (id, seller_id, name, listing_type, price) VALUES ($1, $2, 'Umbreon VMAX', 'sale', 500)`, []any{listingID, sellerID}},
		{`INSERT INTO offers (id, card_id, buyer_id, price, status) VALUES ($1, $2, $3, 450, 'rejected')`, []any{offerID, listingID, buyerID}},
		{`
			INSERT INTO transactions (id, card_id, seller_id, buyer_id, offer_id, price, status, expires_at,
				cancelled_by, created_at, cancelled_at)
			VALUES ($1, $2, $3, $4, $5, 450, 'auto_cancelled', $6, 'system', $7, $6)
		`, []any{txnID, listingID, sellerID, buyerID, offerID, now.Add(2 * time.Hour), now}},
	}

	for _, s := range stmts {
		_, err := db.Exec(s.query, s.args...)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	repo := New(db)

	tx, err := db.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = repo.Insert(t.Context(), tx, cancellations.Cancellation{
		ID:            uuid.New(),
		TransactionID: txnID,
		ListingID:     listingID,
		CancelledBy:   "system",
		CreatedAt:     now,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	err = tx.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	got, err := repo.ListByTransaction(t.Context(), txnID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].CancelledBy != "system" || got[0].Reason != nil {
		t.Fatalf("unexpected audit rows: %+v", got)
	}
}
