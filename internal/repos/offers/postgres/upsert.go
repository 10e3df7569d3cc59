package offers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/infra/pgutils"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
)

const buyerForeignKey = "offers_buyer_id_fkey"

// Upsert creates the buyer's current offer on the listing or, if one exists and
// is not yet bound to a transaction, updates its price in place and resets it
// to pending. Offers already chosen for a transaction are left untouched and a
// new row is created. The returned offer carries the stored id and timestamps.
func (r *offersRepo) Upsert(ctx context.Context, tx *sql.Tx, o offers.Offer) (offers.Offer, error) {
	stored, err := scanOffer(tx.QueryRowContext(ctx, `
		INSERT INTO offers (id, card_id, buyer_id, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (card_id, buyer_id) WHERE transaction_id IS NULL
		DO UPDATE SET
			price      = EXCLUDED.price,
			status     = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
		RETURNING `+offerColumns+`
	`, o.ID, o.ListingID, o.BuyerID, o.Price, offers.StatusPending, o.CreatedAt))
	if err != nil {
		if pgutils.IsForeignKeyViolation(err, buyerForeignKey) {
			return offers.Offer{}, offers.ErrBuyerNotFound
		}

		return offers.Offer{}, fmt.Errorf("upsert offer: %w", err)
	}

	return stored, nil
}
