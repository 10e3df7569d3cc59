package offers

import (
	"database/sql"

	"github.com/fastprodman/cardescrow/internal/repos/offers"
)

var _ offers.Offers = (*offersRepo)(nil)

type offersRepo struct{ db *sql.DB }

func New(db *sql.DB) *offersRepo {
	return &offersRepo{db: db}
}

const offerColumns = `id, card_id, buyer_id, price, status, transaction_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner) (offers.Offer, error) {
	var o offers.Offer

	err := row.Scan(
		&o.ID, &o.ListingID, &o.BuyerID, &o.Price, &o.Status, &o.TransactionID, &o.CreatedAt, &o.UpdatedAt,
	)

	return o, err
}
