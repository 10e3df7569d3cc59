package offers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/google/uuid"
)

func (r *offersRepo) Get(ctx context.Context, id uuid.UUID) (offers.Offer, error) {
	o, err := scanOffer(r.db.QueryRowContext(ctx, `
		SELECT `+offerColumns+`
		FROM offers
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return offers.Offer{}, offers.ErrOfferNotFound
		}

		return offers.Offer{}, fmt.Errorf("get offer: %w", err)
	}

	return o, nil
}

func (r *offersRepo) LockAndGet(ctx context.Context, tx *sql.Tx, id uuid.UUID) (offers.Offer, error) {
	o, err := scanOffer(tx.QueryRowContext(ctx, `
		SELECT `+offerColumns+`
		FROM offers
		WHERE id = $1
		FOR UPDATE
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return offers.Offer{}, offers.ErrOfferNotFound
		}

		return offers.Offer{}, fmt.Errorf("lock/get offer: %w", err)
	}

	return o, nil
}

// ListByListing returns the listing's offers, highest price first.
func (r *offersRepo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]offers.Offer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+offerColumns+`
		FROM offers
		WHERE card_id = $1
		ORDER BY price DESC, created_at ASC
	`, listingID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var out []offers.Offer

	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}

		out = append(out, o)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}

	return out, nil
}
