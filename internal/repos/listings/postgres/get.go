package listings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/google/uuid"
)

func (r *listingsRepo) Get(ctx context.Context, id uuid.UUID) (listings.Listing, error) {
	l, err := scanListing(r.db.QueryRowContext(ctx, `
		SELECT `+listingColumns+`
		FROM cards
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return listings.Listing{}, listings.ErrListingNotFound
		}

		return listings.Listing{}, fmt.Errorf("get listing: %w", err)
	}

	return l, nil
}

func (r *listingsRepo) LockAndGet(ctx context.Context, tx *sql.Tx, id uuid.UUID) (listings.Listing, error) {
	l, err := scanListing(tx.QueryRowContext(ctx, `
		SELECT `+listingColumns+`
		FROM cards
		WHERE id = $1
		FOR UPDATE
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return listings.Listing{}, listings.ErrListingNotFound
		}

		return listings.Listing{}, fmt.Errorf("lock/get listing: %w", err)
	}

	return l, nil
}
