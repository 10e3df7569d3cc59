package listings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SetStatus moves the listing from -> to. Zero affected rows means the listing
// was not in `from` and yields ErrListingUnavailable.
func (r *listingsRepo) SetStatus(ctx context.Context, tx *sql.Tx, id uuid.UUID, from, to listings.Status) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE cards
		SET status = $3, updated_at = now()
		WHERE id = $1
		  AND status = $2
	`, id, from, to)
	if err != nil {
		return fmt.Errorf("set listing status: %w", err)
	}

	return requireOneRow(res)
}

func (r *listingsRepo) MarkSold(ctx context.Context, tx *sql.Tx, id uuid.UUID, price decimal.Decimal) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE cards
		SET status = $2, last_sold_price = $3, updated_at = now()
		WHERE id = $1
		  AND status = $4
	`, id, listings.StatusSold, price, listings.StatusInTransaction)
	if err != nil {
		return fmt.Errorf("mark listing sold: %w", err)
	}

	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return listings.ErrListingUnavailable
	}

	return nil
}
