package listings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/listings"
)

func (r *listingsRepo) Create(ctx context.Context, tx *sql.Tx, l listings.Listing) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO cards (
			id, seller_id, name, listing_type, price, current_bid, ticket_price,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`, l.ID, l.SellerID, l.Name, l.Type, l.Price, l.CurrentBid, l.TicketPrice, l.Status, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}
