package listings

import (
	"database/sql"

	"github.com/fastprodman/cardescrow/internal/repos/listings"
)

var _ listings.Listings = (*listingsRepo)(nil)

type listingsRepo struct{ db *sql.DB }

func New(db *sql.DB) *listingsRepo {
	return &listingsRepo{db: db}
}

const listingColumns = `
	id, seller_id, name, listing_type, price, current_bid, ticket_price,
	status, last_sold_price, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (listings.Listing, error) {
	var l listings.Listing

	err := row.Scan(
		&l.ID, &l.SellerID, &l.Name, &l.Type, &l.Price, &l.CurrentBid, &l.TicketPrice,
		&l.Status, &l.LastSoldPrice, &l.CreatedAt, &l.UpdatedAt,
	)

	return l, err
}
