package escrow

import (
	"errors"

	"github.com/fastprodman/cardescrow/internal/repos/cancellations"
	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/fastprodman/cardescrow/internal/repos/profiles"
	"github.com/fastprodman/cardescrow/internal/repos/transactions"
	"github.com/shopspring/decimal"
)

type (
	Listing      = listings.Listing
	Offer        = offers.Offer
	Transaction  = transactions.Transaction
	Reputation   = profiles.Reputation
	Notification = notifications.Notification
	Cancellation = cancellations.Cancellation
)

// NewListing is the seller's input for CreateListing. Which price is required
// depends on Type: Price for sale, CurrentBid for auction, TicketPrice for razz.
type NewListing struct {
	Name        string
	Type        listings.Type
	Price       decimal.NullDecimal
	CurrentBid  decimal.NullDecimal
	TicketPrice decimal.NullDecimal
}

// MinReasonLength is the minimum number of characters in a manual cancellation reason.
const MinReasonLength = 10

var (
	ErrForbidden          = errors.New("actor is not allowed to perform this action")
	ErrReasonTooShort     = errors.New("cancellation reason must be at least 10 characters")
	ErrTransactionClosed  = errors.New("transaction already closed")
	ErrTransactionExpired = errors.New("transaction expired")
	ErrNotExpired         = errors.New("transaction has not expired yet")
	ErrInvalidOffer       = errors.New("offer is not a pending offer on this listing")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidListing     = errors.New("invalid listing")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrNotForSale         = errors.New("listing does not take direct offers")
	ErrInvalidSweep       = errors.New("sweep interval and batch must be positive")

	ErrListingNotFound      = listings.ErrListingNotFound
	ErrListingUnavailable   = listings.ErrListingUnavailable
	ErrOfferNotFound        = offers.ErrOfferNotFound
	ErrTransactionNotFound  = transactions.ErrTransactionNotFound
	ErrProfileNotFound      = profiles.ErrProfileNotFound
	ErrNotificationNotFound = notifications.ErrNotificationNotFound
)
