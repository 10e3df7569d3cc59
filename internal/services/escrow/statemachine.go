package escrow

import (
	"fmt"
	"slices"

	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/fastprodman/cardescrow/internal/repos/transactions"
)

var transactionTransitions = map[transactions.Status][]transactions.Status{
	transactions.StatusActive: {
		transactions.StatusCompleted,
		transactions.StatusCancelled,
		transactions.StatusAutoCancelled,
	},
}

var listingTransitions = map[listings.Status][]listings.Status{
	listings.StatusActive:        {listings.StatusInTransaction},
	listings.StatusInTransaction: {listings.StatusSold, listings.StatusActive},
}

// Rejected offers go back to pending when the buyer offers again.
var offerTransitions = map[offers.Status][]offers.Status{
	offers.StatusPending:  {offers.StatusChosen, offers.StatusRejected},
	offers.StatusRejected: {offers.StatusPending},
}

func checkTransition[S ~string](table map[S][]S, from, to S) error {
	if slices.Contains(table[from], to) {
		return nil
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
