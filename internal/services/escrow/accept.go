package escrow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/infra/pgutils"
	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/fastprodman/cardescrow/internal/repos/transactions"
	"github.com/google/uuid"
)

// AcceptOffer runs in a single DB transaction:
//
// 1) Lock the listing; the actor must be its seller and it must be a sale.
// 2) Lock the offer; it must be pending on this listing.
// 3) Flip the listing active -> in_transaction (zero rows -> ErrListingUnavailable).
// 4) Insert the transaction (one-active-per-listing index -> ErrListingUnavailable).
// 5) Mark the offer chosen and bind it to the transaction.
func (s *Service) AcceptOffer(ctx context.Context, actorID, listingID, offerID uuid.UUID) (Transaction, error) {
	now := s.now()

	var (
		txn     Transaction
		listing Listing
	)

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error

		listing, err = s.listings.LockAndGet(ctx, tx, listingID)
		if err != nil {
			return fmt.Errorf("lock listing: %w", err)
		}

		if listing.SellerID != actorID {
			return ErrForbidden
		}

		if listing.Type != listings.TypeSale {
			return ErrNotForSale
		}

		offer, err := s.offers.LockAndGet(ctx, tx, offerID)
		if err != nil {
			return fmt.Errorf("lock offer: %w", err)
		}

		if offer.ListingID != listingID || offer.Status != offers.StatusPending {
			return ErrInvalidOffer
		}

		if listing.Status != listings.StatusActive {
			return ErrListingUnavailable
		}

		err = s.moveListing(ctx, tx, listingID, listings.StatusActive, listings.StatusInTransaction)
		if err != nil {
			return fmt.Errorf("reserve listing: %w", err)
		}

		txn = Transaction{
			ID:        uuid.New(),
			ListingID: listingID,
			SellerID:  listing.SellerID,
			BuyerID:   offer.BuyerID,
			OfferID:   offer.ID,
			Price:     offer.Price,
			Status:    transactions.StatusActive,
			ExpiresAt: now.Add(s.ttl),
			CreatedAt: now,
		}

		err = s.transactions.Insert(ctx, tx, txn)
		if err != nil {
			if errors.Is(err, transactions.ErrActiveTransactionExists) {
				return ErrListingUnavailable
			}

			return fmt.Errorf("insert transaction: %w", err)
		}

		err = checkTransition(offerTransitions, offer.Status, offers.StatusChosen)
		if err != nil {
			return err
		}

		err = s.offers.Choose(ctx, tx, offer.ID, txn.ID)
		if err != nil {
			if errors.Is(err, offers.ErrOfferNotPending) {
				return ErrInvalidOffer
			}

			return fmt.Errorf("choose offer: %w", err)
		}

		return nil
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("accept offer: %w", err)
	}

	slog.InfoContext(ctx, "offer accepted",
		"transaction_id", txn.ID, "listing_id", listingID, "offer_id", offerID, "actor", actorID)

	s.notify(ctx, notifications.Notification{
		UserID:    txn.BuyerID,
		Type:      notifications.TypeOfferAccepted,
		Title:     "Offer accepted",
		Message:   fmt.Sprintf("Your offer of %s for %s was accepted. Complete the trade before %s.", txn.Price.StringFixed(2), listing.Name, txn.ExpiresAt.Format("15:04 MST")),
		ListingID: uuid.NullUUID{UUID: listingID, Valid: true},
		OfferID:   uuid.NullUUID{UUID: offerID, Valid: true},
	})

	s.publish(ctx,
		feed.Event{Table: feed.TableTransactions, RecordID: txn.ID, Type: feed.EventInsert, Status: string(txn.Status), At: now},
		feed.Event{Table: feed.TableCards, RecordID: listingID, Type: feed.EventUpdate, Status: string(listings.StatusInTransaction), At: now},
		feed.Event{Table: feed.TableOffers, RecordID: offerID, ListingID: listingID, Type: feed.EventUpdate, Status: string(offers.StatusChosen), At: now},
	)

	return txn, nil
}
