package escrow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/infra/pgutils"
	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Service) CreateListing(ctx context.Context, sellerID uuid.UUID, in NewListing) (Listing, error) {
	err := validateListing(in)
	if err != nil {
		return Listing{}, err
	}

	err = s.profiles.Exists(ctx, sellerID)
	if err != nil {
		return Listing{}, fmt.Errorf("check seller: %w", err)
	}

	now := s.now()
	l := Listing{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Price:       in.Price,
		CurrentBid:  in.CurrentBid,
		TicketPrice: in.TicketPrice,
		Status:      listings.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.listings.Create(ctx, tx, l)
	})
	if err != nil {
		return Listing{}, fmt.Errorf("create listing: %w", err)
	}

	slog.InfoContext(ctx, "listing created", "listing_id", l.ID, "actor", sellerID, "type", l.Type)

	s.publish(ctx, feed.Event{Table: feed.TableCards, RecordID: l.ID, Type: feed.EventInsert, Status: string(l.Status), At: now})

	return l, nil
}

func validateListing(in NewListing) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListing)
	}

	positive := func(d decimal.NullDecimal) bool { return d.Valid && d.Decimal.IsPositive() }

	switch in.Type {
	case listings.TypeSale:
		if !positive(in.Price) {
			return fmt.Errorf("%w: sale needs a positive price", ErrInvalidListing)
		}
	case listings.TypeAuction:
		if !in.CurrentBid.Valid || in.CurrentBid.Decimal.IsNegative() {
			return fmt.Errorf("%w: auction needs a starting bid", ErrInvalidListing)
		}
	case listings.TypeRazz:
		if !positive(in.TicketPrice) {
			return fmt.Errorf("%w: razz needs a positive ticket price", ErrInvalidListing)
		}
	default:
		return fmt.Errorf("%w: unknown listing type %q", ErrInvalidListing, in.Type)
	}

	return nil
}

// PlaceOffer records the buyer's current offer on a sale listing. A second
// offer from the same buyer replaces the price of the first.
func (s *Service) PlaceOffer(ctx context.Context, buyerID, listingID uuid.UUID, price decimal.Decimal) (Offer, error) {
	price = price.Round(2)
	if !price.IsPositive() {
		return Offer{}, ErrInvalidPrice
	}

	err := s.profiles.Exists(ctx, buyerID)
	if err != nil {
		return Offer{}, fmt.Errorf("check buyer: %w", err)
	}

	now := s.now()

	var offer Offer

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		listing, err := s.listings.LockAndGet(ctx, tx, listingID)
		if err != nil {
			return fmt.Errorf("lock listing: %w", err)
		}

		if listing.SellerID == buyerID {
			return ErrForbidden
		}

		if listing.Type != listings.TypeSale {
			return ErrNotForSale
		}

		if listing.Status != listings.StatusActive {
			return ErrListingUnavailable
		}

		offer, err = s.offers.Upsert(ctx, tx, offers.Offer{
			ID:        uuid.New(),
			ListingID: listingID,
			BuyerID:   buyerID,
			Price:     price,
			CreatedAt: now,
		})
		if errors.Is(err, offers.ErrBuyerNotFound) {
			return ErrProfileNotFound
		}

		return err
	})
	if err != nil {
		return Offer{}, fmt.Errorf("place offer: %w", err)
	}

	slog.InfoContext(ctx, "offer placed", "offer_id", offer.ID, "listing_id", listingID, "actor", buyerID)

	s.publish(ctx, feed.Event{
		Table: feed.TableOffers, RecordID: offer.ID, ListingID: listingID,
		Type: feed.EventInsert, Status: string(offer.Status), At: now,
	})

	return offer, nil
}

// RejectOffer declines a pending offer on the seller's listing.
func (s *Service) RejectOffer(ctx context.Context, sellerID, listingID, offerID uuid.UUID) (Offer, error) {
	now := s.now()

	var (
		offer   Offer
		listing Listing
	)

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error

		listing, err = s.listings.LockAndGet(ctx, tx, listingID)
		if err != nil {
			return fmt.Errorf("lock listing: %w", err)
		}

		if listing.SellerID != sellerID {
			return ErrForbidden
		}

		offer, err = s.offers.LockAndGet(ctx, tx, offerID)
		if err != nil {
			return fmt.Errorf("lock offer: %w", err)
		}

		if offer.ListingID != listingID {
			return ErrInvalidOffer
		}

		err = checkTransition(offerTransitions, offer.Status, offers.StatusRejected)
		if err != nil {
			return errors.Join(ErrInvalidOffer, err)
		}

		err = s.offers.Reject(ctx, tx, offerID)
		if err != nil {
			if errors.Is(err, offers.ErrOfferNotPending) {
				return ErrInvalidOffer
			}

			return fmt.Errorf("reject offer: %w", err)
		}

		offer.Status = offers.StatusRejected

		return nil
	})
	if err != nil {
		return Offer{}, fmt.Errorf("reject offer: %w", err)
	}

	slog.InfoContext(ctx, "offer rejected", "offer_id", offerID, "listing_id", listingID, "actor", sellerID)

	s.notify(ctx, notifications.Notification{
		UserID:    offer.BuyerID,
		Type:      notifications.TypeOfferRejected,
		Title:     "Offer declined",
		Message:   fmt.Sprintf("The seller declined your offer of %s for %s.", offer.Price.StringFixed(2), listing.Name),
		ListingID: uuid.NullUUID{UUID: listingID, Valid: true},
		OfferID:   uuid.NullUUID{UUID: offerID, Valid: true},
	})

	s.publish(ctx, feed.Event{
		Table: feed.TableOffers, RecordID: offerID, ListingID: listingID,
		Type: feed.EventUpdate, Status: string(offer.Status), At: now,
	})

	return offer, nil
}
