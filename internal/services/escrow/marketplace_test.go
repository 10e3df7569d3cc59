package escrow

import (
	"testing"

	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidateListing(t *testing.T) {
	t.Parallel()

	price := decimal.NewNullDecimal(decimal.NewFromInt(10))
	zero := decimal.NewNullDecimal(decimal.Zero)

	tests := []struct {
		name string
		in   NewListing
		ok   bool
	}{
		{name: "sale", in: NewListing{Name: "Mew", Type: listings.TypeSale, Price: price}, ok: true},
		{name: "sale_without_price", in: NewListing{Name: "Mew", Type: listings.TypeSale}},
		{name: "sale_zero_price", in: NewListing{Name: "Mew", Type: listings.TypeSale, Price: zero}},
		{name: "auction_zero_bid", in: NewListing{Name: "Mew", Type: listings.TypeAuction, CurrentBid: zero}, ok: true},
		{name: "razz", in: NewListing{Name: "Mew", Type: listings.TypeRazz, TicketPrice: price}, ok: true},
		{name: "razz_without_ticket", in: NewListing{Name: "Mew", Type: listings.TypeRazz, Price: price}},
		{name: "blank_name", in: NewListing{Name: "  ", Type: listings.TypeSale, Price: price}},
		{name: "unknown_type", in: NewListing{Name: "Mew", Type: "lottery", Price: price}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateListing(tt.in)
			if tt.ok {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidListing)
		})
	}
}

func TestCreateListing_UnknownSeller(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)

	_, err := e.svc.CreateListing(t.Context(), uuid.New(), NewListing{
		Name: "Gengar", Type: listings.TypeSale, Price: decimal.NewNullDecimal(decimal.NewFromInt(5)),
	})
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestPlaceOffer(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)

	_, err := e.svc.PlaceOffer(t.Context(), e.buyer, e.listing.ID, decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = e.svc.PlaceOffer(t.Context(), e.buyer, e.listing.ID, decimal.RequireFromString("0.001"))
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = e.svc.PlaceOffer(t.Context(), e.seller, e.listing.ID, decimal.NewFromInt(10))
	require.ErrorIs(t, err, ErrForbidden)

	_, err = e.svc.PlaceOffer(t.Context(), uuid.New(), e.listing.ID, decimal.NewFromInt(10))
	require.ErrorIs(t, err, ErrProfileNotFound)

	first := e.offer(e.buyer, 90)
	second, err := e.svc.PlaceOffer(t.Context(), e.buyer, e.listing.ID, decimal.RequireFromString("95.50"))
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "95.50", second.Price.StringFixed(2))

	list, err := e.svc.ListOffers(t.Context(), e.listing.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_ = e.accepted(e.other, 100)

	_, err = e.svc.PlaceOffer(t.Context(), e.buyer, e.listing.ID, decimal.NewFromInt(130))
	require.ErrorIs(t, err, ErrListingUnavailable)
}

func TestRejectOffer(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	o := e.offer(e.buyer, 90)

	_, err := e.svc.RejectOffer(t.Context(), e.other, e.listing.ID, o.ID)
	require.ErrorIs(t, err, ErrForbidden)

	rejected, err := e.svc.RejectOffer(t.Context(), e.seller, e.listing.ID, o.ID)
	require.NoError(t, err)
	require.Equal(t, offers.StatusRejected, rejected.Status)

	_, err = e.svc.RejectOffer(t.Context(), e.seller, e.listing.ID, o.ID)
	require.ErrorIs(t, err, ErrInvalidOffer)

	require.Equal(t, []notifications.Type{notifications.TypeOfferRejected}, e.notificationTypes(e.buyer))

	// Offering again revives the same row.
	again := e.offer(e.buyer, 95)
	require.Equal(t, o.ID, again.ID)
	require.Equal(t, offers.StatusPending, again.Status)
}

func TestNotifications_MarkRead(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	_ = e.accepted(e.buyer, 100)

	list, err := e.svc.ListNotifications(t.Context(), e.buyer, true)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = e.svc.MarkNotificationRead(t.Context(), e.seller, list[0].ID)
	require.ErrorIs(t, err, ErrNotificationNotFound)

	err = e.svc.MarkNotificationRead(t.Context(), e.buyer, list[0].ID)
	require.NoError(t, err)

	list, err = e.svc.ListNotifications(t.Context(), e.buyer, true)
	require.NoError(t, err)
	require.Empty(t, list)
}
