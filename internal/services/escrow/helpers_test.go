package escrow

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/infra/pgtestutil"
	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type recordingFeed struct {
	mu     sync.Mutex
	events []feed.Event
}

func (r *recordingFeed) Publish(_ context.Context, events ...feed.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, events...)

	return nil
}

func (r *recordingFeed) statuses(table feed.Table, id uuid.UUID) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string

	for _, e := range r.events {
		if e.Table == table && e.RecordID == id {
			out = append(out, e.Status)
		}
	}

	return out
}

type testEnv struct {
	t       *testing.T
	db      *sql.DB
	svc     *Service
	clock   *fakeClock
	feed    *recordingFeed
	seller  uuid.UUID
	buyer   uuid.UUID
	other   uuid.UUID
	listing Listing
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, cleanup := pgtestutil.NewTestDB(t)
	t.Cleanup(cleanup)

	e := &testEnv{
		t:      t,
		db:     db,
		clock:  &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		feed:   &recordingFeed{},
		seller: uuid.New(),
		buyer:  uuid.New(),
		other:  uuid.New(),
	}

	_, err := db.Exec(`
		INSERT INTO profiles (id, username) VALUES ($1, 'ash'), ($2, 'misty'), ($3, 'brock')
	`, e.seller, e.buyer, e.other)
	require.NoError(t, err)

	e.svc = New(db, WithClock(e.clock.Now), WithPublisher(e.feed))
	e.listing = e.newListing(listings.TypeSale)

	return e
}

func (e *testEnv) newListing(typ listings.Type) Listing {
	e.t.Helper()

	in := NewListing{Name: "Charizard Base Set 4/102", Type: typ}

	switch typ {
	case listings.TypeSale:
		in.Price = decimal.NewNullDecimal(decimal.NewFromInt(120))
	case listings.TypeAuction:
		in.CurrentBid = decimal.NewNullDecimal(decimal.NewFromInt(10))
	case listings.TypeRazz:
		in.TicketPrice = decimal.NewNullDecimal(decimal.NewFromInt(2))
	}

	l, err := e.svc.CreateListing(e.t.Context(), e.seller, in)
	require.NoError(e.t, err)

	return l
}

func (e *testEnv) offer(buyer uuid.UUID, price int64) Offer {
	e.t.Helper()

	o, err := e.svc.PlaceOffer(e.t.Context(), buyer, e.listing.ID, decimal.NewFromInt(price))
	require.NoError(e.t, err)

	return o
}

func (e *testEnv) accepted(buyer uuid.UUID, price int64) Transaction {
	e.t.Helper()

	o := e.offer(buyer, price)

	txn, err := e.svc.AcceptOffer(e.t.Context(), e.seller, e.listing.ID, o.ID)
	require.NoError(e.t, err)

	return txn
}

func (e *testEnv) setRate(user uuid.UUID, rate int) {
	e.t.Helper()

	_, err := e.db.Exec(`UPDATE profiles SET legit_rate = $2 WHERE id = $1`, user, rate)
	require.NoError(e.t, err)
}

func (e *testEnv) reputation(user uuid.UUID) Reputation {
	e.t.Helper()

	rep, err := e.svc.profiles.GetReputation(e.t.Context(), user)
	require.NoError(e.t, err)

	return rep
}

func (e *testEnv) listingNow() Listing {
	e.t.Helper()

	l, err := e.svc.GetListing(e.t.Context(), e.listing.ID)
	require.NoError(e.t, err)

	return l
}

func (e *testEnv) stored(id uuid.UUID) Transaction {
	e.t.Helper()

	txn, err := e.svc.transactions.Get(e.t.Context(), id)
	require.NoError(e.t, err)

	return txn
}

func (e *testEnv) notificationTypes(user uuid.UUID) []notifications.Type {
	e.t.Helper()

	list, err := e.svc.ListNotifications(e.t.Context(), user, false)
	require.NoError(e.t, err)

	out := make([]notifications.Type, 0, len(list))
	for _, n := range list {
		out = append(out, n.Type)
	}

	return out
}
