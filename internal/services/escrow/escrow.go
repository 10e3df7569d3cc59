// Package escrow runs the marketplace sale workflow: a seller accepts an
// offer, which opens a time-boxed transaction that ends completed, cancelled
// by a party, or auto-cancelled once its deadline passes. Every transition is
// a single database commit; notifications and feed events follow the commit.
package escrow

import (
	"database/sql"
	"time"

	pgcancellations "github.com/fastprodman/cardescrow/internal/repos/cancellations/postgres"
	pglistings "github.com/fastprodman/cardescrow/internal/repos/listings/postgres"
	pgnotifications "github.com/fastprodman/cardescrow/internal/repos/notifications/postgres"
	pgoffers "github.com/fastprodman/cardescrow/internal/repos/offers/postgres"
	pgprofiles "github.com/fastprodman/cardescrow/internal/repos/profiles/postgres"
	pgtransactions "github.com/fastprodman/cardescrow/internal/repos/transactions/postgres"

	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/repos/cancellations"
	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/fastprodman/cardescrow/internal/repos/profiles"
	"github.com/fastprodman/cardescrow/internal/repos/transactions"
	"github.com/fastprodman/cardescrow/internal/services/reputation"
)

// DefaultTTL is how long a buyer and seller have to finish a transaction.
const DefaultTTL = 2 * time.Hour

type Service struct {
	db            *sql.DB
	listings      listings.Listings
	offers        offers.Offers
	transactions  transactions.Transactions
	profiles      profiles.Profiles
	cancellations cancellations.Cancellations
	notifications notifications.Notifications

	publisher  feed.Publisher
	reputation *reputation.Reader
	clock      func() time.Time
	ttl        time.Duration
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.clock = now }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

func WithPublisher(p feed.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithReputationCache serves GetReputation from r and keeps it coherent with
// committed outcomes.
func WithReputationCache(r *reputation.Reader) Option {
	return func(s *Service) { s.reputation = r }
}

func New(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:            db,
		listings:      pglistings.New(db),
		offers:        pgoffers.New(db),
		transactions:  pgtransactions.New(db),
		profiles:      pgprofiles.New(db),
		cancellations: pgcancellations.New(db),
		notifications: pgnotifications.New(db),
		publisher:     feed.Nop{},
		clock:         time.Now,
		ttl:           DefaultTTL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// now is truncated to what Postgres timestamptz stores.
func (s *Service) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}
