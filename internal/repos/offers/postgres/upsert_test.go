package offers

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/cardescrow/internal/infra/pgtestutil"
	"github.com/fastprodman/cardescrow/internal/repos/offers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fixture struct {
	listingID uuid.UUID
	buyerID   uuid.UUID
}

func seed(t *testing.T, db *sql.DB) fixture {
	t.Helper()

	sellerID, buyerID, listingID := uuid.New(), uuid.New(), uuid.New()

	_, err := db.Exec(`INSERT INTO profiles (id, username) VALUES ($1, 'seller'), ($2, 'buyer')`, sellerID, buyerID)
	if err != nil {
		t.Fatalf("seed profiles: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO cards (id, seller_id, name, listing_type, price)
		VALUES ($1, $2, 'Mewtwo GX', 'sale', 80.00)
	`, listingID, sellerID)
	if err != nil {
		t.Fatalf("seed listing: %v", err)
	}

	return fixture{listingID: listingID, buyerID: buyerID}
}

func upsert(t *testing.T, db *sql.DB, repo *offersRepo, o offers.Offer) offers.Offer {
	t.Helper()

	tx, err := db.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	stored, err := repo.Upsert(t.Context(), tx, o)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	err = tx.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	return stored
}

func TestOffers_Upsert_UpdatesInPlace(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	f := seed(t, db)
	repo := New(db)

	first := upsert(t, db, repo, offers.Offer{
		ID: uuid.New(), ListingID: f.listingID, BuyerID: f.buyerID,
		Price: decimal.NewFromInt(50), CreatedAt: time.Now(),
	})

	second := upsert(t, db, repo, offers.Offer{
		ID: uuid.New(), ListingID: f.listingID, BuyerID: f.buyerID,
		Price: decimal.NewFromInt(65), CreatedAt: time.Now(),
	})

	if second.ID != first.ID {
		t.Fatalf("expected in-place update of %s, got new offer %s", first.ID, second.ID)
	}
	if !second.Price.Equal(decimal.NewFromInt(65)) {
		t.Fatalf("price: want 65, got %s", second.Price)
	}

	all, err := repo.ListByListing(t.Context(), f.listingID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("want 1 offer, got %d", len(all))
	}
}

func TestOffers_Upsert_ResetsRejectedToPending(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	f := seed(t, db)
	repo := New(db)

	o := upsert(t, db, repo, offers.Offer{
		ID: uuid.New(), ListingID: f.listingID, BuyerID: f.buyerID,
		Price: decimal.NewFromInt(50), CreatedAt: time.Now(),
	})

	tx, err := db.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	err = repo.Reject(t.Context(), tx, o.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	err = repo.Reject(t.Context(), tx, o.ID)
	if !errors.Is(err, offers.ErrOfferNotPending) {
		t.Fatalf("second reject: want ErrOfferNotPending, got %v", err)
	}
	if err = tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	again := upsert(t, db, repo, offers.Offer{
		ID: uuid.New(), ListingID: f.listingID, BuyerID: f.buyerID,
		Price: decimal.NewFromInt(55), CreatedAt: time.Now(),
	})
	if again.ID != o.ID || again.Status != offers.StatusPending {
		t.Fatalf("want offer %s back to pending, got %s/%s", o.ID, again.ID, again.Status)
	}
}

func TestOffers_Choose_RequiresPending(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	f := seed(t, db)
	repo := New(db)

	o := upsert(t, db, repo, offers.Offer{
		ID: uuid.New(), ListingID: f.listingID, BuyerID: f.buyerID,
		Price: decimal.NewFromInt(50), CreatedAt: time.Now(),
	})

	tx, err := db.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = repo.Reject(t.Context(), tx, o.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}

	// transaction_id FK is deferred; the guard fails before it would matter.
	err = repo.Choose(t.Context(), tx, o.ID, uuid.New())
	if !errors.Is(err, offers.ErrOfferNotPending) {
		t.Fatalf("want ErrOfferNotPending, got %v", err)
	}
}

func TestOffers_Get_NotFound(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	_, err := New(db).Get(t.Context(), uuid.New())
	if !errors.Is(err, offers.ErrOfferNotFound) {
		t.Fatalf("want ErrOfferNotFound, got %v", err)
	}
}

func TestOffers_Upsert_UnknownBuyer(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	f := seed(t, db)
	repo := New(db)

	tx, err := db.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = repo.Upsert(t.Context(), tx, offers.Offer{
		ID: uuid.New(), ListingID: f.listingID, BuyerID: uuid.New(),
		Price: decimal.NewFromInt(50), CreatedAt: time.Now(),
	})
	if !errors.Is(err, offers.ErrBuyerNotFound) {
		t.Fatalf("want ErrBuyerNotFound, got %v", err)
	}
}
