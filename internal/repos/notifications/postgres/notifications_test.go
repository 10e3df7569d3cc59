package notifications

import (
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/cardescrow/internal/infra/pgtestutil"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/google/uuid"
)

func TestNotifications_ListAndMarkRead(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	userID, otherID := uuid.New(), uuid.New()
	_, err := db.Exec(`INSERT INTO profiles (id, username) VALUES ($1, 'misty'), ($2, 'brock')`, userID, otherID)
	if err != nil {
		t.Fatalf("seed profiles: %v", err)
	}

	repo := New(db)
	base := time.Now().UTC().Truncate(time.Microsecond)

	older := notifications.Notification{
		ID: uuid.New(), UserID: userID, Type: notifications.TypeOfferAccepted,
		Title: "Offer accepted", Message: "You have 2 hours", CreatedAt: base,
	}
	newer := notifications.Notification{
		ID: uuid.New(), UserID: userID, Type: notifications.TypeCardSold,
		Title: "Card sold", Message: "Enjoy", CreatedAt: base.Add(time.Minute),
	}

	for _, n := range []notifications.Notification{older, newer} {
		err = repo.Insert(t.Context(), n)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	all, err := repo.ListByUser(t.Context(), userID, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].ID != newer.ID {
		t.Fatalf("want newest first, got %+v", all)
	}

	err = repo.MarkRead(t.Context(), otherID, older.ID)
	if !errors.Is(err, notifications.ErrNotificationNotFound) {
		t.Fatalf("foreign user mark read: want ErrNotificationNotFound, got %v", err)
	}

	err = repo.MarkRead(t.Context(), userID, older.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}

	unread, err := repo.ListByUser(t.Context(), userID, true)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(unread) != 1 || unread[0].ID != newer.ID {
		t.Fatalf("want only %s unread, got %+v", newer.ID, unread)
	}
}
