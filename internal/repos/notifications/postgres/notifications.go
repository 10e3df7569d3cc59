package notifications

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/google/uuid"
)

var _ notifications.Notifications = (*notificationsRepo)(nil)

type notificationsRepo struct{ db *sql.DB }

func New(db *sql.DB) *notificationsRepo {
	return &notificationsRepo{db: db}
}

func (r *notificationsRepo) Insert(ctx context.Context, n notifications.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, type, title, message, card_id, offer_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)
	`, n.ID, n.UserID, n.Type, n.Title, n.Message, n.ListingID, n.OfferID, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

// ListByUser returns the newest notifications first.
func (r *notificationsRepo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]notifications.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, type, title, message, card_id, offer_id, read, created_at
		FROM notifications
		WHERE user_id = $1
		  AND (NOT $2 OR read = false)
		ORDER BY created_at DESC
	`, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []notifications.Notification

	for rows.Next() {
		var n notifications.Notification

		err = rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.ListingID, &n.OfferID, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		out = append(out, n)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return out, nil
}

func (r *notificationsRepo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET read = true
		WHERE id = $1
		  AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return notifications.ErrNotificationNotFound
	}

	return nil
}
