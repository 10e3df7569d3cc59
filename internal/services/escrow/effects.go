package escrow

import (
	"context"
	"log/slog"

	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/google/uuid"
)

// Side effects run after commit. Their failures are logged and never undo or
// fail the state change they follow.

func (s *Service) notify(ctx context.Context, n notifications.Notification) {
	n.ID = uuid.New()
	n.CreatedAt = s.now()

	err := s.notifications.Insert(context.WithoutCancel(ctx), n)
	if err != nil {
		slog.ErrorContext(ctx, "notification failed",
			"user_id", n.UserID, "type", n.Type, "error", err)
	}
}

func (s *Service) publish(ctx context.Context, events ...feed.Event) {
	err := s.publisher.Publish(context.WithoutCancel(ctx), events...)
	if err != nil {
		slog.ErrorContext(ctx, "feed publish failed", "events", len(events), "error", err)
	}
}

func (s *Service) invalidateReputation(userID uuid.UUID) {
	if s.reputation != nil {
		s.reputation.Invalidate(userID)
	}
}

// listingName is best effort and only feeds notification text.
func (s *Service) listingName(ctx context.Context, id uuid.UUID) string {
	l, err := s.listings.Get(context.WithoutCancel(ctx), id)
	if err != nil {
		slog.WarnContext(ctx, "listing lookup for notification failed", "listing_id", id, "error", err)
		return "your card"
	}

	return l.Name
}
