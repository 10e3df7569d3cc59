package escrow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// GetTransaction returns the transaction to one of its parties. An active
// transaction found past its deadline is expired before it is returned.
func (s *Service) GetTransaction(ctx context.Context, viewerID, transactionID uuid.UUID) (Transaction, error) {
	txn, err := s.transactions.Get(ctx, transactionID)
	if err != nil {
		return Transaction{}, fmt.Errorf("get transaction: %w", err)
	}

	if viewerID != txn.SellerID && viewerID != txn.BuyerID {
		return Transaction{}, ErrForbidden
	}

	if txn.Status.Terminal() || !txn.Expired(s.now()) {
		return txn, nil
	}

	expired, err := s.AutoExpire(ctx, transactionID)
	if err == nil {
		return expired, nil
	}

	// Someone else closed it between the read and the lock.
	if !errors.Is(err, ErrTransactionClosed) && !errors.Is(err, ErrNotExpired) {
		return Transaction{}, err
	}

	txn, err = s.transactions.Get(ctx, transactionID)
	if err != nil {
		return Transaction{}, fmt.Errorf("get transaction: %w", err)
	}

	return txn, nil
}

// ListCancellations returns the audit trail of a transaction to one of its parties.
func (s *Service) ListCancellations(ctx context.Context, viewerID, transactionID uuid.UUID) ([]Cancellation, error) {
	txn, err := s.transactions.Get(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	if viewerID != txn.SellerID && viewerID != txn.BuyerID {
		return nil, ErrForbidden
	}

	list, err := s.cancellations.ListByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list cancellations: %w", err)
	}

	return list, nil
}

func (s *Service) GetListing(ctx context.Context, listingID uuid.UUID) (Listing, error) {
	l, err := s.listings.Get(ctx, listingID)
	if err != nil {
		return Listing{}, fmt.Errorf("get listing: %w", err)
	}

	return l, nil
}

func (s *Service) ListOffers(ctx context.Context, listingID uuid.UUID) ([]Offer, error) {
	_, err := s.listings.Get(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	list, err := s.offers.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	return list, nil
}

func (s *Service) GetReputation(ctx context.Context, userID uuid.UUID) (Reputation, error) {
	if s.reputation != nil {
		return s.reputation.Get(ctx, userID)
	}

	rep, err := s.profiles.GetReputation(ctx, userID)
	if err != nil {
		return Reputation{}, fmt.Errorf("get reputation: %w", err)
	}

	return rep, nil
}

func (s *Service) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Notification, error) {
	list, err := s.notifications.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return list, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := s.notifications.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}
