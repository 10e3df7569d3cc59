package escrow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/infra/pgutils"
	"github.com/fastprodman/cardescrow/internal/repos/cancellations"
	"github.com/fastprodman/cardescrow/internal/repos/listings"
	"github.com/fastprodman/cardescrow/internal/repos/notifications"
	"github.com/fastprodman/cardescrow/internal/repos/transactions"
	"github.com/fastprodman/cardescrow/internal/services/reputation"
	"github.com/google/uuid"
)

// Complete closes the transaction as a sale. Only the seller completes.
// A transaction past its deadline is auto-cancelled in the same commit and
// ErrTransactionExpired is returned.
func (s *Service) Complete(ctx context.Context, actorID, transactionID uuid.UUID) (Transaction, error) {
	now := s.now()

	var (
		txn     Transaction
		expired bool
	)

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		cur, err := s.lockOpen(ctx, tx, actorID, transactionID)
		if err != nil {
			return err
		}

		if cur.Expired(now) {
			expired = true
			txn, err = s.closeWithoutSale(ctx, tx, cur, transactions.PartySystem, nil, now)

			return err
		}

		if actorID != cur.SellerID {
			return ErrForbidden
		}

		err = checkTransition(transactionTransitions, cur.Status, transactions.StatusCompleted)
		if err != nil {
			return err
		}

		err = s.transactions.Complete(ctx, tx, cur.ID, now)
		if err != nil {
			return fmt.Errorf("complete transaction: %w", err)
		}

		err = checkTransition(listingTransitions, listings.StatusInTransaction, listings.StatusSold)
		if err != nil {
			return err
		}

		err = s.listings.MarkSold(ctx, tx, cur.ListingID, cur.Price)
		if err != nil {
			return fmt.Errorf("mark listing sold: %w", err)
		}

		err = s.applyOutcome(ctx, tx, cur.BuyerID, reputation.Completed, now)
		if err != nil {
			return err
		}

		txn = cur
		txn.Status = transactions.StatusCompleted
		txn.CompletedAt = &now

		return nil
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("complete: %w", err)
	}

	if expired {
		s.afterExpire(ctx, txn, now)
		return txn, ErrTransactionExpired
	}

	s.invalidateReputation(txn.BuyerID)

	slog.InfoContext(ctx, "transaction completed",
		"transaction_id", txn.ID, "listing_id", txn.ListingID, "actor", actorID)

	listing := s.listingName(ctx, txn.ListingID)

	s.notify(ctx, notifications.Notification{
		UserID:    txn.BuyerID,
		Type:      notifications.TypeCardSold,
		Title:     "Purchase complete",
		Message:   fmt.Sprintf("The seller completed the sale of %s for %s.", listing, txn.Price.StringFixed(2)),
		ListingID: uuid.NullUUID{UUID: txn.ListingID, Valid: true},
		OfferID:   uuid.NullUUID{UUID: txn.OfferID, Valid: true},
	})

	s.publish(ctx,
		feed.Event{Table: feed.TableTransactions, RecordID: txn.ID, Type: feed.EventUpdate, Status: string(txn.Status), At: now},
		feed.Event{Table: feed.TableCards, RecordID: txn.ListingID, Type: feed.EventUpdate, Status: string(listings.StatusSold), At: now},
	)

	return txn, nil
}

// Cancel closes the transaction without a sale on behalf of the buyer or the
// seller. The reason is validated before any database access. Only a buyer
// cancellation touches reputation.
func (s *Service) Cancel(ctx context.Context, actorID, transactionID uuid.UUID, reason string) (Transaction, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < MinReasonLength {
		return Transaction{}, ErrReasonTooShort
	}

	now := s.now()

	var (
		txn     Transaction
		party   transactions.Party
		expired bool
	)

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		cur, err := s.lockOpen(ctx, tx, actorID, transactionID)
		if err != nil {
			return err
		}

		if cur.Expired(now) {
			expired = true
			txn, err = s.closeWithoutSale(ctx, tx, cur, transactions.PartySystem, nil, now)

			return err
		}

		party = transactions.PartySeller
		if actorID == cur.BuyerID {
			party = transactions.PartyBuyer
		}

		txn, err = s.closeWithoutSale(ctx, tx, cur, party, &reason, now)
		if err != nil {
			return err
		}

		if party == transactions.PartyBuyer {
			return s.applyOutcome(ctx, tx, cur.BuyerID, reputation.CancelledByBuyer, now)
		}

		return nil
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("cancel: %w", err)
	}

	if expired {
		s.afterExpire(ctx, txn, now)
		return txn, ErrTransactionExpired
	}

	if party == transactions.PartyBuyer {
		s.invalidateReputation(txn.BuyerID)
	}

	slog.InfoContext(ctx, "transaction cancelled",
		"transaction_id", txn.ID, "listing_id", txn.ListingID, "actor", actorID, "party", party)

	counterparty := txn.SellerID
	if party == transactions.PartySeller {
		counterparty = txn.BuyerID
	}

	listing := s.listingName(ctx, txn.ListingID)

	s.notify(ctx, notifications.Notification{
		UserID:    counterparty,
		Type:      notifications.TypeOfferRejected,
		Title:     "Transaction cancelled",
		Message:   fmt.Sprintf("The %s cancelled the transaction for %s: %s", party, listing, reason),
		ListingID: uuid.NullUUID{UUID: txn.ListingID, Valid: true},
		OfferID:   uuid.NullUUID{UUID: txn.OfferID, Valid: true},
	})

	s.publishClosed(ctx, txn, now)

	return txn, nil
}

// AutoExpire cancels a transaction whose deadline has passed. No reputation
// changes; the listing goes back on sale.
func (s *Service) AutoExpire(ctx context.Context, transactionID uuid.UUID) (Transaction, error) {
	now := s.now()

	var txn Transaction

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		cur, err := s.transactions.LockAndGet(ctx, tx, transactionID)
		if err != nil {
			return fmt.Errorf("lock transaction: %w", err)
		}

		if cur.Status.Terminal() {
			return ErrTransactionClosed
		}

		if !cur.Expired(now) {
			return ErrNotExpired
		}

		txn, err = s.closeWithoutSale(ctx, tx, cur, transactions.PartySystem, nil, now)

		return err
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("auto expire: %w", err)
	}

	s.afterExpire(ctx, txn, now)

	return txn, nil
}

// lockOpen locks an active transaction the actor takes part in.
func (s *Service) lockOpen(ctx context.Context, tx *sql.Tx, actorID, transactionID uuid.UUID) (Transaction, error) {
	cur, err := s.transactions.LockAndGet(ctx, tx, transactionID)
	if err != nil {
		return Transaction{}, fmt.Errorf("lock transaction: %w", err)
	}

	if actorID != cur.SellerID && actorID != cur.BuyerID {
		return Transaction{}, ErrForbidden
	}

	if cur.Status.Terminal() {
		return Transaction{}, ErrTransactionClosed
	}

	return cur, nil
}

// closeWithoutSale moves a locked active transaction to cancelled (or
// auto_cancelled for the system), puts the listing back on sale and appends
// the audit record.
func (s *Service) closeWithoutSale(
	ctx context.Context,
	tx *sql.Tx,
	cur Transaction,
	by transactions.Party,
	reason *string,
	now time.Time,
) (Transaction, error) {
	status := transactions.StatusCancelled
	if by == transactions.PartySystem {
		status = transactions.StatusAutoCancelled
	}

	err := checkTransition(transactionTransitions, cur.Status, status)
	if err != nil {
		return Transaction{}, err
	}

	err = s.transactions.Cancel(ctx, tx, cur.ID, transactions.Closure{
		Status: status,
		By:     by,
		Reason: reason,
		At:     now,
	})
	if err != nil {
		if errors.Is(err, transactions.ErrTransactionNotActive) {
			return Transaction{}, ErrTransactionClosed
		}

		return Transaction{}, fmt.Errorf("cancel transaction: %w", err)
	}

	err = s.moveListing(ctx, tx, cur.ListingID, listings.StatusInTransaction, listings.StatusActive)
	if err != nil {
		return Transaction{}, fmt.Errorf("relist: %w", err)
	}

	err = s.cancellations.Insert(ctx, tx, cancellations.Cancellation{
		ID:            uuid.New(),
		TransactionID: cur.ID,
		ListingID:     cur.ListingID,
		CancelledBy:   string(by),
		Reason:        reason,
		CreatedAt:     now,
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("record cancellation: %w", err)
	}

	cur.Status = status
	cur.CancelledBy = &by
	cur.CancellationReason = reason
	cur.CancelledAt = &now

	return cur, nil
}

func (s *Service) moveListing(ctx context.Context, tx *sql.Tx, id uuid.UUID, from, to listings.Status) error {
	err := checkTransition(listingTransitions, from, to)
	if err != nil {
		return err
	}

	return s.listings.SetStatus(ctx, tx, id, from, to)
}

// applyOutcome is a locked read-modify-write of the user's reputation row.
func (s *Service) applyOutcome(ctx context.Context, tx *sql.Tx, userID uuid.UUID, outcome reputation.Outcome, now time.Time) error {
	rep, err := s.profiles.LockAndGetReputation(ctx, tx, userID)
	if err != nil {
		return fmt.Errorf("lock reputation: %w", err)
	}

	err = s.profiles.SaveReputation(ctx, tx, reputation.Apply(rep, outcome, now))
	if err != nil {
		return fmt.Errorf("save reputation (%s): %w", outcome, err)
	}

	return nil
}

func (s *Service) afterExpire(ctx context.Context, txn Transaction, now time.Time) {
	slog.InfoContext(ctx, "transaction expired",
		"transaction_id", txn.ID, "listing_id", txn.ListingID, "actor", transactions.PartySystem)

	listing := s.listingName(ctx, txn.ListingID)

	for _, userID := range []uuid.UUID{txn.BuyerID, txn.SellerID} {
		s.notify(ctx, notifications.Notification{
			UserID:    userID,
			Type:      notifications.TypeTransactionExpired,
			Title:     "Transaction expired",
			Message:   fmt.Sprintf("The transaction for %s was not completed in time and was cancelled. The card is listed again.", listing),
			ListingID: uuid.NullUUID{UUID: txn.ListingID, Valid: true},
			OfferID:   uuid.NullUUID{UUID: txn.OfferID, Valid: true},
		})
	}

	s.publishClosed(ctx, txn, now)
}

func (s *Service) publishClosed(ctx context.Context, txn Transaction, now time.Time) {
	s.publish(ctx,
		feed.Event{Table: feed.TableTransactions, RecordID: txn.ID, Type: feed.EventUpdate, Status: string(txn.Status), At: now},
		feed.Event{Table: feed.TableCards, RecordID: txn.ListingID, Type: feed.EventUpdate, Status: string(listings.StatusActive), At: now},
	)
}
