package escrow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ExpireDue auto-expires up to limit transactions whose deadline has passed
// and returns how many it closed. Transactions closed concurrently are skipped.
func (s *Service) ExpireDue(ctx context.Context, limit int) (int, error) {
	ids, err := s.transactions.ListDue(ctx, s.now(), limit)
	if err != nil {
		return 0, fmt.Errorf("list due: %w", err)
	}

	var (
		expired int
		errs    []error
	)

	for _, id := range ids {
		_, err = s.AutoExpire(ctx, id)
		switch {
		case err == nil:
			expired++
		case errors.Is(err, ErrTransactionClosed), errors.Is(err, ErrNotExpired):
		default:
			errs = append(errs, fmt.Errorf("transaction %s: %w", id, err))
		}
	}

	return expired, errors.Join(errs...)
}

// RunSweeper calls ExpireDue every interval until ctx is done. A full batch
// is followed immediately by another pass. Interval and batch must be positive.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration, batch int) error {
	if interval <= 0 || batch <= 0 {
		return fmt.Errorf("%w: interval %s, batch %d", ErrInvalidSweep, interval, batch)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		for {
			n, err := s.ExpireDue(ctx, batch)
			if ctx.Err() != nil {
				return nil
			}

			if err != nil {
				slog.ErrorContext(ctx, "expiry sweep failed", "expired", n, "error", err)
			}

			if n > 0 {
				slog.InfoContext(ctx, "expiry sweep", "expired", n)
			}

			if err != nil || n < batch {
				break
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
