package escrow

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fastprodman/cardescrow/internal/repos/transactions"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// emptyDue reports no due transactions and counts how often it was asked.
type emptyDue struct {
	transactions.Transactions
	calls atomic.Int64
}

func (e *emptyDue) ListDue(context.Context, time.Time, int) ([]uuid.UUID, error) {
	e.calls.Add(1)
	return nil, nil
}

func TestRunSweeper_RejectsNonPositiveSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		interval time.Duration
		batch    int
	}{
		{name: "zero_batch", interval: time.Hour, batch: 0},
		{name: "negative_batch", interval: time.Hour, batch: -5},
		{name: "zero_interval", interval: 0, batch: 10},
		{name: "negative_interval", interval: -time.Second, batch: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := new(emptyDue)
			s := &Service{transactions: repo, clock: time.Now}

			ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
			defer cancel()

			err := s.RunSweeper(ctx, tt.interval, tt.batch)
			require.ErrorIs(t, err, ErrInvalidSweep)
			require.Zero(t, repo.calls.Load())
		})
	}
}

func TestRunSweeper_IdleUntilTick(t *testing.T) {
	t.Parallel()

	repo := new(emptyDue)
	s := &Service{transactions: repo, clock: time.Now}

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, s.RunSweeper(ctx, time.Hour, 10))
	require.Equal(t, int64(1), repo.calls.Load())
}
