// Package reputation keeps the buyer "legit rate" ledger: a 0..100 score
// moved only by transaction outcomes, with a steeper penalty for repeated
// cancellations on the same day.
package reputation

import (
	"time"

	"github.com/fastprodman/cardescrow/internal/repos/profiles"
)

type Reputation = profiles.Reputation

type Outcome int

const (
	Completed Outcome = iota + 1
	CancelledByBuyer
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case CancelledByBuyer:
		return "cancelled_by_buyer"
	default:
		return "unknown"
	}
}

const (
	MinRate = 0
	MaxRate = 100

	completionBonus = 2
	cancelPenalty   = 5
	// Extra penalty once more than dailyCancelLimit cancellations already happened today.
	repeatCancelPenalty = 10
	dailyCancelLimit    = 3
)

// Apply returns rep updated for outcome. Today is the UTC calendar date of now.
func Apply(rep Reputation, outcome Outcome, now time.Time) Reputation {
	switch outcome {
	case Completed:
		rep.LegitRate = clamp(rep.LegitRate + completionBonus)
		rep.CompletedTransactions++

	case CancelledByBuyer:
		today := dateOf(now)

		earlier := 0
		if rep.LastCancellationDate != nil && dateOf(*rep.LastCancellationDate).Equal(today) {
			earlier = rep.DailyCancellations
		}

		penalty := cancelPenalty
		if earlier > dailyCancelLimit {
			penalty += repeatCancelPenalty
		}

		rep.LegitRate = clamp(rep.LegitRate - penalty)
		rep.CancelledTransactions++
		rep.DailyCancellations = earlier + 1
		rep.LastCancellationDate = &today

	default:
		return rep
	}

	rep.TotalTransactions++

	return rep
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clamp(rate int) int {
	return max(MinRate, min(MaxRate, rate))
}
