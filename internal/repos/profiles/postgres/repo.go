package profiles

import (
	"database/sql"

	"github.com/fastprodman/cardescrow/internal/repos/profiles"
)

var _ profiles.Profiles = (*profilesRepo)(nil)

type profilesRepo struct{ db *sql.DB }

func New(db *sql.DB) *profilesRepo {
	return &profilesRepo{db: db}
}

const reputationColumns = `
	id, legit_rate, total_transactions, completed_transactions,
	cancelled_transactions, daily_cancellations, last_cancellation_date
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReputation(row rowScanner) (profiles.Reputation, error) {
	var (
		rep  profiles.Reputation
		last sql.NullTime
	)

	err := row.Scan(
		&rep.UserID, &rep.LegitRate, &rep.TotalTransactions, &rep.CompletedTransactions,
		&rep.CancelledTransactions, &rep.DailyCancellations, &last,
	)
	if err != nil {
		return profiles.Reputation{}, err
	}

	if last.Valid {
		d := last.Time.UTC()
		rep.LastCancellationDate = &d
	}

	return rep, nil
}
