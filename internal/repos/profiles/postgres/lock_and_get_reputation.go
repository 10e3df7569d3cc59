package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/profiles"
	"github.com/google/uuid"
)

// LockAndGetReputation row-locks the profile so concurrent outcomes for the
// same user apply one after another.
func (r *profilesRepo) LockAndGetReputation(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (profiles.Reputation, error) {
	rep, err := scanReputation(tx.QueryRowContext(ctx, `
		SELECT `+reputationColumns+`
		FROM profiles
		WHERE id = $1
		FOR UPDATE
	`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Reputation{}, profiles.ErrProfileNotFound
		}

		return profiles.Reputation{}, fmt.Errorf("lock/get reputation: %w", err)
	}

	return rep, nil
}
