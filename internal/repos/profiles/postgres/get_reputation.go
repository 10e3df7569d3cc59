package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/profiles"
	"github.com/google/uuid"
)

func (r *profilesRepo) GetReputation(ctx context.Context, userID uuid.UUID) (profiles.Reputation, error) {
	rep, err := scanReputation(r.db.QueryRowContext(ctx, `
		SELECT `+reputationColumns+`
		FROM profiles
		WHERE id = $1
	`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Reputation{}, profiles.ErrProfileNotFound
		}

		return profiles.Reputation{}, fmt.Errorf("get reputation: %w", err)
	}

	return rep, nil
}
