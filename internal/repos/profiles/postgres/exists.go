package profiles

import (
	"context"
	"fmt"

	"github.com/fastprodman/cardescrow/internal/repos/profiles"
	"github.com/google/uuid"
)

func (r *profilesRepo) Exists(ctx context.Context, userID uuid.UUID) error {
	var exists bool

	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)
	`, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check profile exists: %w", err)
	}

	if !exists {
		return profiles.ErrProfileNotFound
	}

	return nil
}
