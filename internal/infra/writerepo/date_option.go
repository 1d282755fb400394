package writerepo

import (
	"context"

	"golden-travel/internal/infra"

	"github.com/google/uuid"
)

type DateOptionRepository struct{}

func NewDateOptionRepository() *DateOptionRepository {
	return &DateOptionRepository{}
}

const reserveCapacitySQL = `
UPDATE date_options
SET capacity = capacity - $2
WHERE id = $1
  AND capacity >= $2`

// ReserveCapacity performs the check and the decrement in one statement;
// a stale read can never admit more travellers than remain.
func (r *DateOptionRepository) ReserveCapacity(ctx context.Context, db infra.DBTX, id uuid.UUID, travellers int32) error {
	tag, err := db.Exec(ctx, reserveCapacitySQL, id, travellers)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve capacity", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM date_options WHERE id = $1)`, id).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check date option existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("date option not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("insufficient capacity", nil, infra.KindConflict)
}

const releaseCapacitySQL = `
UPDATE date_options
SET capacity = capacity + $2
WHERE id = $1`

func (r *DateOptionRepository) ReleaseCapacity(ctx context.Context, db infra.DBTX, id uuid.UUID, travellers int32) error {
	tag, err := db.Exec(ctx, releaseCapacitySQL, id, travellers)
	if err != nil {
		return infra.WrapRepoErr("failed to release capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("date option not found", nil, infra.KindNotFound)
	}
	return nil
}
