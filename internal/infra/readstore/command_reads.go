package readstore

import (
	"context"
	"errors"

	"golden-travel/internal/domain/booking"
	"golden-travel/internal/infra"
	"golden-travel/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads issues the row-locked lookups commands run inside their
// transaction. It is bound to a DBTX at construction so every read joins
// the surrounding transaction.
type CommandReads struct {
	db infra.DBTX
}

func NewCommandReads(db infra.DBTX) *CommandReads {
	return &CommandReads{db: db}
}

var _ shared.CommandReads = (*CommandReads)(nil)

const bookingForUpdateSQL = `
SELECT id, user_id, deal_id, date_option_id, travellers, status
FROM bookings
WHERE id = $1
FOR UPDATE`

func (r *CommandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, bookingForUpdateSQL, id).Scan(
		&snap.ID, &snap.UserID, &snap.DealID, &snap.DateOptionID, &snap.Travellers, &status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking row", err)
	}
	snap.Status = booking.Status(status)

	return &snap, nil
}

const dateOptionByIDSQL = `
SELECT id, deal_id, start_date, end_date, capacity
FROM date_options
WHERE id = $1`

func (r *CommandReads) DateOptionByID(ctx context.Context, id uuid.UUID) (*shared.DateOptionSnapshot, error) {
	var snap shared.DateOptionSnapshot
	err := r.db.QueryRow(ctx, dateOptionByIDSQL, id).Scan(
		&snap.ID, &snap.DealID, &snap.StartDate, &snap.EndDate, &snap.Capacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("date option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find date option", err)
	}

	return &snap, nil
}
