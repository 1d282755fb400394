package readstore

import (
	"context"
	"errors"

	"golden-travel/internal/infra"
	"golden-travel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingByIDSQL = `
SELECT b.id, b.user_id, b.deal_id, d.title, b.date_option_id,
       o.start_date, o.end_date,
       b.full_name, b.email, b.phone,
       b.address_line1, b.address_line2, b.town, b.state, b.postcode, b.country,
       b.travellers, b.room_option,
       b.add_transfer, b.add_nights, b.flight_help, b.donation,
       b.payment_method, b.payment_status, b.payment_amount, b.transaction_id, b.payment_date,
       b.status, b.canceled_at, b.created_at
FROM bookings b
JOIN deals d ON d.id = b.deal_id
JOIN date_options o ON o.id = b.date_option_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&v.ID, &v.UserID, &v.DealID, &v.DealTitle, &v.DateOptionID,
		&v.StartDate, &v.EndDate,
		&v.FullName, &v.Email, &v.Phone,
		&v.AddressLine1, &v.AddressLine2, &v.Town, &v.State, &v.Postcode, &v.Country,
		&v.Travellers, &v.RoomOption,
		&v.AddTransfer, &v.AddNights, &v.FlightHelp, &v.Donation,
		&v.PaymentMethod, &v.PaymentStatus, &v.PaymentAmount, &v.TransactionID, &v.PaymentDate,
		&v.Status, &v.CanceledAt, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &v, nil
}

const findBookingsByUserSQL = `
SELECT b.id, b.deal_id, d.title, o.start_date, o.end_date,
       b.travellers, b.status, b.payment_status, b.created_at
FROM bookings b
JOIN deals d ON d.id = b.deal_id
JOIN date_options o ON o.id = b.date_option_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.DealID, &item.DealTitle, &item.StartDate, &item.EndDate,
			&item.Travellers, &item.Status, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}
