package writerepo

import (
	"context"
	"time"

	"golden-travel/internal/domain/booking"
	"golden-travel/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, user_id, deal_id, date_option_id,
	full_name, email, phone, address_line1, address_line2, town, state, postcode, country,
	travellers, room_option, add_transfer, add_nights, flight_help, donation,
	payment_status, status, created_at
) VALUES (
	$1, $2, $3, $4,
	$5, $6, $7, $8, $9, $10, $11, $12, $13,
	$14, $15, $16, $17, $18, $19,
	$20, $21, $22
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	contact := b.Contact()
	extras := b.Extras()

	var id uuid.UUID
	err := db.QueryRow(ctx, createBookingSQL,
		b.ID(), b.UserID(), b.DealID(), b.DateOptionID(),
		contact.FullName, contact.Email, contact.Phone,
		contact.AddressLine1, contact.AddressLine2,
		contact.Town, contact.State, contact.Postcode, contact.Country,
		b.Travellers(), extras.RoomOption.String(),
		extras.AddTransfer, extras.AddNights, extras.FlightHelp, extras.Donation,
		b.Payment().Status.String(), b.Status().String(), b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const confirmPaymentSQL = `
UPDATE bookings
SET payment_method = $2,
    payment_status = 'paid',
    payment_amount = $3,
    transaction_id = $4,
    payment_date   = $5,
    status         = 'confirmed'
WHERE id = $1
  AND status NOT IN ('completed', 'canceled')`

func (r *BookingRepository) ConfirmPayment(
	ctx context.Context,
	db infra.DBTX,
	id uuid.UUID,
	method booking.PaymentMethod,
	amount float64,
	transactionID string,
	paidAt time.Time,
) error {
	tag, err := db.Exec(ctx, confirmPaymentSQL, id, method.String(), amount, transactionID, paidAt)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm booking payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not confirmable", nil, infra.KindConflict)
	}
	return nil
}

const markCanceledSQL = `
UPDATE bookings
SET status = 'canceled', canceled_at = $2
WHERE id = $1
  AND status NOT IN ('completed', 'canceled')`

// MarkCanceled re-checks the status in the WHERE clause so a racing
// second cancel affects zero rows instead of double-refunding capacity.
func (r *BookingRepository) MarkCanceled(ctx context.Context, db infra.DBTX, id uuid.UUID, canceledAt time.Time) error {
	tag, err := db.Exec(ctx, markCanceledSQL, id, canceledAt)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not cancelable", nil, infra.KindConflict)
	}
	return nil
}
