package shared

import (
	"context"
	"time"

	"golden-travel/internal/domain/booking"
	"golden-travel/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	DateOptions() DateOptionRepository
	Reads() CommandReads
	DB() infra.DBTX
}

// CommandReads are the row-locked reads commands need for their guards.
type CommandReads interface {
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	DateOptionByID(ctx context.Context, id uuid.UUID) (*DateOptionSnapshot, error)
}

type BookingSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	DealID       uuid.UUID
	DateOptionID uuid.UUID
	Travellers   int32
	Status       booking.Status
}

type DateOptionSnapshot struct {
	ID        uuid.UUID
	DealID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Capacity  int32
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error)
	ConfirmPayment(ctx context.Context, db infra.DBTX, id uuid.UUID, method booking.PaymentMethod, amount float64, transactionID string, paidAt time.Time) error
	MarkCanceled(ctx context.Context, db infra.DBTX, id uuid.UUID, canceledAt time.Time) error
}

type DateOptionRepository interface {
	// ReserveCapacity decrements capacity by travellers only when enough
	// remains, so two concurrent bookings cannot both pass a stale check.
	ReserveCapacity(ctx context.Context, db infra.DBTX, id uuid.UUID, travellers int32) error
	// ReleaseCapacity is the compensating action for ReserveCapacity.
	ReleaseCapacity(ctx context.Context, db infra.DBTX, id uuid.UUID, travellers int32) error
}
