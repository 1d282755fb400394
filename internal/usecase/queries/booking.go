package queries

import (
	"context"
	"time"

	"golden-travel/internal/infra"
	"golden-travel/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	DealID        uuid.UUID  `json:"deal_id"`
	DealTitle     string     `json:"deal_title"`
	DateOptionID  uuid.UUID  `json:"date_option_id"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	AddressLine1  string     `json:"address_line1"`
	AddressLine2  *string    `json:"address_line2,omitempty"`
	Town          string     `json:"town"`
	State         string     `json:"state"`
	Postcode      string     `json:"postcode"`
	Country       string     `json:"country"`
	Travellers    int32      `json:"travellers"`
	RoomOption    string     `json:"room_option"`
	AddTransfer   bool       `json:"add_transfer"`
	AddNights     bool       `json:"add_nights"`
	FlightHelp    bool       `json:"flight_help"`
	Donation      bool       `json:"donation"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	PaymentStatus string     `json:"payment_status"`
	PaymentAmount *float64   `json:"payment_amount,omitempty"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Status        string     `json:"status"`
	CanceledAt    *time.Time `json:"canceled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	DealID        uuid.UUID `json:"deal_id"`
	DealTitle     string    `json:"deal_title"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Travellers    int32     `json:"travellers"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check; used for read-after-write
	// inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Bookings are private to their owner; leak nothing, not even existence.
	if view.UserID != actor {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
