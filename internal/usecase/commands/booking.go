package commands

import (
	"context"

	"golden-travel/internal/domain/booking"
	"golden-travel/internal/infra"
	"golden-travel/internal/pkg/clock"
	"golden-travel/internal/pkg/errs"
	"golden-travel/internal/usecase/queries"
	"golden-travel/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	DealID       uuid.UUID
	DateOptionID uuid.UUID
	Contact      booking.ContactDetails
	Travellers   int32
	Extras       booking.Extras
}

type ConfirmPaymentParams struct {
	BookingID     uuid.UUID
	Method        booking.PaymentMethod
	Amount        float64
	TransactionID string
}

type BookingCommands interface {
	// CreateBooking reserves seats and creates the booking in one
	// transaction. Reservation fails atomically when capacity is short.
	CreateBooking(ctx context.Context, actor uuid.UUID, params CreateBookingParams) (*queries.BookingView, error)
	ConfirmPayment(ctx context.Context, actor uuid.UUID, params ConfirmPaymentParams) (*queries.BookingView, error)
	// CancelBooking releases reserved capacity along with the state change.
	CancelBooking(ctx context.Context, actor uuid.UUID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	bookings queries.BookingQueries
	clk      clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookings queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, bookings: bookings, clk: clk}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, actor uuid.UUID, params CreateBookingParams) (*queries.BookingView, error) {
	entity, err := booking.NewBooking(
		actor, params.DealID, params.DateOptionID,
		params.Contact, params.Travellers, params.Extras,
		c.clk.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		opt, err := tx.Reads().DateOptionByID(ctx, params.DateOptionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrDateOptionNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if opt.DealID != params.DealID {
			return errs.ErrDateOptionNotFound
		}

		if err := tx.DateOptions().ReserveCapacity(ctx, tx.DB(), opt.ID, params.Travellers); err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return errs.ErrCapacityExceeded
			case infra.IsKind(err, infra.KindNotFound):
				return errs.ErrDateOptionNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookings.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) ConfirmPayment(ctx context.Context, actor uuid.UUID, params ConfirmPaymentParams) (*queries.BookingView, error) {
	if !params.Method.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidPaymentMethod, errs.ErrDomainValidation)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.lockOwnedBooking(ctx, tx, actor, params.BookingID)
		if err != nil {
			return err
		}
		if snap.Status.IsTerminal() {
			return errs.ErrBookingNotConfirmable
		}

		err = tx.Bookings().ConfirmPayment(ctx, tx.DB(), snap.ID, params.Method, params.Amount, params.TransactionID, c.clk.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingNotConfirmable
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookings.GetByIDSystem(ctx, params.BookingID)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, actor uuid.UUID, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.lockOwnedBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		if snap.Status.IsTerminal() {
			return errs.ErrBookingNotCancelable
		}

		err = tx.Bookings().MarkCanceled(ctx, tx.DB(), snap.ID, c.clk.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingNotCancelable
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// Seats held by the booking go back to the pool in the same
		// transaction, so a cancel can never leak capacity.
		err = tx.DateOptions().ReleaseCapacity(ctx, tx.DB(), snap.DateOptionID, snap.Travellers)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// lockOwnedBooking locks the booking row and hides other users' bookings
// behind not-found.
func (c *bookingCommandsImpl) lockOwnedBooking(ctx context.Context, tx shared.Tx, actor, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Reads().BookingForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.UserID != actor {
		return nil, errs.ErrBookingNotFound
	}
	return snap, nil
}
