//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"golden-travel/internal/domain/booking"
	"golden-travel/internal/infra"
	"golden-travel/internal/pkg/clock"
	"golden-travel/internal/pkg/errs"
	"golden-travel/internal/usecase/commands"
	"golden-travel/internal/usecase/shared"
	"golden-travel/tests/common/builder"
	queriesmock "golden-travel/tests/mock/queries"
	sharedmock "golden-travel/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockReads    *sharedmock.MockCommandReads
	mockBookings *sharedmock.MockBookingRepository
	mockOptions  *sharedmock.MockDateOptionRepository
	mockQueries  *queriesmock.MockBookingQueries
	clk          *clock.MockClock
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockBookings = sharedmock.NewMockBookingRepository(s.mockCtrl)
	s.mockOptions = sharedmock.NewMockDateOptionRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(s.mockUoW, s.mockQueries, s.clk)

	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()
	s.mockTx.EXPECT().DateOptions().Return(s.mockOptions).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		},
	).Times(1)
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()
	params := b.BuildCreateParams()
	actor := b.UserID
	bookingID := uuid.New()
	view := b.BuildView()

	optionSnap := &shared.DateOptionSnapshot{
		ID:       params.DateOptionID,
		DealID:   params.DealID,
		Capacity: 10,
	}

	s.Run("reserves capacity and creates the booking", func() {
		s.expectWithin()
		s.mockReads.EXPECT().DateOptionByID(gomock.Any(), params.DateOptionID).
			Return(optionSnap, nil).Times(1)
		s.mockOptions.EXPECT().ReserveCapacity(gomock.Any(), gomock.Any(), params.DateOptionID, params.Travellers).
			Return(nil).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingID, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).
			Return(view, nil).Times(1)

		got, err := s.commands.CreateBooking(context.Background(), actor, params)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("unknown date option maps to not found", func() {
		s.expectWithin()
		s.mockReads.EXPECT().DateOptionByID(gomock.Any(), params.DateOptionID).
			Return(nil, infra.WrapRepoErr("missing", stubErr(), infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), actor, params)
		s.ErrorIs(err, errs.ErrDateOptionNotFound)
	})

	s.Run("date option of another deal is hidden", func() {
		s.expectWithin()
		foreign := *optionSnap
		foreign.DealID = uuid.New()
		s.mockReads.EXPECT().DateOptionByID(gomock.Any(), params.DateOptionID).
			Return(&foreign, nil).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), actor, params)
		s.ErrorIs(err, errs.ErrDateOptionNotFound)
	})

	s.Run("capacity shortage maps to capacity exceeded", func() {
		s.expectWithin()
		s.mockReads.EXPECT().DateOptionByID(gomock.Any(), params.DateOptionID).
			Return(optionSnap, nil).Times(1)
		s.mockOptions.EXPECT().ReserveCapacity(gomock.Any(), gomock.Any(), params.DateOptionID, params.Travellers).
			Return(infra.WrapRepoErr("short", stubErr(), infra.KindConflict)).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), actor, params)
		s.ErrorIs(err, errs.ErrCapacityExceeded)
	})

	s.Run("invalid travellers fails before the transaction", func() {
		bad := params
		bad.Travellers = 0

		_, err := s.commands.CreateBooking(context.Background(), actor, bad)
		s.ErrorIs(err, errs.ErrDomainValidation)
		s.ErrorIs(err, booking.ErrInvalidTravellers)
	})
}

// ================================================================================
// ConfirmPayment
// ================================================================================

func (s *BookingCommandsTestSuite) TestConfirmPayment() {
	b := builder.NewBookingBuilder()
	actor := b.UserID
	bookingID := uuid.New()
	view := b.BuildView()
	params := commands.ConfirmPaymentParams{
		BookingID:     bookingID,
		Method:        booking.PaymentMethodStripe,
		Amount:        1250.50,
		TransactionID: "tx-42",
	}

	snapshot := func(status booking.Status) *shared.BookingSnapshot {
		return &shared.BookingSnapshot{
			ID:           bookingID,
			UserID:       actor,
			DealID:       b.DealID,
			DateOptionID: b.DateOptionID,
			Travellers:   b.Travellers,
			Status:       status,
		}
	}

	s.Run("confirms a pending booking", func() {
		s.expectWithin()
		s.mockReads.EXPECT().BookingForUpdate(gomock.Any(), bookingID).
			Return(snapshot(booking.StatusPending), nil).Times(1)
		s.mockBookings.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any(), bookingID, params.Method, params.Amount, params.TransactionID, s.clk.Now()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).
			Return(view, nil).Times(1)

		got, err := s.commands.ConfirmPayment(context.Background(), actor, params)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("invalid method is rejected before the transaction", func() {
		bad := params
		bad.Method = "bitcoin"

		_, err := s.commands.ConfirmPayment(context.Background(), actor, bad)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("someone else's booking is hidden", func() {
		s.expectWithin()
		foreign := snapshot(booking.StatusPending)
		foreign.UserID = uuid.New()
		s.mockReads.EXPECT().BookingForUpdate(gomock.Any(), bookingID).
			Return(foreign, nil).Times(1)

		_, err := s.commands.ConfirmPayment(context.Background(), actor, params)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("terminal booking cannot be confirmed", func() {
		s.expectWithin()
		s.mockReads.EXPECT().BookingForUpdate(gomock.Any(), bookingID).
			Return(snapshot(booking.StatusCanceled), nil).Times(1)

		_, err := s.commands.ConfirmPayment(context.Background(), actor, params)
		s.ErrorIs(err, errs.ErrBookingNotConfirmable)
	})
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	b := builder.NewBookingBuilder()
	actor := b.UserID
	bookingID := uuid.New()

	snapshot := func(status booking.Status) *shared.BookingSnapshot {
		return &shared.BookingSnapshot{
			ID:           bookingID,
			UserID:       actor,
			DealID:       b.DealID,
			DateOptionID: b.DateOptionID,
			Travellers:   b.Travellers,
			Status:       status,
		}
	}

	s.Run("cancels and refunds capacity in one transaction", func() {
		s.expectWithin()
		s.mockReads.EXPECT().BookingForUpdate(gomock.Any(), bookingID).
			Return(snapshot(booking.StatusConfirmed), nil).Times(1)
		s.mockBookings.EXPECT().MarkCanceled(gomock.Any(), gomock.Any(), bookingID, s.clk.Now()).
			Return(nil).Times(1)
		s.mockOptions.EXPECT().ReleaseCapacity(gomock.Any(), gomock.Any(), b.DateOptionID, b.Travellers).
			Return(nil).Times(1)

		s.NoError(s.commands.CancelBooking(context.Background(), actor, bookingID))
	})

	s.Run("unknown booking maps to not found", func() {
		s.expectWithin()
		s.mockReads.EXPECT().BookingForUpdate(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("missing", stubErr(), infra.KindNotFound)).Times(1)

		s.ErrorIs(s.commands.CancelBooking(context.Background(), actor, bookingID), errs.ErrBookingNotFound)
	})

	s.Run("terminal booking cannot be canceled", func() {
		s.expectWithin()
		s.mockReads.EXPECT().BookingForUpdate(gomock.Any(), bookingID).
			Return(snapshot(booking.StatusCompleted), nil).Times(1)

		s.ErrorIs(s.commands.CancelBooking(context.Background(), actor, bookingID), errs.ErrBookingNotCancelable)
	})

	s.Run("guarded update losing the race maps to not cancelable", func() {
		s.expectWithin()
		s.mockReads.EXPECT().BookingForUpdate(gomock.Any(), bookingID).
			Return(snapshot(booking.StatusPending), nil).Times(1)
		s.mockBookings.EXPECT().MarkCanceled(gomock.Any(), gomock.Any(), bookingID, s.clk.Now()).
			Return(infra.WrapRepoErr("already terminal", stubErr(), infra.KindConflict)).Times(1)

		s.ErrorIs(s.commands.CancelBooking(context.Background(), actor, bookingID), errs.ErrBookingNotCancelable)
	})
}

func stubErr() error {
	return errs.New("boom")
}
