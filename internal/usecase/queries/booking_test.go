//go:build unit

package queries_test

import (
	"context"
	"testing"

	"golden-travel/internal/infra"
	"golden-travel/internal/pkg/errs"
	"golden-travel/internal/usecase/queries"
	"golden-travel/tests/common/builder"
	queriesmock "golden-travel/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *queriesmock.MockBookingViewRepo
	queries  queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = queriesmock.NewMockBookingViewRepo(s.mockCtrl)
	s.queries = queries.NewBookingQueries(s.mockRepo)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	bookingBuilder := builder.NewBookingBuilder()

	s.Run("returns the owner's booking", func() {
		view := bookingBuilder.BuildView()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(context.Background(), bookingBuilder.UserID, view.ID)
		s.NoError(err)
		s.Equal(view.ID, got.ID)
		s.Equal(bookingBuilder.UserID, got.UserID)
	})

	s.Run("hides another user's booking as not found", func() {
		view := bookingBuilder.BuildView()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(context.Background(), uuid.New(), view.ID)
		s.Nil(got)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("maps a missing row to not found", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("missing", errs.New("no rows"), infra.KindNotFound)).Times(1)

		got, err := s.queries.GetByID(context.Background(), bookingBuilder.UserID, id)
		s.Nil(got)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestGetByIDSystem() {
	bookingBuilder := builder.NewBookingBuilder()

	s.Run("skips the ownership check", func() {
		view := bookingBuilder.BuildView()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByIDSystem(context.Background(), view.ID)
		s.NoError(err)
		s.Equal(view.ID, got.ID)
	})
}

func (s *BookingQueriesTestSuite) TestListByUser() {
	bookingBuilder := builder.NewBookingBuilder()

	s.Run("returns the user's bookings", func() {
		first := bookingBuilder.BuildListItem()
		second := bookingBuilder.BuildListItem()
		s.mockRepo.EXPECT().FindByUserID(gomock.Any(), bookingBuilder.UserID).
			Return([]*queries.BookingListItem{first, second}, nil).Times(1)

		got, err := s.queries.ListByUser(context.Background(), bookingBuilder.UserID)
		s.NoError(err)
		s.Len(got, 2)
		s.Equal(first.ID, got[0].ID)
	})

	s.Run("marks repository failures", func() {
		s.mockRepo.EXPECT().FindByUserID(gomock.Any(), bookingBuilder.UserID).
			Return(nil, errs.New("boom")).Times(1)

		got, err := s.queries.ListByUser(context.Background(), bookingBuilder.UserID)
		s.Nil(got)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
