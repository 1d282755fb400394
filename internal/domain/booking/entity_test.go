//go:build unit

package booking_test

import (
	"testing"
	"time"

	"golden-travel/internal/domain/booking"
	"golden-travel/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentStatusPending, actual.Payment().Status)
		assert.Nil(t, actual.Payment().Method)
		assert.Nil(t, actual.CanceledAt())
		assert.Equal(t, int32(2), actual.Travellers())
	})

	t.Run("travellers validation", func(t *testing.T) {
		cases := []struct {
			name       string
			travellers int32
			errIs      error
		}{
			{name: "zero travellers", travellers: 0, errIs: booking.ErrInvalidTravellers},
			{name: "negative travellers", travellers: -3, errIs: booking.ErrInvalidTravellers},
			{name: "single traveller", travellers: 1},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.Travellers = tc.travellers
				}).BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("room option validation", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomOption = "suite"
		}).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidRoomOption)
	})
}

func TestBookingCancel(t *testing.T) {
	now := time.Now()

	t.Run("pending booking can be canceled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCanceled, b.Status())
		require.NotNil(t, b.CanceledAt())
		assert.Equal(t, now, *b.CanceledAt())
	})

	t.Run("confirmed booking can be canceled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.ConfirmPayment(booking.PaymentMethodStripe, 1200, "tx-1", now))

		assert.NoError(t, b.Cancel(now))
	})

	t.Run("canceling twice fails", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel(now))

		assert.ErrorIs(t, b.Cancel(now), booking.ErrNotCancelable)
	})

	t.Run("completed booking cannot be canceled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.ConfirmPayment(booking.PaymentMethodPayPal, 900, "tx-2", now))
		require.NoError(t, b.Complete())

		assert.False(t, b.CanBeCanceled())
		assert.ErrorIs(t, b.Cancel(now), booking.ErrNotCancelable)
	})
}

func TestBookingConfirmPayment(t *testing.T) {
	now := time.Now()

	t.Run("records payment and confirms", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.ConfirmPayment(booking.PaymentMethodStripe, 1250.50, "tx-42", now))

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		payment := b.Payment()
		assert.Equal(t, booking.PaymentStatusPaid, payment.Status)
		require.NotNil(t, payment.Method)
		assert.Equal(t, booking.PaymentMethodStripe, *payment.Method)
		require.NotNil(t, payment.Amount)
		assert.InDelta(t, 1250.50, *payment.Amount, 0.001)
		require.NotNil(t, payment.TransactionID)
		assert.Equal(t, "tx-42", *payment.TransactionID)
		require.NotNil(t, payment.PaidAt)
	})

	t.Run("invalid method is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.ConfirmPayment("bitcoin", 100, "tx", now), booking.ErrInvalidPaymentMethod)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("canceled booking cannot be confirmed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel(now))

		assert.ErrorIs(t, b.ConfirmPayment(booking.PaymentMethodManual, 100, "tx", now), booking.ErrNotConfirmable)
	})
}

func TestBookingComplete(t *testing.T) {
	t.Run("only confirmed bookings complete", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Complete(), booking.ErrNotCompletable)

		require.NoError(t, b.ConfirmPayment(booking.PaymentMethodStripe, 100, "tx", time.Now()))
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())

		assert.ErrorIs(t, b.Complete(), booking.ErrNotCompletable)
	})
}
