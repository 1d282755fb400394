package request

import (
	"strings"

	"golden-travel/internal/domain/booking"
	"golden-travel/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DealID       uuid.UUID `json:"deal_id" binding:"required"`
	DateOptionID uuid.UUID `json:"date_option_id" binding:"required"`

	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required"`
	AddressLine1 string  `json:"address_line1" binding:"required"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	Town         string  `json:"town" binding:"required"`
	State        string  `json:"state" binding:"required"`
	Postcode     string  `json:"postcode" binding:"required"`
	Country      string  `json:"country" binding:"required"`

	Travellers int32  `json:"travellers" binding:"required,min=1"`
	RoomOption string `json:"room_option" binding:"required"`

	AddTransfer bool `json:"add_transfer"`
	AddNights   bool `json:"add_nights"`
	FlightHelp  bool `json:"flight_help"`
	Donation    bool `json:"donation"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		DealID:       r.DealID,
		DateOptionID: r.DateOptionID,
		Contact: booking.ContactDetails{
			FullName:     strings.TrimSpace(r.FullName),
			Email:        strings.TrimSpace(r.Email),
			Phone:        strings.TrimSpace(r.Phone),
			AddressLine1: strings.TrimSpace(r.AddressLine1),
			AddressLine2: r.trimmedAddressLine2(),
			Town:         strings.TrimSpace(r.Town),
			State:        strings.TrimSpace(r.State),
			Postcode:     strings.TrimSpace(r.Postcode),
			Country:      strings.TrimSpace(r.Country),
		},
		Travellers: r.Travellers,
		Extras: booking.Extras{
			RoomOption:  booking.RoomOption(r.RoomOption),
			AddTransfer: r.AddTransfer,
			AddNights:   r.AddNights,
			FlightHelp:  r.FlightHelp,
			Donation:    r.Donation,
		},
	}
}

func (r CreateBookingRequest) trimmedAddressLine2() *string {
	if r.AddressLine2 == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.AddressLine2)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ConfirmPaymentRequest struct {
	Method        string  `json:"method" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transaction_id" binding:"required"`
}

func (r ConfirmPaymentRequest) ToParams(bookingID uuid.UUID) commands.ConfirmPaymentParams {
	return commands.ConfirmPaymentParams{
		BookingID:     bookingID,
		Method:        booking.PaymentMethod(r.Method),
		Amount:        r.Amount,
		TransactionID: strings.TrimSpace(r.TransactionID),
	}
}
