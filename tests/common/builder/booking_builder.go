//go:build unit || e2e

package builder

import (
	"time"

	dombooking "golden-travel/internal/domain/booking"
	reqdto "golden-travel/internal/handler/dto/request"
	"golden-travel/internal/pkg/ptr"
	"golden-travel/internal/usecase/commands"
	"golden-travel/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID       uuid.UUID
	DealID       uuid.UUID
	DealTitle    string
	DateOptionID uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	FullName     string
	Email        string
	Phone        string
	AddressLine1 string
	Town         string
	State        string
	Postcode     string
	Country      string
	Travellers   int32
	RoomOption   string
	AddTransfer  bool
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		UserID:       uuid.New(),
		DealID:       uuid.New(),
		DealTitle:    "Highlights of Tuscany",
		DateOptionID: uuid.New(),
		StartDate:    now.AddDate(0, 1, 0),
		EndDate:      now.AddDate(0, 1, 7),
		FullName:     "Ada Traveller",
		Email:        "ada@example.com",
		Phone:        "+49 151 1234567",
		AddressLine1: "1 Example Street",
		Town:         "Berlin",
		State:        "Berlin",
		Postcode:     "10115",
		Country:      "Germany",
		Travellers:   2,
		RoomOption:   "private",
		CreatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(
		b.UserID, b.DealID, b.DateOptionID,
		b.buildContact(),
		b.Travellers,
		b.buildExtras(),
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		DealID:       b.DealID,
		DateOptionID: b.DateOptionID,
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		AddressLine1: b.AddressLine1,
		Town:         b.Town,
		State:        b.State,
		Postcode:     b.Postcode,
		Country:      b.Country,
		Travellers:   b.Travellers,
		RoomOption:   b.RoomOption,
		AddTransfer:  b.AddTransfer,
	}
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		DealID:       b.DealID,
		DateOptionID: b.DateOptionID,
		Contact:      b.buildContact(),
		Travellers:   b.Travellers,
		Extras:       b.buildExtras(),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		UserID:        b.UserID,
		DealID:        b.DealID,
		DealTitle:     b.DealTitle,
		DateOptionID:  b.DateOptionID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		FullName:      b.FullName,
		Email:         b.Email,
		Phone:         b.Phone,
		AddressLine1:  b.AddressLine1,
		Town:          b.Town,
		State:         b.State,
		Postcode:      b.Postcode,
		Country:       b.Country,
		Travellers:    b.Travellers,
		RoomOption:    b.RoomOption,
		AddTransfer:   b.AddTransfer,
		PaymentStatus: dombooking.PaymentStatusPending.String(),
		Status:        dombooking.StatusPending.String(),
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            uuid.New(),
		DealID:        b.DealID,
		DealTitle:     b.DealTitle,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Travellers:    b.Travellers,
		Status:        dombooking.StatusPending.String(),
		PaymentStatus: dombooking.PaymentStatusPending.String(),
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) buildContact() dombooking.ContactDetails {
	return dombooking.ContactDetails{
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		AddressLine1: b.AddressLine1,
		AddressLine2: ptr.To("Apt 4"),
		Town:         b.Town,
		State:        b.State,
		Postcode:     b.Postcode,
		Country:      b.Country,
	}
}

func (b *BookingBuilder) buildExtras() dombooking.Extras {
	return dombooking.Extras{
		RoomOption:  dombooking.RoomOption(b.RoomOption),
		AddTransfer: b.AddTransfer,
	}
}
