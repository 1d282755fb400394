package response

import (
	"time"

	"golden-travel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	DealID        uuid.UUID  `json:"dealId"`
	DealTitle     string     `json:"dealTitle"`
	DateOptionID  uuid.UUID  `json:"dateOptionId"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	AddressLine1  string     `json:"addressLine1"`
	AddressLine2  *string    `json:"addressLine2,omitempty"`
	Town          string     `json:"town"`
	State         string     `json:"state"`
	Postcode      string     `json:"postcode"`
	Country       string     `json:"country"`
	Travellers    int32      `json:"travellers"`
	RoomOption    string     `json:"roomOption"`
	AddTransfer   bool       `json:"addTransfer"`
	AddNights     bool       `json:"addNights"`
	FlightHelp    bool       `json:"flightHelp"`
	Donation      bool       `json:"donation"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentAmount *float64   `json:"paymentAmount,omitempty"`
	TransactionID *string    `json:"transactionId,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	Status        string     `json:"status"`
	CanceledAt    *time.Time `json:"canceledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	DealID        uuid.UUID `json:"dealId"`
	DealTitle     string    `json:"dealTitle"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Travellers    int32     `json:"travellers"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Views and responses share field names, so the mapping is mechanical.
func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
