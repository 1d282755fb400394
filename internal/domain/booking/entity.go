package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTravellers    = errors.New("travellers must be a positive number")
	ErrInvalidRoomOption    = errors.New("invalid room option")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNotCancelable        = errors.New("booking is already completed or canceled")
	ErrNotConfirmable       = errors.New("booking can no longer be confirmed")
	ErrNotCompletable       = errors.New("only confirmed bookings can be completed")
)

type ContactDetails struct {
	FullName     string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 *string
	Town         string
	State        string
	Postcode     string
	Country      string
}

type Extras struct {
	RoomOption  RoomOption
	AddTransfer bool
	AddNights   bool
	FlightHelp  bool
	Donation    bool
}

type PaymentInfo struct {
	Method        *PaymentMethod
	Status        PaymentStatus
	Amount        *float64
	TransactionID *string
	PaidAt        *time.Time
}

type Booking struct {
	id           uuid.UUID
	userID       uuid.UUID
	dealID       uuid.UUID
	dateOptionID uuid.UUID
	contact      ContactDetails
	travellers   int32
	extras       Extras
	payment      PaymentInfo
	status       Status
	canceledAt   *time.Time
	createdAt    time.Time
}

func NewBooking(
	userID, dealID, dateOptionID uuid.UUID,
	contact ContactDetails,
	travellers int32,
	extras Extras,
	now time.Time,
) (*Booking, error) {
	if travellers < 1 {
		return nil, ErrInvalidTravellers
	}
	if !extras.RoomOption.IsValid() {
		return nil, ErrInvalidRoomOption
	}

	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		dealID:       dealID,
		dateOptionID: dateOptionID,
		contact:      contact,
		travellers:   travellers,
		extras:       extras,
		payment:      PaymentInfo{Status: PaymentStatusPending},
		status:       StatusPending,
		createdAt:    now,
	}, nil
}

func ReconstructBooking(
	id, userID, dealID, dateOptionID uuid.UUID,
	contact ContactDetails,
	travellers int32,
	extras Extras,
	payment PaymentInfo,
	status Status,
	canceledAt *time.Time,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		dealID:       dealID,
		dateOptionID: dateOptionID,
		contact:      contact,
		travellers:   travellers,
		extras:       extras,
		payment:      payment,
		status:       status,
		canceledAt:   canceledAt,
		createdAt:    createdAt,
	}
}

func (b *Booking) CanBeCanceled() bool {
	return !b.status.IsTerminal()
}

// Cancel is a one-way transition; the caller is responsible for refunding
// the date option's capacity in the same unit of work.
func (b *Booking) Cancel(now time.Time) error {
	if !b.CanBeCanceled() {
		return ErrNotCancelable
	}
	b.status = StatusCanceled
	b.canceledAt = &now
	return nil
}

// ConfirmPayment records the payment and moves the booking to confirmed.
// Calling it again on a confirmed booking re-applies the same mutation;
// terminal bookings are rejected so nothing leaves canceled or completed.
func (b *Booking) ConfirmPayment(method PaymentMethod, amount float64, transactionID string, now time.Time) error {
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	if b.status.IsTerminal() {
		return ErrNotConfirmable
	}
	b.payment = PaymentInfo{
		Method:        &method,
		Status:        PaymentStatusPaid,
		Amount:        &amount,
		TransactionID: &transactionID,
		PaidAt:        &now,
	}
	b.status = StatusConfirmed
	return nil
}

// Complete marks the trip as taken. Completion happens manually after the
// travel dates pass.
func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrNotCompletable
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) DealID() uuid.UUID       { return b.dealID }
func (b *Booking) DateOptionID() uuid.UUID { return b.dateOptionID }
func (b *Booking) Contact() ContactDetails { return b.contact }
func (b *Booking) Travellers() int32       { return b.travellers }
func (b *Booking) Extras() Extras          { return b.extras }
func (b *Booking) Payment() PaymentInfo    { return b.payment }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CanceledAt() *time.Time  { return b.canceledAt }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
