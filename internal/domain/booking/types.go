package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// Terminal statuses admit no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodManual PaymentMethod = "manual"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodPayPal, PaymentMethodManual:
		return true
	default:
		return false
	}
}

type RoomOption string

const (
	RoomShared  RoomOption = "shared"
	RoomPrivate RoomOption = "private"
)

func (r RoomOption) String() string {
	return string(r)
}

func (r RoomOption) IsValid() bool {
	switch r {
	case RoomShared, RoomPrivate:
		return true
	default:
		return false
	}
}
