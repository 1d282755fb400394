package deal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod    = errors.New("end date must not be before start date")
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrPriceInversion   = errors.New("discounted price cannot exceed original price")
)

// DateOption is a bookable date range for a deal with its own price and
// remaining capacity.
type DateOption struct {
	id              uuid.UUID
	dealID          uuid.UUID
	startDate       time.Time
	endDate         time.Time
	language        string
	guaranteed      bool
	rooms           string
	originalPrice   *string
	discountedPrice *string
	discountPercent *string
	capacity        int32
}

func NewDateOption(
	id, dealID uuid.UUID,
	startDate, endDate time.Time,
	language string,
	guaranteed bool,
	rooms string,
	originalPrice, discountedPrice, discountPercent *string,
	capacity int32,
) (*DateOption, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidPeriod
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	d := &DateOption{
		id:              id,
		dealID:          dealID,
		startDate:       startDate,
		endDate:         endDate,
		language:        language,
		guaranteed:      guaranteed,
		rooms:           rooms,
		originalPrice:   originalPrice,
		discountedPrice: discountedPrice,
		discountPercent: normalizePercent(discountPercent),
		capacity:        capacity,
	}

	original, okOriginal := ParsePrice(originalPrice)
	discounted, okDiscounted := ParsePrice(discountedPrice)
	if okOriginal && okDiscounted && discounted > original {
		return nil, ErrPriceInversion
	}

	// An explicit percent is trusted as given; otherwise derive it from the
	// price pair so the read-time chain is the only discount source.
	// Equal prices count as "no discount".
	if d.discountPercent == nil && okOriginal && okDiscounted && original > 0 && discounted < original {
		p := derivePercent(original, discounted)
		d.discountPercent = &p
	}

	return d, nil
}

// ReconstructDateOption rebuilds a persisted row without re-deriving
// anything; derivation already happened when the option was created.
func ReconstructDateOption(
	id, dealID uuid.UUID,
	startDate, endDate time.Time,
	language string,
	guaranteed bool,
	rooms string,
	originalPrice, discountedPrice, discountPercent *string,
	capacity int32,
) *DateOption {
	return &DateOption{
		id:              id,
		dealID:          dealID,
		startDate:       startDate,
		endDate:         endDate,
		language:        language,
		guaranteed:      guaranteed,
		rooms:           rooms,
		originalPrice:   originalPrice,
		discountedPrice: discountedPrice,
		discountPercent: normalizePercent(discountPercent),
		capacity:        capacity,
	}
}

func (d *DateOption) ID() uuid.UUID            { return d.id }
func (d *DateOption) DealID() uuid.UUID        { return d.dealID }
func (d *DateOption) StartDate() time.Time     { return d.startDate }
func (d *DateOption) EndDate() time.Time       { return d.endDate }
func (d *DateOption) Language() string         { return d.language }
func (d *DateOption) Guaranteed() bool         { return d.guaranteed }
func (d *DateOption) Rooms() string            { return d.rooms }
func (d *DateOption) OriginalPrice() *string   { return d.originalPrice }
func (d *DateOption) DiscountedPrice() *string { return d.discountedPrice }
func (d *DateOption) DiscountPercent() *string { return d.discountPercent }
func (d *DateOption) Capacity() int32          { return d.capacity }

func (d *DateOption) HasCapacityFor(travellers int32) bool {
	return travellers <= d.capacity
}
