//go:build unit || e2e

package builder

import (
	"time"

	domdeal "golden-travel/internal/domain/deal"

	"github.com/google/uuid"
)

type DealBuilder struct {
	DealID          uuid.UUID
	Title           string
	Slug            string
	DealPercent     *string
	CategoryID      uuid.UUID
	CategoryName    string
	CategoryPercent *string
}

func NewDealBuilder() *DealBuilder {
	return &DealBuilder{
		DealID:       uuid.New(),
		Title:        "Highlights of Tuscany",
		Slug:         "highlights-of-tuscany",
		CategoryID:   uuid.New(),
		CategoryName: "Italy",
	}
}

func (d *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(d)
	return d
}

func (d *DealBuilder) Build() *domdeal.Deal {
	category := domdeal.NewCategory(d.CategoryID, d.CategoryName, d.CategoryPercent)
	return domdeal.NewDeal(d.DealID, d.Title, d.Slug, category, d.DealPercent)
}

func (d *DealBuilder) BuildWithoutCategory() *domdeal.Deal {
	return domdeal.NewDeal(d.DealID, d.Title, d.Slug, nil, d.DealPercent)
}

type DateOptionBuilder struct {
	ID              uuid.UUID
	DealID          uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Language        string
	Guaranteed      bool
	Rooms           string
	OriginalPrice   *string
	DiscountedPrice *string
	DiscountPercent *string
	Capacity        int32
}

func NewDateOptionBuilder() *DateOptionBuilder {
	start := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	return &DateOptionBuilder{
		ID:         uuid.New(),
		DealID:     uuid.New(),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 7),
		Language:   "English",
		Guaranteed: true,
		Rooms:      "twin",
		Capacity:   10,
	}
}

func (d *DateOptionBuilder) With(mutate func(*DateOptionBuilder)) *DateOptionBuilder {
	mutate(d)
	return d
}

// Build goes through creation-time validation and percent derivation.
func (d *DateOptionBuilder) Build() (*domdeal.DateOption, error) {
	return domdeal.NewDateOption(
		d.ID, d.DealID, d.StartDate, d.EndDate,
		d.Language, d.Guaranteed, d.Rooms,
		d.OriginalPrice, d.DiscountedPrice, d.DiscountPercent,
		d.Capacity,
	)
}

// BuildStored mirrors a row loaded from the database.
func (d *DateOptionBuilder) BuildStored() *domdeal.DateOption {
	return domdeal.ReconstructDateOption(
		d.ID, d.DealID, d.StartDate, d.EndDate,
		d.Language, d.Guaranteed, d.Rooms,
		d.OriginalPrice, d.DiscountedPrice, d.DiscountPercent,
		d.Capacity,
	)
}
