package response

import (
	"time"

	"golden-travel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DateOptionResponse struct {
	ID               uuid.UUID `json:"id"`
	DealID           uuid.UUID `json:"dealId"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Language         string    `json:"language"`
	Guaranteed       bool      `json:"guaranteed"`
	Rooms            string    `json:"rooms"`
	OriginalPrice    *string   `json:"originalPrice,omitempty"`
	DiscountedPrice  *string   `json:"discountedPrice,omitempty"`
	DiscountPercent  *string   `json:"discountPercent,omitempty"`
	Capacity         int32     `json:"capacity"`
	EffectivePercent *string   `json:"effectivePercent,omitempty"`
	EffectivePrice   *float64  `json:"effectivePrice,omitempty"`
}

type BestDiscountResponse struct {
	DateOptionID *uuid.UUID `json:"dateOptionId,omitempty"`
	Percent      *string    `json:"percent,omitempty"`
	Price        *float64   `json:"discountedPrice,omitempty"`
}

func FromDateOptionView(v *queries.DateOptionView) *DateOptionResponse {
	var resp DateOptionResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBestDiscountView(v *queries.BestDiscountView) *BestDiscountResponse {
	return &BestDiscountResponse{
		DateOptionID: v.DateOptionID,
		Percent:      v.Percent,
		Price:        v.Price,
	}
}
