package queries

import (
	"context"
	"time"

	"golden-travel/internal/domain/deal"
	"golden-travel/internal/infra"
	"golden-travel/internal/pkg/errs"

	"github.com/google/uuid"
)

type DateOptionView struct {
	ID              uuid.UUID `json:"id"`
	DealID          uuid.UUID `json:"deal_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Language        string    `json:"language"`
	Guaranteed      bool      `json:"guaranteed"`
	Rooms           string    `json:"rooms"`
	OriginalPrice   *string   `json:"original_price,omitempty"`
	DiscountedPrice *string   `json:"discounted_price,omitempty"`
	DiscountPercent *string   `json:"discount_percent,omitempty"`
	Capacity        int32     `json:"capacity"`

	// Outcome of the priority chain for this option.
	EffectivePercent *string  `json:"effective_percent,omitempty"`
	EffectivePrice   *float64 `json:"effective_price,omitempty"`
}

// BestDiscountView is the "best discount" badge shown on a deal listing.
type BestDiscountView struct {
	DateOptionID *uuid.UUID `json:"date_option_id,omitempty"`
	Percent      *string    `json:"percent,omitempty"`
	Price        *float64   `json:"discounted_price,omitempty"`
}

type DealQueries interface {
	ListDateOptions(ctx context.Context, dealID uuid.UUID) ([]*DateOptionView, error)
	BestDiscount(ctx context.Context, dealID uuid.UUID) (*BestDiscountView, error)
}

// DealReadStore returns domain entities so the resolver runs on the same
// types the rest of the domain uses.
type DealReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error)
	FindDateOptionsByDealID(ctx context.Context, dealID uuid.UUID) ([]*deal.DateOption, error)
}

type dealQueriesImpl struct {
	repo DealReadStore
}

func NewDealQueries(repo DealReadStore) DealQueries {
	return &dealQueriesImpl{repo: repo}
}

func (q *dealQueriesImpl) ListDateOptions(ctx context.Context, dealID uuid.UUID) ([]*DateOptionView, error) {
	dealEntity, options, err := q.load(ctx, dealID)
	if err != nil {
		return nil, err
	}

	views := make([]*DateOptionView, len(options))
	for i, opt := range options {
		views[i] = toDateOptionView(opt, dealEntity)
	}
	return views, nil
}

func (q *dealQueriesImpl) BestDiscount(ctx context.Context, dealID uuid.UUID) (*BestDiscountView, error) {
	dealEntity, options, err := q.load(ctx, dealID)
	if err != nil {
		return nil, err
	}

	bestOpt, best := deal.BestDiscount(options, dealEntity)
	view := &BestDiscountView{Percent: best.Percent, Price: best.Price}
	if bestOpt != nil {
		id := bestOpt.ID()
		view.DateOptionID = &id
	}
	return view, nil
}

func (q *dealQueriesImpl) load(ctx context.Context, dealID uuid.UUID) (*deal.Deal, []*deal.DateOption, error) {
	dealEntity, err := q.repo.FindByID(ctx, dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrDealNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	options, err := q.repo.FindDateOptionsByDealID(ctx, dealID)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return dealEntity, options, nil
}

func toDateOptionView(opt *deal.DateOption, dealEntity *deal.Deal) *DateOptionView {
	eff := deal.ResolveEffectiveDiscount(opt, dealEntity)
	return &DateOptionView{
		ID:               opt.ID(),
		DealID:           opt.DealID(),
		StartDate:        opt.StartDate(),
		EndDate:          opt.EndDate(),
		Language:         opt.Language(),
		Guaranteed:       opt.Guaranteed(),
		Rooms:            opt.Rooms(),
		OriginalPrice:    opt.OriginalPrice(),
		DiscountedPrice:  opt.DiscountedPrice(),
		DiscountPercent:  opt.DiscountPercent(),
		Capacity:         opt.Capacity(),
		EffectivePercent: eff.Percent,
		EffectivePrice:   eff.Price,
	}
}
