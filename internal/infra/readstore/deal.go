package readstore

import (
	"context"
	"errors"
	"time"

	"golden-travel/internal/domain/deal"
	"golden-travel/internal/infra"
	"golden-travel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type dateOptionRow struct {
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

func (r dateOptionRow) toEntity() *deal.DateOption {
	return deal.ReconstructDateOption(
		r.id, r.dealID, r.startDate, r.endDate,
		r.language, r.guaranteed, r.rooms,
		r.originalPrice, r.discountedPrice, r.discountPercent,
		r.capacity,
	)
}

type DealReadStore struct {
	db infra.DBTX
}

func NewDealReadStore(db infra.DBTX) *DealReadStore {
	return &DealReadStore{db: db}
}

var _ queries.DealReadStore = (*DealReadStore)(nil)

const findDealByIDSQL = `
SELECT d.id, d.title, d.slug, d.discount_percent,
       c.id, c.name, c.discount_percent
FROM deals d
LEFT JOIN deal_categories c ON c.id = d.category_id
WHERE d.id = $1`

func (r *DealReadStore) FindByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	var (
		dealID          uuid.UUID
		title           string
		slug            string
		discountPercent *string
		categoryID      *uuid.UUID
		categoryName    *string
		categoryPercent *string
	)
	err := r.db.QueryRow(ctx, findDealByIDSQL, id).Scan(
		&dealID, &title, &slug, &discountPercent,
		&categoryID, &categoryName, &categoryPercent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal by ID", err)
	}

	var category *deal.Category
	if categoryID != nil {
		name := ""
		if categoryName != nil {
			name = *categoryName
		}
		category = deal.NewCategory(*categoryID, name, categoryPercent)
	}
	return deal.NewDeal(dealID, title, slug, category, discountPercent), nil
}

const findDateOptionsByDealSQL = `
SELECT id, deal_id, start_date, end_date, language, guaranteed, rooms,
       original_price, discounted_price, discount_percent, capacity
FROM date_options
WHERE deal_id = $1
ORDER BY start_date, id`

func (r *DealReadStore) FindDateOptionsByDealID(ctx context.Context, dealID uuid.UUID) ([]*deal.DateOption, error) {
	rows, err := r.db.Query(ctx, findDateOptionsByDealSQL, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list date options", err)
	}
	defer rows.Close()

	var options []*deal.DateOption
	for rows.Next() {
		var row dateOptionRow
		if err := rows.Scan(
			&row.id, &row.dealID, &row.startDate, &row.endDate,
			&row.language, &row.guaranteed, &row.rooms,
			&row.originalPrice, &row.discountedPrice, &row.discountPercent, &row.capacity,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan date option row", err)
		}
		options = append(options, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate date option rows", err)
	}

	return options, nil
}
