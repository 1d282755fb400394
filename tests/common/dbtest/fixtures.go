//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCategory(t *testing.T, db DBLike, name string, discountPercent *string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO deal_categories (id, name, discount_percent) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		categoryID, name, discountPercent)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM deal_categories WHERE name = $1", name).Scan(&categoryID)
	}

	return categoryID
}

func CreateTestDeal(t *testing.T, db DBLike, title string, categoryID *uuid.UUID, discountPercent *string) uuid.UUID {
	t.Helper()

	dealID := uuid.New()
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-")) + "-" + dealID.String()[:8]
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO deals (id, title, slug, category_id, discount_percent) VALUES ($1, $2, $3, $4, $5)",
		dealID, title, slug, categoryID, discountPercent)
	require.NoError(t, err)

	return dealID
}

type DateOptionFixture struct {
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

func CreateTestDateOption(t *testing.T, db DBLike, f DateOptionFixture) uuid.UUID {
	t.Helper()

	if f.Language == "" {
		f.Language = "English"
	}
	if f.StartDate.IsZero() {
		f.StartDate = time.Now().AddDate(0, 1, 0).Truncate(time.Hour)
	}
	if f.EndDate.IsZero() {
		f.EndDate = f.StartDate.AddDate(0, 0, 7)
	}

	optionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO date_options
		    (id, deal_id, start_date, end_date, language, guaranteed, rooms,
		     original_price, discounted_price, discount_percent, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		optionID, f.DealID, f.StartDate, f.EndDate, f.Language, f.Guaranteed, f.Rooms,
		f.OriginalPrice, f.DiscountedPrice, f.DiscountPercent, f.Capacity)
	require.NoError(t, err)

	return optionID
}

func GetDateOptionCapacity(t *testing.T, db DBLike, id uuid.UUID) int32 {
	t.Helper()

	var capacity int32
	err := db.QueryRow(context.Background(),
		"SELECT capacity FROM date_options WHERE id = $1", id).Scan(&capacity)
	require.NoError(t, err)

	return capacity
}

func GetBookingStatus(t *testing.T, db DBLike, id uuid.UUID) (string, string) {
	t.Helper()

	var status, paymentStatus string
	err := db.QueryRow(context.Background(),
		"SELECT status, payment_status FROM bookings WHERE id = $1", id).Scan(&status, &paymentStatus)
	require.NoError(t, err)

	return status, paymentStatus
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO deal_categories (id, name, discount_percent) VALUES
		    (gen_random_uuid(), 'Last Minute', '10%'),
		    (gen_random_uuid(), 'Standard', NULL)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
