//go:build unit

package deal_test

import (
	"testing"
	"time"

	"golden-travel/internal/domain/deal"
	"golden-travel/internal/pkg/ptr"
	"golden-travel/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateOption(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		opt, err := builder.NewDateOptionBuilder().Build()
		require.NoError(t, err)
		require.NotNil(t, opt)
		assert.True(t, opt.HasCapacityFor(10))
		assert.False(t, opt.HasCapacityFor(11))
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.EndDate = b.StartDate.AddDate(0, 0, -1)
		}).Build()
		assert.ErrorIs(t, err, deal.ErrInvalidPeriod)
	})

	t.Run("single day trip is allowed", func(t *testing.T) {
		_, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.EndDate = b.StartDate
		}).Build()
		assert.NoError(t, err)
	})

	t.Run("negative capacity is rejected", func(t *testing.T) {
		_, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.Capacity = -1
		}).Build()
		assert.ErrorIs(t, err, deal.ErrNegativeCapacity)
	})

	t.Run("discounted price above original is rejected", func(t *testing.T) {
		_, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("800")
			b.DiscountedPrice = ptr.To("1000")
		}).Build()
		assert.ErrorIs(t, err, deal.ErrPriceInversion)
	})

	t.Run("derives percent from price pair", func(t *testing.T) {
		opt, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("€1000")
			b.DiscountedPrice = ptr.To("€800")
		}).Build()
		require.NoError(t, err)
		require.NotNil(t, opt.DiscountPercent())
		assert.Equal(t, "20%", *opt.DiscountPercent())
	})

	t.Run("existing percent is never overwritten", func(t *testing.T) {
		opt, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
			b.DiscountedPrice = ptr.To("800")
			b.DiscountPercent = ptr.To("15%")
		}).Build()
		require.NoError(t, err)
		assert.Equal(t, "15%", *opt.DiscountPercent())
	})

	t.Run("equal prices derive nothing", func(t *testing.T) {
		opt, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
			b.DiscountedPrice = ptr.To("1000")
		}).Build()
		require.NoError(t, err)
		assert.Nil(t, opt.DiscountPercent())
	})

	t.Run("unparseable prices derive nothing", func(t *testing.T) {
		opt, err := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("on request")
			b.DiscountedPrice = ptr.To("800")
		}).Build()
		require.NoError(t, err)
		assert.Nil(t, opt.DiscountPercent())
	})
}

func TestReconstructDateOption(t *testing.T) {
	t.Run("no derivation on reload", func(t *testing.T) {
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
			b.DiscountedPrice = ptr.To("800")
		}).BuildStored()
		assert.Nil(t, opt.DiscountPercent())
	})

	t.Run("accepts stored data as-is", func(t *testing.T) {
		start := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.StartDate = start
			b.EndDate = start.AddDate(0, 0, 10)
			b.DiscountPercent = ptr.To("12%")
		}).BuildStored()
		assert.Equal(t, start, opt.StartDate())
		assert.Equal(t, "12%", *opt.DiscountPercent())
	})
}
