//go:build unit

package deal_test

import (
	"testing"

	"golden-travel/internal/domain/deal"
	"golden-travel/internal/pkg/ptr"
	"golden-travel/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEffectiveDiscount(t *testing.T) {
	t.Run("date percent wins over deal and category", func(t *testing.T) {
		dl := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.DealPercent = ptr.To("30%")
			b.CategoryPercent = ptr.To("40%")
		}).Build()
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
			b.DiscountPercent = ptr.To("15%")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, dl)
		require.NotNil(t, eff.Percent)
		require.NotNil(t, eff.Price)
		assert.Equal(t, "15%", *eff.Percent)
		assert.InDelta(t, 850, *eff.Price, 0.001)
	})

	t.Run("malformed date percent still wins and echoes raw string", func(t *testing.T) {
		dl := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.DealPercent = ptr.To("30%")
		}).Build()
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
			b.DiscountPercent = ptr.To("soon")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, dl)
		require.NotNil(t, eff.Percent)
		require.NotNil(t, eff.Price)
		assert.Equal(t, "soon", *eff.Percent)
		assert.InDelta(t, 1000, *eff.Price, 0.001)
	})

	t.Run("deal percent applies when date has none", func(t *testing.T) {
		dl := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.DealPercent = ptr.To("25%")
			b.CategoryPercent = ptr.To("40%")
		}).Build()
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("400")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, dl)
		require.NotNil(t, eff.Percent)
		assert.Equal(t, "25%", *eff.Percent)
		assert.InDelta(t, 300, *eff.Price, 0.001)
	})

	t.Run("zero deal percent falls through to category", func(t *testing.T) {
		dl := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.DealPercent = ptr.To("0%")
			b.CategoryPercent = ptr.To("10%")
		}).Build()
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("200")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, dl)
		require.NotNil(t, eff.Percent)
		assert.Equal(t, "10%", *eff.Percent)
		assert.InDelta(t, 180, *eff.Price, 0.001)
	})

	t.Run("no discount anywhere returns original price", func(t *testing.T) {
		dl := builder.NewDealBuilder().Build()
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("750")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, dl)
		assert.Nil(t, eff.Percent)
		require.NotNil(t, eff.Price)
		assert.InDelta(t, 750, *eff.Price, 0.001)
	})

	t.Run("unparseable original price yields neither percent nor price", func(t *testing.T) {
		dl := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.DealPercent = ptr.To("25%")
		}).Build()
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("on request")
			b.DiscountPercent = ptr.To("15%")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, dl)
		assert.Nil(t, eff.Percent)
		assert.Nil(t, eff.Price)
	})

	t.Run("missing original price yields neither percent nor price", func(t *testing.T) {
		opt := builder.NewDateOptionBuilder().BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, builder.NewDealBuilder().Build())
		assert.Nil(t, eff.Percent)
		assert.Nil(t, eff.Price)
	})

	t.Run("non-positive original price passes through without percent", func(t *testing.T) {
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("0")
			b.DiscountPercent = ptr.To("15%")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, builder.NewDealBuilder().Build())
		assert.Nil(t, eff.Percent)
		require.NotNil(t, eff.Price)
		assert.InDelta(t, 0, *eff.Price, 0.001)
	})

	t.Run("nil deal only consults the date option", func(t *testing.T) {
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("500")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, nil)
		assert.Nil(t, eff.Percent)
		require.NotNil(t, eff.Price)
		assert.InDelta(t, 500, *eff.Price, 0.001)
	})

	t.Run("blank percents behave like absent ones", func(t *testing.T) {
		dl := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
			b.DealPercent = ptr.To("   ")
			b.CategoryPercent = ptr.To("10%")
		}).Build()
		opt := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("100")
			b.DiscountPercent = ptr.To("")
		}).BuildStored()

		eff := deal.ResolveEffectiveDiscount(opt, dl)
		require.NotNil(t, eff.Percent)
		assert.Equal(t, "10%", *eff.Percent)
	})
}

func TestBestDiscount(t *testing.T) {
	dl := builder.NewDealBuilder().Build()

	optWith := func(percent string) *deal.DateOption {
		return builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
			b.DiscountPercent = ptr.To(percent)
		}).BuildStored()
	}

	t.Run("picks the highest percent", func(t *testing.T) {
		low := optWith("10%")
		high := optWith("35%")
		mid := optWith("20%")

		bestOpt, best := deal.BestDiscount([]*deal.DateOption{low, high, mid}, dl)
		require.NotNil(t, bestOpt)
		assert.Equal(t, high.ID(), bestOpt.ID())
		require.NotNil(t, best.Percent)
		assert.Equal(t, "35%", *best.Percent)
		assert.InDelta(t, 650, *best.Price, 0.001)
	})

	t.Run("ties go to the first option", func(t *testing.T) {
		first := optWith("20%")
		second := optWith("20%")

		bestOpt, _ := deal.BestDiscount([]*deal.DateOption{first, second}, dl)
		require.NotNil(t, bestOpt)
		assert.Equal(t, first.ID(), bestOpt.ID())
	})

	t.Run("options without discounts are skipped", func(t *testing.T) {
		plain := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
		}).BuildStored()
		discounted := optWith("5%")

		bestOpt, best := deal.BestDiscount([]*deal.DateOption{plain, discounted}, dl)
		require.NotNil(t, bestOpt)
		assert.Equal(t, discounted.ID(), bestOpt.ID())
		assert.Equal(t, "5%", *best.Percent)
	})

	t.Run("no discounted options returns nil", func(t *testing.T) {
		plain := builder.NewDateOptionBuilder().With(func(b *builder.DateOptionBuilder) {
			b.OriginalPrice = ptr.To("1000")
		}).BuildStored()

		bestOpt, best := deal.BestDiscount([]*deal.DateOption{plain}, dl)
		assert.Nil(t, bestOpt)
		assert.Nil(t, best.Percent)
		assert.Nil(t, best.Price)
	})
}
