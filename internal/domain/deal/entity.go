package deal

import (
	"strings"

	"github.com/google/uuid"
)

type Category struct {
	id              uuid.UUID
	name            string
	discountPercent *string
}

func NewCategory(id uuid.UUID, name string, discountPercent *string) *Category {
	return &Category{
		id:              id,
		name:            name,
		discountPercent: normalizePercent(discountPercent),
	}
}

func (c *Category) ID() uuid.UUID            { return c.id }
func (c *Category) Name() string             { return c.name }
func (c *Category) DiscountPercent() *string { return c.discountPercent }

type Deal struct {
	id              uuid.UUID
	title           string
	slug            string
	category        *Category
	discountPercent *string
}

func NewDeal(id uuid.UUID, title, slug string, category *Category, discountPercent *string) *Deal {
	return &Deal{
		id:              id,
		title:           title,
		slug:            slug,
		category:        category,
		discountPercent: normalizePercent(discountPercent),
	}
}

func (d *Deal) ID() uuid.UUID            { return d.id }
func (d *Deal) Title() string            { return d.title }
func (d *Deal) Slug() string             { return d.slug }
func (d *Deal) Category() *Category      { return d.category }
func (d *Deal) DiscountPercent() *string { return d.discountPercent }

// Blank percent strings behave like absent ones throughout the chain.
func normalizePercent(s *string) *string {
	if s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
