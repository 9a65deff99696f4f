package cart

import (
	"errors"

	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/samber/lo"
)

var (
	// ErrEmptySelection is returned when no selectable variant was selected.
	ErrEmptySelection = errors.New("no variant selected")
	// ErrSelectionMismatch is returned when selection doesn't match variants.
	ErrSelectionMismatch = errors.New("selection length doesn't match variants")
)

// Storefront builds shop cart URLs.
type Storefront interface {
	CartURL(variantIDs []int64) string
	StorefrontCartURL(variantIDs []int64) string
}

// Builder builds direct cart links from selected variants.
type Builder struct {
	storefront Storefront
}

// NewBuilder returns new Builder.
func NewBuilder(storefront Storefront) *Builder {
	return &Builder{storefront: storefront}
}

// Build returns cart link for variant ids in provided order, each with quantity 1.
// It returns false when there are no ids and the link should be hidden.
func (b *Builder) Build(ids []int64) (*models.CartLink, bool) {
	if len(ids) == 0 {
		return nil, false
	}

	return &models.CartLink{
		URL:           b.storefront.CartURL(ids),
		StorefrontURL: b.storefront.StorefrontCartURL(ids),
		VariantIDs:    ids,
	}, true
}

// Combine builds regular and pre-order cart links from variants flagged in selection.
// Unavailable variants are never added to cart.
func (b *Builder) Combine(variants []models.Variant, selection []bool) (*models.CartLinks, error) {
	if len(variants) != len(selection) {
		return nil, ErrSelectionMismatch
	}

	selected := lo.Filter(variants, func(v models.Variant, ix int) bool {
		return selection[ix] && v.IsAvailable
	})

	return b.combine(selected)
}

// CombineIDs builds cart links from variants with selected ids.
// Links follow order of variants, not order of ids.
func (b *Builder) CombineIDs(variants []models.Variant, ids []int64) (*models.CartLinks, error) {
	return b.Combine(variants, lo.Map(variants, func(v models.Variant, _ int) bool {
		return lo.Contains(ids, v.ID)
	}))
}

func (b *Builder) combine(selected []models.Variant) (*models.CartLinks, error) {
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	regular := lo.Filter(selected, func(v models.Variant, _ int) bool { return !v.IsPreorder })
	preorder := lo.Filter(selected, func(v models.Variant, _ int) bool { return v.IsPreorder })

	links := &models.CartLinks{}
	links.Regular, _ = b.Build(ids(regular))
	links.Preorder, _ = b.Build(ids(preorder))

	return links, nil
}

func ids(variants []models.Variant) []int64 {
	return lo.Map(variants, func(v models.Variant, _ int) int64 { return v.ID })
}
