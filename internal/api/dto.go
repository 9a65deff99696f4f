package api

import (
	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type scanRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type scanResponse struct {
	Handles []string `json:"handles"`
}

type convertRequest struct {
	Input string `json:"input" validate:"required"`
}

type convertResponse struct {
	ID       uuid.UUID `json:"id"`
	Variants []variant `json:"variants"`
	Failures []failure `json:"failures"`
	// DefaultSelection lists ids of all available variants.
	DefaultSelection []int64 `json:"defaultSelection"`
}

type combineRequest struct {
	Variants    []variant `json:"variants" validate:"required,min=1,dive"`
	SelectedIDs []int64   `json:"selectedIds" validate:"required,min=1"`
}

type combineResponse struct {
	Regular  *cartLink `json:"regular,omitempty"`
	Preorder *cartLink `json:"preorder,omitempty"`
}

type variant struct {
	ID           int64            `json:"id" validate:"required"`
	ProductTitle string           `json:"productTitle"`
	Title        string           `json:"title" validate:"required"`
	IsPreorder   bool             `json:"isPreorder"`
	IsAvailable  bool             `json:"isAvailable"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
}

type failure struct {
	Handle string `json:"handle"`
	Reason string `json:"reason"`
}

type cartLink struct {
	URL           string  `json:"url"`
	StorefrontURL string  `json:"storefrontUrl"`
	VariantIDs    []int64 `json:"variantIds"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func toConvertResponse(c *models.Conversion) convertResponse {
	return convertResponse{
		ID: c.ID,
		Variants: lo.Map(c.Variants, func(v models.Variant, _ int) variant {
			return variant(v)
		}),
		Failures: lo.Map(c.Failures, func(f models.Failure, _ int) failure {
			return failure(f)
		}),
		DefaultSelection: lo.FilterMap(c.Variants, func(v models.Variant, _ int) (int64, bool) {
			return v.ID, v.IsAvailable
		}),
	}
}

func toModelVariants(variants []variant) []models.Variant {
	return lo.Map(variants, func(v variant, _ int) models.Variant {
		return models.Variant(v)
	})
}

func toCombineResponse(links *models.CartLinks) combineResponse {
	return combineResponse{
		Regular:  toCartLink(links.Regular),
		Preorder: toCartLink(links.Preorder),
	}
}

func toCartLink(link *models.CartLink) *cartLink {
	if link == nil {
		return nil
	}
	return lo.ToPtr(cartLink(*link))
}
