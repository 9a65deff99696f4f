package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Resolution contains variants resolved for a single product handle with resolving error if there is any.
type Resolution struct {
	Handle   string
	Variants []Variant
	Error    error
}

// Variant is purchasable product variant model.
type Variant struct {
	ID           int64
	ProductTitle string
	// Title is display label, product title when variant has no distinguishing option.
	Title       string
	IsPreorder  bool
	IsAvailable bool
	UnitPrice   *decimal.Decimal
}

// Failure is a handle which couldn't be resolved.
type Failure struct {
	Handle string
	Reason string
}

// Conversion is result of a single convert pass.
type Conversion struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Variants   []Variant
	Failures   []Failure
}

// CartLink is direct cart URL built from selected variants.
type CartLink struct {
	URL           string
	StorefrontURL string
	VariantIDs    []int64
}

// CartLinks holds cart links for regular and pre-order variants.
// Nil link means there was nothing selected for that bucket.
type CartLinks struct {
	Regular  *CartLink
	Preorder *CartLink
}
