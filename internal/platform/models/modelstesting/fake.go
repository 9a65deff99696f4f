package modelstesting

import (
	"math/rand"

	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FakeVariant returns available, regular models.Variant with fake data.
func FakeVariant(ops ...func(v *models.Variant)) models.Variant {
	productTitle := faker.Word()
	variant := models.Variant{
		ID:           rand.Int63n(1_000_000_000_000) + 1,
		ProductTitle: productTitle,
		Title:        productTitle + " - " + faker.Word(),
		IsAvailable:  true,
		UnitPrice:    lo.ToPtr(decimal.NewFromInt(rand.Int63n(100_000)).Shift(-2)),
	}

	for _, op := range ops {
		op(&variant)
	}

	return variant
}

// FakeVariants returns n fake variants.
func FakeVariants(n int, ops ...func(v *models.Variant)) []models.Variant {
	variants := make([]models.Variant, 0, n)
	for range n {
		variants = append(variants, FakeVariant(ops...))
	}

	return variants
}

// Preorder marks fake variant as pre-order.
func Preorder(v *models.Variant) {
	v.IsPreorder = true
}

// Unavailable marks fake variant as sold out.
func Unavailable(v *models.Variant) {
	v.IsAvailable = false
}
