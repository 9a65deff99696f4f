package decoder

import (
	"github.com/shopspring/decimal"
)

// Product is model for product JSON served by the shop at /products/{handle}.js.
type Product struct {
	Title    *string    `json:"title"`
	Tags     *[]string  `json:"tags"`
	Variants *[]Variant `json:"variants"`
}

// Variant is model for product variants in product JSON.
type Variant struct {
	ID        *int64 `json:"id"`
	Title     string `json:"title"`
	Available bool   `json:"available"`
	// Price is in minor currency units.
	Price *decimal.Decimal `json:"price"`
}

// Collection is model for collection listing served at /collections/{slug}/products.json.
type Collection struct {
	Products *[]CollectionProduct `json:"products"`
}

// CollectionProduct is model for products in collection listing, only handle is used.
type CollectionProduct struct {
	Handle string `json:"handle"`
}

func (p *Product) validate() error {
	if p.Title == nil {
		return missingField("title")
	}
	if p.Tags == nil {
		return missingField("tags")
	}
	if p.Variants == nil {
		return missingField("variants")
	}
	for ix := range *p.Variants {
		if (*p.Variants)[ix].ID == nil {
			return missingField("variants.id")
		}
	}

	return nil
}

func (c *Collection) validate() error {
	if c.Products == nil {
		return missingField("products")
	}
	for ix := range *c.Products {
		if (*c.Products)[ix].Handle == "" {
			return missingField("products.handle")
		}
	}

	return nil
}
