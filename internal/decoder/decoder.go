package decoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MichalMitros/cartlinker/internal/handle"
	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// productLinkSelector selects anchors linking to product pages.
const productLinkSelector = `a[href*="/products/"]`

// ErrUnexpectedShape is returned when decoded document doesn't have expected shape.
var ErrUnexpectedShape = errors.New("unexpected document shape")

// Decoder decodes shop documents into typed records.
type Decoder struct{}

// DecodeProduct decodes product JSON and validates its shape.
func (d Decoder) DecodeProduct(r io.Reader) (*Product, error) {
	var product Product
	if err := json.NewDecoder(r).Decode(&product); err != nil {
		return nil, fmt.Errorf("can't decode product json: %w", err)
	}

	if err := product.validate(); err != nil {
		return nil, err
	}

	return &product, nil
}

// DecodeCollection decodes collection listing JSON and returns handles of listed products in listing order.
func (d Decoder) DecodeCollection(r io.Reader) ([]string, error) {
	var collection Collection
	if err := json.NewDecoder(r).Decode(&collection); err != nil {
		return nil, fmt.Errorf("can't decode collection json: %w", err)
	}

	if err := collection.validate(); err != nil {
		return nil, err
	}

	return lo.Map(*collection.Products, func(p CollectionProduct, _ int) string {
		return p.Handle
	}), nil
}

// DecodePage parses HTML page and returns distinct handles of linked products in order of first appearance.
func (d Decoder) DecodePage(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("can't parse html page: %w", err)
	}

	handles := []string{}
	doc.Find(productLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if h, ok := handle.FromHref(href); ok {
			handles = append(handles, h)
		}
	})

	return lo.Uniq(handles), nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing %s", ErrUnexpectedShape, name)
}
