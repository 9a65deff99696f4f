package storefront

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is base URL of the supported shop.
	DefaultBaseURL = "https://chiikawamarket.jp"
	// CollectionLimit is the maximum number of products requested from collection listing.
	CollectionLimit = 250
)

// Storefront builds URLs following the shop's fixed URL conventions.
type Storefront struct {
	baseURL string
}

// New returns new Storefront for shop at baseURL.
func New(baseURL string) (*Storefront, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("can't parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	return &Storefront{baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// BaseURL returns shop base URL without trailing slash.
func (s *Storefront) BaseURL() string {
	return s.baseURL
}

// CollectionProductsURL returns collection listing JSON endpoint for collection slug.
func (s *Storefront) CollectionProductsURL(slug string) string {
	return fmt.Sprintf("%s/collections/%s/products.json?limit=%d", s.baseURL, escapeSegment(slug), CollectionLimit)
}

// PageURL returns campaign page URL for page slug.
func (s *Storefront) PageURL(slug string) string {
	return fmt.Sprintf("%s/pages/%s", s.baseURL, escapeSegment(slug))
}

// ProductURL returns product JSON endpoint for product handle.
func (s *Storefront) ProductURL(handle string) string {
	return fmt.Sprintf("%s/products/%s.js", s.baseURL, escapeSegment(handle))
}

// CartURL returns direct cart URL with quantity 1 of every variant, in provided order.
func (s *Storefront) CartURL(variantIDs []int64) string {
	items := make([]string, 0, len(variantIDs))
	for _, id := range variantIDs {
		items = append(items, strconv.FormatInt(id, 10)+":1")
	}

	return s.baseURL + "/cart/" + strings.Join(items, ",")
}

// StorefrontCartURL returns cart URL flavour which opens the cart on the storefront.
func (s *Storefront) StorefrontCartURL(variantIDs []int64) string {
	return s.CartURL(variantIDs) + "?storefront=true"
}

// escapeSegment escapes path segment which may already be percent-encoded, e.g. copied from address bar.
func escapeSegment(segment string) string {
	unescaped, err := url.PathUnescape(segment)
	if err != nil {
		unescaped = segment
	}
	return url.PathEscape(unescaped)
}
