package listing

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MichalMitros/cartlinker/internal/handle"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go

const (
	collectionsSegment = "/collections/"
	pagesSegment       = "/pages/"
)

// Fetcher fetches shop documents.
type Fetcher interface {
	FetchJSON(context.Context, string) (io.ReadCloser, error)
	FetchHTML(context.Context, string) (io.ReadCloser, error)
}

// Decoder decodes listings into product handles.
type Decoder interface {
	DecodeCollection(io.Reader) ([]string, error)
	DecodePage(io.Reader) ([]string, error)
}

// Storefront builds shop endpoint URLs.
type Storefront interface {
	CollectionProductsURL(slug string) string
	PageURL(slug string) string
}

// Strategy is listing strategy chosen for URL.
type Strategy string

const (
	// StrategyNone is returned for URLs which are neither collection nor page.
	StrategyNone Strategy = ""
	// StrategyCollection reads the collection's structured JSON listing.
	StrategyCollection Strategy = "collection"
	// StrategyPage scrapes product links from HTML page.
	StrategyPage Strategy = "page"
)

// Resolver resolves collection and campaign page URLs into product handles.
type Resolver struct {
	fetcher    Fetcher
	decoder    Decoder
	storefront Storefront
}

// NewResolver returns new Resolver.
func NewResolver(fetcher Fetcher, decoder Decoder, storefront Storefront) *Resolver {
	return &Resolver{
		fetcher:    fetcher,
		decoder:    decoder,
		storefront: storefront,
	}
}

// StrategyFor returns listing strategy for URL. Collection wins when URL matches both.
func StrategyFor(url string) Strategy {
	switch {
	case strings.Contains(url, collectionsSegment):
		return StrategyCollection
	case strings.Contains(url, pagesSegment):
		return StrategyPage
	default:
		return StrategyNone
	}
}

// Resolve returns handles of products listed under url.
// It returns ErrUnsupportedURL for URLs which are neither collection nor page,
// ErrNoProducts when listing is empty and ListingFetchError when listing can't be fetched or decoded.
func (r *Resolver) Resolve(ctx context.Context, url string) ([]string, error) {
	var (
		handles []string
		err     error
	)

	switch StrategyFor(url) {
	case StrategyCollection:
		handles, err = r.resolveCollection(ctx, url)
	case StrategyPage:
		handles, err = r.resolvePage(ctx, url)
	default:
		return nil, ErrUnsupportedURL
	}

	if err != nil {
		return nil, &ListingFetchError{URL: url, Err: err}
	}

	if len(handles) == 0 {
		return nil, ErrNoProducts
	}

	return handles, nil
}

func (r *Resolver) resolveCollection(ctx context.Context, url string) ([]string, error) {
	slug, err := slugAfter(url, collectionsSegment)
	if err != nil {
		return nil, err
	}

	body, err := r.fetcher.FetchJSON(ctx, r.storefront.CollectionProductsURL(slug))
	if err != nil {
		return nil, fmt.Errorf("can't fetch collection %q: %w", slug, err)
	}
	defer body.Close()

	handles, err := r.decoder.DecodeCollection(body)
	if err != nil {
		return nil, fmt.Errorf("can't decode collection %q: %w", slug, err)
	}

	return handles, nil
}

// resolvePage fetches the page from the shop host only, whatever host the caller's URL points to.
func (r *Resolver) resolvePage(ctx context.Context, url string) ([]string, error) {
	slug, err := slugAfter(url, pagesSegment)
	if err != nil {
		return nil, err
	}

	body, err := r.fetcher.FetchHTML(ctx, r.storefront.PageURL(slug))
	if err != nil {
		return nil, fmt.Errorf("can't fetch page %q: %w", slug, err)
	}
	defer body.Close()

	handles, err := r.decoder.DecodePage(body)
	if err != nil {
		return nil, fmt.Errorf("can't decode page %q: %w", slug, err)
	}

	return handles, nil
}

// slugAfter returns path segment following segment, e.g. /collections/{slug}/products/{handle}.
func slugAfter(url, segment string) (string, error) {
	_, rest, _ := strings.Cut(url, segment)
	slug, _, _ := strings.Cut(handle.TrimSuffix(rest), "/")
	if slug == "" {
		return "", ErrMissingSlug
	}

	return slug, nil
}
