package variant

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MichalMitros/cartlinker/internal/decoder"
	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go

const (
	defaultTitle = "Default Title"
	preorderJA   = "予約"
	preorderEN   = "preorder"
)

// Fetcher fetches shop JSON documents.
type Fetcher interface {
	FetchJSON(context.Context, string) (io.ReadCloser, error)
}

// Decoder decodes product JSON.
type Decoder interface {
	DecodeProduct(io.Reader) (*decoder.Product, error)
}

// Storefront builds shop endpoint URLs.
type Storefront interface {
	ProductURL(handle string) string
}

// Resolver resolves product handles into purchasable variants.
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

// Resolve fetches product by handle and returns its variants.
// Failures don't return error, they are reported in Resolution.Error as VariantParseError.
func (r *Resolver) Resolve(ctx context.Context, handle string) models.Resolution {
	variants, err := r.resolve(ctx, handle)
	if err != nil {
		return models.Resolution{
			Handle: handle,
			Error:  &VariantParseError{Handle: handle, Err: err},
		}
	}

	return models.Resolution{
		Handle:   handle,
		Variants: variants,
	}
}

// ResolveAll resolves all handles concurrently and returns resolutions in order of handles.
// Failure of one handle doesn't affect the others.
func (r *Resolver) ResolveAll(ctx context.Context, handles []string) []models.Resolution {
	resolutions := make([]models.Resolution, len(handles))

	var eg errgroup.Group
	for ix := range handles {
		eg.Go(func() error {
			resolutions[ix] = r.Resolve(ctx, handles[ix])
			return nil
		})
	}
	_ = eg.Wait()

	return resolutions
}

func (r *Resolver) resolve(ctx context.Context, handle string) ([]models.Variant, error) {
	body, err := r.fetcher.FetchJSON(ctx, r.storefront.ProductURL(handle))
	if err != nil {
		return nil, fmt.Errorf("can't fetch product: %w", err)
	}
	defer body.Close()

	product, err := r.decoder.DecodeProduct(body)
	if err != nil {
		return nil, fmt.Errorf("can't decode product: %w", err)
	}

	return ToVariants(product), nil
}

// ToVariants converts decoded product into variants.
func ToVariants(product *decoder.Product) []models.Variant {
	title := lo.FromPtr(product.Title)
	isPreorder := IsPreorder(title, lo.FromPtr(product.Tags))

	return lo.Map(lo.FromPtr(product.Variants), func(v decoder.Variant, _ int) models.Variant {
		variant := models.Variant{
			ID:           lo.FromPtr(v.ID),
			ProductTitle: title,
			Title:        variantTitle(title, v.Title),
			IsPreorder:   isPreorder,
			IsAvailable:  v.Available,
		}
		if v.Price != nil {
			// shop reports prices in minor currency units
			variant.UnitPrice = lo.ToPtr(v.Price.Shift(-2))
		}
		return variant
	})
}

// IsPreorder reports whether product is sold as pre-order.
// Matching is case-sensitive for both the Japanese and the English marker.
func IsPreorder(title string, tags []string) bool {
	return lo.SomeBy(tags, func(tag string) bool {
		return strings.Contains(tag, preorderJA) || strings.Contains(tag, preorderEN)
	}) || strings.Contains(title, preorderJA)
}

func variantTitle(productTitle, title string) string {
	if title == defaultTitle {
		return productTitle
	}
	return productTitle + " - " + title
}
