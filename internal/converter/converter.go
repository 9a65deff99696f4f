package converter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/cartlinker/internal/handle"
	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name ListingResolver --filename listing_resolver.go
//go:generate mockery --name VariantResolver --filename variant_resolver.go
//go:generate mockery --name CartBuilder --filename cart_builder.go
//go:generate mockery --name Recorder --filename recorder.go

// ErrNoHandles is returned when convert input doesn't contain any product handle.
var ErrNoHandles = errors.New("no product handles found")

// ListingResolver resolves listing URLs into product handles.
type ListingResolver interface {
	Resolve(ctx context.Context, url string) ([]string, error)
}

// VariantResolver resolves product handles into variants.
type VariantResolver interface {
	ResolveAll(ctx context.Context, handles []string) []models.Resolution
}

// CartBuilder builds cart links from selected variants.
type CartBuilder interface {
	CombineIDs(variants []models.Variant, ids []int64) (*models.CartLinks, error)
}

// Recorder records conversion statistics.
type Recorder interface {
	ObserveConversion(variants, failures int, duration time.Duration)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Converter.
type Option func(c *Converter)

// Converter turns listings and handle lists into variants and variants into cart links.
type Converter struct {
	listing  ListingResolver
	variants VariantResolver
	cart     CartBuilder
	logger   *zerolog.Logger
	clock    Clock
	recorder Recorder
}

// NewConverter returns new Converter.
func NewConverter(
	listing ListingResolver,
	variants VariantResolver,
	cart CartBuilder,
	logger *zerolog.Logger,
	ops ...Option,
) *Converter {
	conv := &Converter{
		listing:  listing,
		variants: variants,
		cart:     cart,
		logger:   logger,
		clock:    systemClock{},
	}

	for _, op := range ops {
		op(conv)
	}

	return conv
}

// Scan returns handles of products listed on collection or campaign page URL.
func (c *Converter) Scan(ctx context.Context, url string) ([]string, error) {
	handles, err := c.listing.Resolve(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("can't scan listing: %w", err)
	}

	c.logger.Debug().
		Str("url", url).
		Int("handles", len(handles)).
		Msg("listing scanned")

	return handles, nil
}

// Convert parses handles from input and resolves their variants.
// Handles which can't be resolved are reported as failures, they don't fail the conversion.
func (c *Converter) Convert(ctx context.Context, input string) (*models.Conversion, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("can't create conversion ID: %w", err)
	}

	handles, dropped := handle.ParseReport(input)
	if len(dropped) > 0 {
		c.logger.Debug().
			Str("conversionId", id.String()).
			Strs("dropped", dropped).
			Msg("unrecognized input lines dropped")
	}
	if len(handles) == 0 {
		return nil, ErrNoHandles
	}

	conversion := &models.Conversion{
		ID:        id,
		StartedAt: c.clock.Now(),
	}

	c.logger.Debug().
		Str("conversionId", id.String()).
		Int("handles", len(handles)).
		Msg("conversion started")

	resolutions := c.variants.ResolveAll(ctx, handles)

	conversion.Variants = lo.FlatMap(resolutions, func(r models.Resolution, _ int) []models.Variant {
		return r.Variants
	})
	conversion.Failures = lo.FilterMap(resolutions, func(r models.Resolution, _ int) (models.Failure, bool) {
		if r.Error == nil {
			return models.Failure{}, false
		}
		return models.Failure{Handle: r.Handle, Reason: r.Error.Error()}, true
	})

	c.finishConversion(conversion)

	return conversion, nil
}

// Combine builds regular and pre-order cart links from variants with selected ids.
func (c *Converter) Combine(variants []models.Variant, selectedIDs []int64) (*models.CartLinks, error) {
	links, err := c.cart.CombineIDs(variants, selectedIDs)
	if err != nil {
		return nil, fmt.Errorf("can't combine cart links: %w", err)
	}

	return links, nil
}

func (c *Converter) finishConversion(conversion *models.Conversion) {
	conversion.FinishedAt = c.clock.Now()

	for _, failure := range conversion.Failures {
		c.logger.Warn().
			Str("conversionId", conversion.ID.String()).
			Str("handle", failure.Handle).
			Str("reason", failure.Reason).
			Msg("can't resolve handle")
	}

	if c.recorder != nil {
		c.recorder.ObserveConversion(
			len(conversion.Variants),
			len(conversion.Failures),
			conversion.FinishedAt.Sub(conversion.StartedAt),
		)
	}

	c.logger.Debug().
		Str("conversionId", conversion.ID.String()).
		Int("variants", len(conversion.Variants)).
		Int("failures", len(conversion.Failures)).
		Msg("conversion finished")
}

// WithClock sets Converter's custom Clock.
func WithClock(clock Clock) Option {
	return func(c *Converter) {
		c.clock = clock
	}
}

// WithRecorder sets Recorder which observes every finished conversion.
func WithRecorder(recorder Recorder) Option {
	return func(c *Converter) {
		c.recorder = recorder
	}
}
