package listing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedURL is returned when URL is neither collection nor page URL.
	ErrUnsupportedURL = errors.New("url is neither collection nor page url")
	// ErrNoProducts is returned when listing was fetched, but it has no products.
	ErrNoProducts = errors.New("no products found")
	// ErrMissingSlug is returned when collection or page URL has empty slug.
	ErrMissingSlug = errors.New("listing slug is empty")
)

// ListingFetchError is returned when listing can't be fetched or decoded.
type ListingFetchError struct {
	URL string
	Err error
}

func (e *ListingFetchError) Error() string {
	return fmt.Sprintf("can't get listing %s: %s", e.URL, e.Err)
}

func (e *ListingFetchError) Unwrap() error {
	return e.Err
}
