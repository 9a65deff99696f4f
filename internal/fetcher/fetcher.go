package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// Kind is kind of fetched document.
type Kind string

const (
	// KindJSON is JSON document, served by the shop as application/json or javascript.
	KindJSON Kind = "json"
	// KindHTML is HTML page.
	KindHTML Kind = "html"
)

var (
	acceptHeaders = map[Kind]string{
		KindJSON: "application/json, text/javascript;q=0.9",
		KindHTML: "text/html, application/xhtml+xml;q=0.9",
	}
	supportedTypes = map[Kind][]string{
		KindJSON: {"application/json", "application/javascript", "text/javascript"},
		KindHTML: {"text/html", "application/xhtml+xml"},
	}
)

//go:generate mockery --name Observer --filename observer.go

// Observer observes finished requests.
type Observer interface {
	ObserveFetch(kind string, err error, duration time.Duration)
}

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// Fetcher builds http requests and fetches shop documents via http.
type Fetcher struct {
	client    *http.Client
	userAgent string
	observer  Observer
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string, ops ...Option) *Fetcher {
	f := &Fetcher{
		client:    client,
		userAgent: userAgent,
	}

	for _, op := range ops {
		op(f)
	}

	return f
}

// FetchJSON returns ReadCloser with JSON document fetched from provided url or error.
// The caller is responsible for closing returned ReadCloser.
func (f *Fetcher) FetchJSON(ctx context.Context, url string) (io.ReadCloser, error) {
	return f.fetch(ctx, url, KindJSON)
}

// FetchHTML returns ReadCloser with HTML page fetched from provided url or error.
// The caller is responsible for closing returned ReadCloser.
func (f *Fetcher) FetchHTML(ctx context.Context, url string) (io.ReadCloser, error) {
	return f.fetch(ctx, url, KindHTML)
}

func (f *Fetcher) fetch(ctx context.Context, url string, kind Kind) (body io.ReadCloser, err error) {
	if f.observer != nil {
		start := time.Now()
		defer func() {
			f.observer.ObserveFetch(string(kind), err, time.Since(start))
		}()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", acceptHeaders[kind])
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	if !isSupported(resp.Header.Get("Content-Type"), kind) {
		_ = resp.Body.Close()
		return nil, ErrContentTypeNotSupported
	}

	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return decompressResponse(resp.Body)
	}

	return resp.Body, nil
}

func isSupported(contentType string, kind Kind) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, supported := range supportedTypes[kind] {
		if mediaType == supported {
			return true
		}
	}

	return false
}

// decompressResponse returns io.ReadCloser with decompressed http response and error.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		_ = response.Close()
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}

// WithObserver sets Fetcher's request Observer.
func WithObserver(o Observer) Option {
	return func(f *Fetcher) {
		f.observer = o
	}
}
