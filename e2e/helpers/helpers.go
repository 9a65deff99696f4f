package helpers

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType     = "Content-Type"
	contentEncoding = "Content-Encoding"
)

// ShopProduct is product served by mocked shop.
type ShopProduct struct {
	Handle   string        `json:"handle"`
	Title    string        `json:"title"`
	Tags     []string      `json:"tags"`
	Variants []ShopVariant `json:"variants"`
}

// ShopVariant is product variant served by mocked shop, price is in minor units.
type ShopVariant struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Available bool   `json:"available"`
	Price     int64  `json:"price"`
}

// Shop is content of mocked shop.
type Shop struct {
	Products    []ShopProduct
	Collections map[string][]string
	// Pages maps page slug to linked product handles.
	Pages map[string][]string
}

// PrepareMockedShop is helper function for preparing http server following the shop's URL conventions.
// Product JSON is served gzip-compressed when client accepts it.
func PrepareMockedShop(t *testing.T, shop Shop) *httptest.Server {
	t.Helper()

	products := make(map[string]ShopProduct, len(shop.Products))
	for _, p := range shop.Products {
		products[p.Handle] = p
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		handle := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/products/"), ".js")
		product, ok := products[handle]
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set(contentType, "application/javascript; charset=utf-8")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			_ = json.NewEncoder(w).Encode(product)
			return
		}

		w.Header().Set(contentEncoding, "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		_ = json.NewEncoder(gz).Encode(product)
	})

	mux.HandleFunc("/collections/", func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/collections/"), "/products.json")
		handles, ok := shop.Collections[slug]
		if !ok {
			http.NotFound(w, r)
			return
		}

		listed := make([]map[string]string, 0, len(handles))
		for _, h := range handles {
			listed = append(listed, map[string]string{"handle": h})
		}

		w.Header().Set(contentType, "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{"products": listed})
	})

	mux.HandleFunc("/pages/", func(w http.ResponseWriter, r *http.Request) {
		handles, ok := shop.Pages[strings.TrimPrefix(r.URL.Path, "/pages/")]
		if !ok {
			http.NotFound(w, r)
			return
		}

		var body strings.Builder
		body.WriteString("<html><body><nav><a href=\"/collections/all\">All</a></nav>")
		for _, h := range handles {
			fmt.Fprintf(&body, "<a href=\"/products/%s?variant=1\">%s</a>", h, h)
			fmt.Fprintf(&body, "<a href=\"/products/%s#reviews\">reviews</a>", h)
		}
		body.WriteString("</body></html>")

		w.Header().Set(contentType, "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body.String()))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

// GenerateTestProducts generates n products with handles product-1...product-n.
// Every product has between 1 and 3 variants, every third product is pre-order.
func GenerateTestProducts(t *testing.T, n int) []ShopProduct {
	t.Helper()

	products := make([]ShopProduct, n)
	for ix := range n {
		product := ShopProduct{
			Handle: fmt.Sprintf("product-%d", ix+1),
			Title:  faker.Word(),
			Tags:   []string{faker.Word()},
		}
		if ix%3 == 2 {
			product.Tags = append(product.Tags, "予約販売")
		}

		variants := rand.Intn(3) + 1
		for vx := range variants {
			variant := ShopVariant{
				ID:        int64(ix+1)*1000 + int64(vx+1),
				Title:     faker.Word(),
				Available: true,
				Price:     rand.Int63n(10_000) + 100,
			}
			if variants == 1 {
				variant.Title = "Default Title"
			}
			product.Variants = append(product.Variants, variant)
		}

		products[ix] = product
	}

	return products
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// DeclareReplyQueue is helper function for declaring exclusive reply queue, returns its name.
func DeclareReplyQueue(t *testing.T, channel *amqp.Channel) string {
	t.Helper()

	queue, err := channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare reply queue", err)
	}

	return queue.Name
}

// WaitForReply is blocking helper function, returns body of first message from queue with correlationID.
func WaitForReply(t *testing.T, channel *amqp.Channel, queue, correlationID string, timeout time.Duration) []byte {
	t.Helper()

	deliveries, err := channel.Consume(queue, "", true, true, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't consume reply queue", queue, err)
	}

	deadline := time.After(timeout)
	for {
		select {
		case delivery := <-deliveries:
			if delivery.CorrelationId == correlationID {
				return delivery.Body
			}
		case <-deadline:
			require.FailNow(t, "reply not received", correlationID)
			return nil
		}
	}
}
