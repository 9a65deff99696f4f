package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MichalMitros/cartlinker/cmd/cartlinker/config"
	"github.com/MichalMitros/cartlinker/internal/api"
	"github.com/MichalMitros/cartlinker/internal/cart"
	"github.com/MichalMitros/cartlinker/internal/converter"
	"github.com/MichalMitros/cartlinker/internal/decoder"
	"github.com/MichalMitros/cartlinker/internal/fetcher"
	"github.com/MichalMitros/cartlinker/internal/handler"
	"github.com/MichalMitros/cartlinker/internal/listing"
	"github.com/MichalMitros/cartlinker/internal/platform/metrics"
	"github.com/MichalMitros/cartlinker/internal/platform/rabbitmq"
	"github.com/MichalMitros/cartlinker/internal/storefront"
	"github.com/MichalMitros/cartlinker/internal/variant"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load config")
	}
	logger = logger.Level(cfg.Level())

	store, err := storefront.New(cfg.StoreBaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't create storefront")
	}

	fet := fetcher.NewFetcher(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.UserAgent,
		fetcher.WithObserver(metrics.NewFetchMetrics(prometheus.DefaultRegisterer)),
	)
	dec := decoder.Decoder{}

	conv := converter.NewConverter(
		listing.NewResolver(fet, dec, store),
		variant.NewResolver(fet, dec, store),
		cart.NewBuilder(store),
		&logger,
		converter.WithRecorder(metrics.NewConversionMetrics(prometheus.DefaultRegisterer)),
	)

	// start HTTP API
	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: api.NewRouter(
			api.NewHandler(conv, &logger),
			promhttp.Handler(),
			cfg.HTTP.AllowedOrigins,
			&logger,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("HTTP server failed")
			cancel()
		}
	}()

	// start RabbitMQ worker if configured
	var (
		amqpConnection *amqp.Connection
		conn           *rabbitmq.RabbitMQ
	)
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}

		conn, err = rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}

		han := handler.NewHandler(conn, conv, &logger)
		if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't start consuming")
		}
	}

	logger.Info().
		Str("addr", cfg.HTTP.Addr).
		Str("store", store.BaseURL()).
		Bool("worker", conn != nil).
		Msg("cartlinker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().
				Err(err).
				Msg("can't shutdown HTTP server")
		}
	}()

	if conn != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// wait for consumer to finish
			<-conn.Done()
			if err := amqpConnection.Close(); err != nil {
				logger.Error().
					Err(err).
					Msg("can't close RabbitMQ connection")
			}
		}()
	}

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
