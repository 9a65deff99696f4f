package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/MichalMitros/cartlinker/internal/platform/rabbitmq"
	"github.com/MichalMitros/cartlinker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Converter --filename converter.go
//go:generate mockery --name Consumer --filename consumer.go

// Converter scans listings and converts product handles into variants.
type Converter interface {
	Scan(ctx context.Context, url string) ([]string, error)
	Convert(ctx context.Context, input string) (*models.Conversion, error)
}

// Consumer consumes queue messages.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq       Consumer
	converter Converter
	logger    *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq Consumer, converter Converter, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:       rmq,
		converter: converter,
		logger:    logger,
	}
}

// Start starts consuming and handling convert commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle handles single convert command and returns reply message.
// Reply carries error message when command can't be handled.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) ([]byte, error) {
	reply, err := h.handle(ctx, message)
	if err != nil {
		reply = &commander.ConvertReply{Error: err.Error()}
	}

	replyMsg, marshalErr := json.Marshal(reply)
	if marshalErr != nil {
		return nil, fmt.Errorf("can't marshal convert reply: %w", marshalErr)
	}

	return replyMsg, err
}

func (h *RMQHandler) handle(ctx context.Context, message []byte) (*commander.ConvertReply, error) {
	cmd, err := decodeMessage(message)
	if err != nil {
		return nil, err
	}

	input := cmd.Input
	if cmd.ScanURL != "" {
		handles, err := h.converter.Scan(ctx, cmd.ScanURL)
		if err != nil {
			return nil, fmt.Errorf("scanning failed: %w", err)
		}
		lines := productLines(handles)
		if input != "" {
			lines = append([]string{input}, lines...)
		}
		input = strings.Join(lines, "\n")
	}

	h.logger.Debug().
		Str("scanUrl", cmd.ScanURL).
		Msg("conversion started")

	conversion, err := h.converter.Convert(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	h.logger.Debug().
		Str("conversionId", conversion.ID.String()).
		Msg("conversion finished")

	return toReply(conversion), nil
}

// productLines turns scanned handles into input lines which parse back into the same handles.
func productLines(handles []string) []string {
	return lo.Map(handles, func(h string, _ int) string {
		return "/products/" + h
	})
}

func toReply(c *models.Conversion) *commander.ConvertReply {
	return &commander.ConvertReply{
		ID: c.ID.String(),
		Variants: lo.Map(c.Variants, func(v models.Variant, _ int) commander.Variant {
			return commander.Variant(v)
		}),
		Failures: lo.Map(c.Failures, func(f models.Failure, _ int) commander.Failure {
			return commander.Failure(f)
		}),
	}
}

func decodeMessage(msg []byte) (*commander.ConvertCommand, error) {
	var cmd commander.ConvertCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode convert command: %w", err)
	}

	return &cmd, nil
}
