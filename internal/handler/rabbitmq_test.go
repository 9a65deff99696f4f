package handler_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MichalMitros/cartlinker/internal/handler"
	"github.com/MichalMitros/cartlinker/internal/handler/mocks"
	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/MichalMitros/cartlinker/internal/platform/models/modelstesting"
	"github.com/MichalMitros/cartlinker/pkg/v1/commander"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var logger = zerolog.Nop()

func TestUnitHandle(t *testing.T) {
	conversion := &models.Conversion{
		ID:       uuid.New(),
		Variants: modelstesting.FakeVariants(2),
		Failures: []models.Failure{{Handle: "broken", Reason: "not found"}},
	}

	conv := mocks.NewConverter(t)
	conv.On("Convert", mock.Anything, "/products/a").Return(conversion, nil)

	h := handler.NewHandler(mocks.NewConsumer(t), conv, &logger)
	replyMsg, err := h.Handle(context.TODO(), []byte(`{"input":"/products/a"}`))

	require.NoError(t, err, "shouldn't return any error")
	reply := decodeReply(t, replyMsg)
	assert.Equal(t, conversion.ID.String(), reply.ID, "should reply with conversion ID")
	require.Len(t, reply.Variants, 2, "should reply with variants")
	assert.Equal(t, conversion.Variants[1].ID, reply.Variants[1].ID, "should keep variants order")
	assert.Equal(t, conversion.Variants[1].Title, reply.Variants[1].Title, "should reply with variant titles")
	assert.Equal(t, []commander.Failure{{Handle: "broken", Reason: "not found"}}, reply.Failures, "should reply with failures")
	assert.Empty(t, reply.Error, "shouldn't reply with error")
}

func TestUnitHandleWithScan(t *testing.T) {
	scanURL := "https://chiikawamarket.jp/collections/new"

	conv := mocks.NewConverter(t)
	conv.On("Scan", mock.Anything, scanURL).Return([]string{"b", "c"}, nil)
	conv.On("Convert", mock.Anything, "/products/a\n/products/b\n/products/c").
		Return(&models.Conversion{ID: uuid.New()}, nil)

	h := handler.NewHandler(mocks.NewConsumer(t), conv, &logger)
	_, err := h.Handle(context.TODO(), []byte(`{"input":"/products/a","scanUrl":"`+scanURL+`"}`))

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitHandleErrors(t *testing.T) {
	tests := map[string]struct {
		message      string
		prepare      func(*mocks.Converter)
		wantErrMsg   string
		wantErrorsIs error
	}{
		"malformed command": {
			message:    `{"input":`,
			prepare:    func(*mocks.Converter) {},
			wantErrMsg: "can't decode convert command",
		},
		"scan error": {
			message: `{"input":"","scanUrl":"https://chiikawamarket.jp/pages/a"}`,
			prepare: func(c *mocks.Converter) {
				c.On("Scan", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			wantErrMsg:   "scanning failed",
			wantErrorsIs: assert.AnError,
		},
		"convert error": {
			message: `{"input":"hello"}`,
			prepare: func(c *mocks.Converter) {
				c.On("Convert", mock.Anything, "hello").Return(nil, assert.AnError)
			},
			wantErrMsg:   "conversion failed",
			wantErrorsIs: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conv := mocks.NewConverter(t)
			tt.prepare(conv)

			h := handler.NewHandler(mocks.NewConsumer(t), conv, &logger)
			replyMsg, err := h.Handle(context.TODO(), []byte(tt.message))

			require.ErrorContains(t, err, tt.wantErrMsg, "should return handling error")
			if tt.wantErrorsIs != nil {
				require.ErrorIs(t, err, tt.wantErrorsIs, "should wrap cause of failure")
			}
			reply := decodeReply(t, replyMsg)
			assert.Equal(t, err.Error(), reply.Error, "should reply with error message")
		})
	}
}

func TestUnitStart(t *testing.T) {
	errs := make(chan error)
	consumer := mocks.NewConsumer(t)
	consumer.On("Consume", mock.Anything, "commands", mock.AnythingOfType("rabbitmq.HandlerFunc")).
		Return((<-chan error)(errs), nil)

	h := handler.NewHandler(consumer, mocks.NewConverter(t), &logger)
	err := h.Start(context.TODO(), "commands")
	require.NoError(t, err, "shouldn't return any error")

	select {
	case errs <- assert.AnError:
	case <-time.After(time.Second):
		require.FailNow(t, "should drain consuming errors")
	}
	close(errs)
}

func TestUnitStartError(t *testing.T) {
	consumer := mocks.NewConsumer(t)
	consumer.On("Consume", mock.Anything, "commands", mock.Anything).Return(nil, assert.AnError)

	h := handler.NewHandler(consumer, mocks.NewConverter(t), &logger)
	err := h.Start(context.TODO(), "commands")

	require.ErrorIs(t, err, assert.AnError, "should return consuming error")
}

func decodeReply(t *testing.T, msg []byte) commander.ConvertReply {
	t.Helper()

	var reply commander.ConvertReply
	require.NoError(t, json.Unmarshal(msg, &reply), "should reply with json")

	return reply
}
