package commander

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends request messages.
type Sender interface {
	Send(ctx context.Context, correlationID string, msg []byte) error
}

// ConvertCommander sends convert commands.
type ConvertCommander struct {
	sender Sender
}

// NewConvertCommander returns new ConvertCommander using provided sender for sending messages.
func NewConvertCommander(sender Sender) ConvertCommander {
	return ConvertCommander{
		sender: sender,
	}
}

// SendConvertCommand sends convert command and returns its correlation ID.
// Worker's ConvertReply carries the same correlation ID.
func (c ConvertCommander) SendConvertCommand(ctx context.Context, cmd ConvertCommand) (string, error) {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return "", fmt.Errorf("can't marshal convert command: %w", err)
	}

	correlationID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("can't create correlation ID: %w", err)
	}

	if err := c.sender.Send(ctx, correlationID.String(), cmdMsg); err != nil {
		return "", fmt.Errorf("can't send convert command: %w", err)
	}

	return correlationID.String(), nil
}

// DecodeConvertReply decodes worker's reply message.
func DecodeConvertReply(msg []byte) (*ConvertReply, error) {
	var reply ConvertReply
	if err := json.Unmarshal(msg, &reply); err != nil {
		return nil, fmt.Errorf("can't decode convert reply: %w", err)
	}

	return &reply, nil
}
