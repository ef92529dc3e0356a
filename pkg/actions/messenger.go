package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/novalabs/go-nova/internal/httpc"
)

// ErrNoGateway is returned when no messaging gateway URL is configured.
var ErrNoGateway = errors.New("actions: messaging gateway not configured")

// Gateway dispatches instant messages through an HTTP messaging gateway
// (a WhatsApp bridge in the stock setup).
type Gateway struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewGateway creates a messenger posting to the given gateway URL.
func NewGateway(url string) *Gateway {
	return &Gateway{
		url:    url,
		client: httpc.Client,
		logger: slog.Default().With("component", "actions.gateway"),
	}
}

// sendRequest is the gateway payload.
type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendInstant posts the message to the gateway.
func (g *Gateway) SendInstant(ctx context.Context, number, message string) error {
	if g.url == "" {
		return ErrNoGateway
	}

	body, err := json.Marshal(sendRequest{Phone: number, Message: message})
	if err != nil {
		return &DispatchError{Action: "send message", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return &DispatchError{Action: "send message", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return &DispatchError{Action: "send message", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DispatchError{Action: "send message", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	g.logger.Info("message dispatched", "number", number)
	return nil
}

// Verify Gateway implements Messenger at compile time.
var _ Messenger = (*Gateway)(nil)
