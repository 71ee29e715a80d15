// Package razorpay implements the payment gateway port against the Razorpay
// Orders API.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"stylemart/config"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/service"
	"stylemart/internal/errors"
)

const ordersPath = "/v1/orders"

// Client talks to the Razorpay Orders API over HTTPS with basic auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
	logger     *slog.Logger
}

// New creates the gateway client from configuration.
func New(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Gateway.KeyID == "" {
		return nil, errors.New("gateway key id must be provided")
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.Gateway.BaseURL,
		keyID:      cfg.Gateway.KeyID,
		keySecret:  cfg.Gateway.KeySecret,
		logger:     logger,
	}, nil
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder registers the order with the gateway. Amount is already in the
// gateway's minor currency unit.
func (c *Client) CreateOrder(ctx context.Context, req service.GatewayOrderRequest) (*service.GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal order request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build order request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrGatewayOrderFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var gatewayErr errorResponse
		description := http.StatusText(resp.StatusCode)
		if decodeErr := json.NewDecoder(resp.Body).Decode(&gatewayErr); decodeErr == nil && gatewayErr.Error.Description != "" {
			description = gatewayErr.Error.Description
		}

		c.logger.Error("Gateway order creation failed",
			slog.Int("status", resp.StatusCode),
			slog.String("description", description),
			slog.String("receipt", req.Receipt),
		)

		return nil, errors.Wrap(domainerrors.ErrGatewayOrderFailed, description)
	}

	var order createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errors.Wrap(err, "decode order response")
	}

	c.logger.Info("Gateway order created",
		slog.String("gatewayOrderId", order.ID),
		slog.String("receipt", order.Receipt),
		slog.Int64("amount", order.Amount),
	)

	return &service.GatewayOrder{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

// KeyID returns the public key the hosted payment UI is configured with.
func (c *Client) KeyID() string {
	return c.keyID
}
