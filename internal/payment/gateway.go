package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/spec-kit/interior-market/internal/config"
)

// GatewayOrderRequest is the order mint request sent to the gateway.
type GatewayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// GatewayOrder is the gateway's view of a minted order.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway mints orders at the external payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewGateway builds a Razorpay-backed gateway client.
func NewGateway(cfg config.PaymentConfig) Gateway {
	client := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	if cfg.BaseURL != "" {
		client.Order.Request.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/") + "/v1"
	}
	return &razorpayGateway{client: client}
}

// CreateOrder mints an order. The call is not idempotent at the gateway, so
// failures are surfaced as-is and never retried.
func (g *razorpayGateway) CreateOrder(_ context.Context, req GatewayOrderRequest) (*GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	body, err := g.client.Order.Create(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway order create: %w", err)
	}
	return orderFromResponse(body, req.Amount)
}

func orderFromResponse(body map[string]interface{}, requestedAmount int64) (*GatewayOrder, error) {
	order := &GatewayOrder{
		ID:       stringField(body, "id"),
		Amount:   requestedAmount,
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
		Status:   stringField(body, "status"),
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if order.ID == "" {
		return nil, errors.New("gateway response missing order id")
	}
	return order, nil
}

func stringField(body map[string]interface{}, key string) string {
	if value, ok := body[key].(string); ok {
		return value
	}
	return ""
}
