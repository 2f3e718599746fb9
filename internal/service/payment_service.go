package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/events"
	"github.com/spec-kit/interior-market/internal/payment"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// PaymentService mints gateway orders and verifies payment callbacks.
type PaymentService struct {
	gateway    payment.Gateway
	orders     payment.OrderStore
	keySecret  string
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewPaymentService builds the service.
func NewPaymentService(gateway payment.Gateway, orders payment.OrderStore, keySecret string, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{
		gateway:    gateway,
		orders:     orders,
		keySecret:  keySecret,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// CreateOrderInput describes an order mint request.
type CreateOrderInput struct {
	Amount   int64
	Currency string
	Receipt  string
}

// VerifyInput carries the gateway callback fields.
type VerifyInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

// CreateOrder mints an order at the gateway and records it locally, bound to
// the calling user.
func (s *PaymentService) CreateOrder(ctx context.Context, actor *domain.User, input CreateOrderInput) (*payment.OrderRecord, error) {
	if input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be a positive integer", map[string]any{"amount": input.Amount})
	}
	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}
	receipt := input.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%s", uuid.NewString())
	}

	order, err := s.gateway.CreateOrder(ctx, payment.GatewayOrderRequest{
		Amount:   input.Amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("create payment order: %w", err))
	}

	record := &payment.OrderRecord{
		ID:        order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Receipt:   order.Receipt,
		UserID:    actor.ID,
		Status:    payment.OrderStatusCreated,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	if err := s.orders.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// VerifyPayment checks a gateway callback signature against the local order.
// Ownership is checked before any signature work.
func (s *PaymentService) VerifyPayment(ctx context.Context, actor *domain.User, input VerifyInput) (*payment.OrderRecord, error) {
	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return nil, apperrors.NewValidationError("order id, payment id and signature are required", nil)
	}

	record, err := s.orders.Get(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			return nil, apperrors.NewBusinessRule("order not found", map[string]any{"order_id": input.OrderID})
		}
		return nil, err
	}
	if record.UserID != actor.ID {
		return nil, apperrors.NewForbidden("order does not belong to this user")
	}

	if !s.signatureValid(input.OrderID, input.PaymentID, input.Signature) {
		return nil, apperrors.NewBusinessRule("payment verification failed", nil)
	}

	record.Status = payment.OrderStatusPaid
	record.PaymentID = input.PaymentID
	record.Signature = input.Signature
	record.UpdatedAt = s.now()
	if err := s.orders.Save(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventPaymentVerified,
		SubjectID: record.ID,
		ActorID:   actor.ID,
		Payload: events.PaymentVerifiedPayload{
			OrderID:   record.ID,
			PaymentID: record.PaymentID,
			Amount:    record.Amount,
			Currency:  record.Currency,
		},
	})
	return record, nil
}

// GetOrder returns a local order record; only the owner may read it.
func (s *PaymentService) GetOrder(ctx context.Context, actor *domain.User, orderID string) (*payment.OrderRecord, error) {
	record, err := s.orders.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			return nil, apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return nil, err
	}
	if record.UserID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("order does not belong to this user")
	}
	return record, nil
}

// signatureValid recomputes the expected signature over "orderID|paymentID"
// and compares in constant time.
func (s *PaymentService) signatureValid(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *PaymentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
