package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interior-market/internal/api/dto"
	"github.com/spec-kit/interior-market/internal/auth"
	"github.com/spec-kit/interior-market/internal/payment"
	"github.com/spec-kit/interior-market/internal/service"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// PaymentsHandler manages gateway order endpoints.
type PaymentsHandler struct {
	service *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{service: paymentService}
}

// CreateOrder POST /payments/create-order.
func (h *PaymentsHandler) CreateOrder(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	record, err := h.service.CreateOrder(c.Context(), principal.User, service.CreateOrderInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderResponse(record)})
}

// VerifyPayment POST /payments/verify-payment.
func (h *PaymentsHandler) VerifyPayment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	record, err := h.service.VerifyPayment(c.Context(), principal.User, service.VerifyInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(record)})
}

// GetOrder GET /payments/order/:orderId.
func (h *PaymentsHandler) GetOrder(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	record, err := h.service.GetOrder(c.Context(), principal.User, c.Params("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(record)})
}

func orderResponse(record *payment.OrderRecord) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        record.ID,
		Amount:    record.Amount,
		Currency:  record.Currency,
		Receipt:   record.Receipt,
		Status:    string(record.Status),
		PaymentID: record.PaymentID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
