package handlers

import (
	"errors"
	"log"
	"net/http"
	request "openreaders_payments/internal/adapter/http/dto/request"
	response "openreaders_payments/internal/adapter/http/dto/response"
	"openreaders_payments/internal/usecase"
	"openreaders_payments/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAmount         = pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	errMissingRequiredFields = pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Missing required fields", http.StatusBadRequest)
)

// PaymentHandler handles order creation and payment verification requests.

type PaymentHandler struct {
	orders   usecase.IOrderUseCase
	payments usecase.IPaymentUseCase
}

func NewPaymentHandler(orders usecase.IOrderUseCase, payments usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{orders: orders, payments: payments}
}

// CreateOrder mints a gateway order for a content purchase.
//
// @Summary      Create payment order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateOrderRequest  true  "amount in rupees"
// @Success      200   {object}  entities.Order
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create-order invalid payload err=%v", err)
		c.JSON(errInvalidAmount.HTTPStatus, errInvalidAmount.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order start book_id=%q", payload.ResolveBookID())

	order, err := h.orders.CreateOrder(c.Request.Context(), usecase.CreateOrderCommand{
		Amount:       payload.ResolveAmount(),
		ContentID:    payload.ResolveBookID(),
		ContentTitle: payload.BookTitle,
	})
	if err != nil {
		appErr := mapOrderError(err)
		log.Printf("[payment][handler] create-order failed code=%s err=%v", appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, order)
}

// VerifyPayment checks the gateway signature of a completed checkout.
//
// @Summary      Verify payment signature
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.VerifyPaymentRequest  true  "gateway callback"
// @Success      200   {object}  response.VerifyPaymentResponse
// @Failure      400   {object}  response.VerifyPaymentErrorResponse
// @Failure      500   {object}  response.VerifyPaymentErrorResponse
// @Router       /verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] verify invalid payload err=%v", err)
		writeVerifyError(c, errMissingRequiredFields)
		return
	}

	result, err := h.payments.VerifyPayment(c.Request.Context(), usecase.VerifyPaymentCommand{
		OrderID:   payload.RazorpayOrderID,
		PaymentID: payload.RazorpayPaymentID,
		Signature: payload.RazorpaySignature,
		ContentID: payload.ResolveBookID(),
	})
	if err != nil {
		writeVerifyError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromVerificationResult(result))
}

// GetPaymentsByOrderID lists ledger records for an order.
//
// @Summary      List payment ledger records
// @Tags         payments
// @Produce      json
// @Param        order_id  path      string  true  "gateway order id"
// @Success      200       {array}   response.PaymentRecordResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /api/payments/{order_id} [get]
func (h *PaymentHandler) GetPaymentsByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	records, err := h.payments.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		log.Printf("[payment][handler] list-by-order failed order_id=%s code=%s err=%v", orderID, appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

func writeVerifyError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, response.VerifyPaymentErrorResponse{
		Success: false,
		Error:   appErr.Message,
		Code:    appErr.Code,
	})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return errInvalidAmount
	case errors.Is(err, usecase.ErrOrderGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", err, http.StatusInternalServerError)
	default:
		// The gateway's own message is passed through to the caller.
		return pkg.NewDomainError("GATEWAY_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return errMissingRequiredFields
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentLedgerDisabled):
		return pkg.NewDomainErrorSimple("LEDGER_DISABLED", "Payment ledger not enabled", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrVerifierNotConfigured):
		return pkg.NewDomainError("VERIFIER_NOT_CONFIGURED", "Payment verification not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
