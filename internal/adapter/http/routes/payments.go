package routes

import (
	"openreaders_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreateOrder   = "/create-order"
	PathVerifyPayment = "/verify-payment"
	PathHealth        = "/health"
	PathPayments      = "/payments"
)

func addPaymentRoutes(rg gin.IRoutes, paymentHandler *handlers.PaymentHandler, healthHandler *handlers.HealthHandler) {
	rg.POST(PathCreateOrder, paymentHandler.CreateOrder)
	rg.POST(PathVerifyPayment, paymentHandler.VerifyPayment)
	rg.GET(PathHealth, healthHandler.Health)
}

func addLedgerRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:order_id", paymentHandler.GetPaymentsByOrderID)
	}
}
