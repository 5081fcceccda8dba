package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"
	"openreaders_payments/internal/domain/entities"
)

// IOrderGateway abstracts the external payment provider (Razorpay).
//
// Order creation must never be retried by implementations: a retry can mint
// a second order for the same purchase attempt.
type IOrderGateway interface {
	CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error)
}
