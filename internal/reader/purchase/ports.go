package purchase

import (
	"context"
	"openreaders_payments/internal/domain/entities"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mock_purchase

// OrderRequest asks the payment server for a new gateway order. Amount is in
// rupees.
type OrderRequest struct {
	Amount       float64
	ContentID    string
	ContentTitle string
}

// PaymentAPI is the payment server as seen from the reader. Transport
// failures are returned wrapping ErrNetwork.
type PaymentAPI interface {
	CreateOrder(ctx context.Context, req OrderRequest) (entities.Order, error)
	VerifyPayment(ctx context.Context, cb entities.PaymentCallback, contentID string) (entities.VerificationResult, error)
}

// CheckoutRequest is what the gateway checkout needs to collect a payment.
type CheckoutRequest struct {
	KeyID       string
	OrderID     string
	Amount      int64
	Currency    string
	Name        string
	Description string
	ContentID   string
}

// CheckoutResult reports how the checkout ended. Completed is false when the
// user dismissed it.
type CheckoutResult struct {
	Completed bool
	Callback  entities.PaymentCallback
}

// Checkout hands control to the gateway's checkout UI and blocks until it
// completes or is dismissed.
type Checkout interface {
	Open(ctx context.Context, req CheckoutRequest) (CheckoutResult, error)
}

// ContentView renders content using the Gate's answer at render time.
type ContentView interface {
	Invalidate(contentID string)
	Open(contentID string)
}

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier shows short user-facing messages.
type Notifier interface {
	Notify(level Level, message string)
}
