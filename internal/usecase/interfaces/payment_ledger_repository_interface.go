package interfaces

//go:generate mockgen -source=payment_ledger_repository_interface.go -destination=mocks/payment_ledger_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"openreaders_payments/internal/domain/entities"
)

// IPaymentLedgerRepository abstracts DynamoDB persistence for PaymentRecord.

type IPaymentLedgerRepository interface {
	Create(ctx context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error)
}
