package entities

import "time"

// PaymentCallback is produced by the gateway checkout once the reader has paid.
type PaymentCallback struct {
	OrderID   string
	PaymentID string
	Signature string
}

// VerificationResult is derived from a PaymentCallback; it is never stored.
type VerificationResult struct {
	Verified  bool
	PaymentID string
	OrderID   string
}

// PaymentRecordStatus is the outcome recorded in the payment ledger.
type PaymentRecordStatus string

const (
	PaymentRecordVerified PaymentRecordStatus = "verified"
	PaymentRecordRejected PaymentRecordStatus = "rejected"
)

// PaymentRecord is one verification outcome kept in the payment ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// The ledger is an audit trail for support requests. It does not gate access
// to content and is not an order database.
type PaymentRecord struct {
	ID        string              `json:"id"`
	OrderID   string              `json:"order_id"`
	PaymentID string              `json:"payment_id"`
	ContentID string              `json:"content_id,omitempty"`
	Status    PaymentRecordStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}
