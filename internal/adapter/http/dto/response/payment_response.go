package response

import (
	"openreaders_payments/internal/domain/entities"
	"time"
)

const PaymentVerifiedMessage = "Payment verified successfully"

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
}

type VerifyPaymentErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Razorpay bool   `json:"razorpay"`
}

type PaymentRecordResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	PaymentID string    `json:"payment_id"`
	ContentID string    `json:"content_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVerificationResult(r entities.VerificationResult) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Success:   r.Verified,
		Message:   PaymentVerifiedMessage,
		PaymentID: r.PaymentID,
		OrderID:   r.OrderID,
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, PaymentRecordResponse{
			ID:        r.ID,
			OrderID:   r.OrderID,
			PaymentID: r.PaymentID,
			ContentID: r.ContentID,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
