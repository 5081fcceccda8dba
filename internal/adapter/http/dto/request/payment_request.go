package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CreateOrderRequest is the body of POST /create-order.
//
// Amount is in rupees. bookId may arrive as a JSON string or number.
type CreateOrderRequest struct {
	Amount    *float64        `json:"amount"`
	BookID    json.RawMessage `json:"bookId"`
	BookTitle string          `json:"bookTitle"`
}

func (r CreateOrderRequest) ResolveAmount() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

func (r CreateOrderRequest) ResolveBookID() string {
	return resolveID(r.BookID)
}

// VerifyPaymentRequest is the body of POST /verify-payment: the gateway
// checkout callback plus the content being unlocked.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string          `json:"razorpay_order_id"`
	RazorpayPaymentID string          `json:"razorpay_payment_id"`
	RazorpaySignature string          `json:"razorpay_signature"`
	BookID            json.RawMessage `json:"bookId"`
}

func (r VerifyPaymentRequest) ResolveBookID() string {
	return resolveID(r.BookID)
}

func resolveID(raw json.RawMessage) string {
	v := strings.TrimSpace(string(raw))
	if v == "" || v == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return ""
}
