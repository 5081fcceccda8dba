package response

import (
	"encoding/json"
	"testing"
	"time"

	"openreaders_payments/internal/domain/entities"
)

func TestFromVerificationResult(t *testing.T) {
	res := FromVerificationResult(entities.VerificationResult{Verified: true, PaymentID: "pay_1", OrderID: "order_1"})

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["success"] != true || body["message"] != "Payment verified successfully" {
		t.Fatalf("unexpected body: %s", b)
	}
	if body["paymentId"] != "pay_1" || body["orderId"] != "order_1" {
		t.Fatalf("unexpected ids: %s", b)
	}
}

func TestFromPaymentRecords(t *testing.T) {
	now := time.Now().UTC()
	out := FromPaymentRecords([]entities.PaymentRecord{
		{ID: "r1", OrderID: "order_1", PaymentID: "pay_1", ContentID: "b1", Status: entities.PaymentRecordRejected, CreatedAt: now},
	})
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Status != "rejected" || out[0].ContentID != "b1" || !out[0].CreatedAt.Equal(now) {
		t.Fatalf("unexpected record %+v", out[0])
	}

	if empty := FromPaymentRecords(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
