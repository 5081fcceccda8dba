package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"openreaders_payments/internal/config"
	"openreaders_payments/internal/domain/signature"
	"openreaders_payments/internal/infrastructure/payments"
	"openreaders_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

const testSecret = "test_secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gateway, err := payments.NewRazorpayGateway(config.Razorpay{}, true, nil)
	if err != nil {
		t.Fatalf("unexpected gateway error: %v", err)
	}
	return NewRouter(Dependencies{
		Orders:   usecase.NewOrderUseCase(gateway),
		Payments: usecase.NewPaymentUseCase(testSecret, nil),
	})
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_PurchaseFlow(t *testing.T) {
	r := newTestRouter(t)

	for _, prefix := range []string{"", "/api"} {
		t.Run("prefix "+prefix, func(t *testing.T) {
			w := serve(r, http.MethodPost, prefix+"/create-order", `{"amount":49,"bookId":"b1","bookTitle":"Rain"}`)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
			}
			var order map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
				t.Fatalf("invalid order json: %v", err)
			}
			orderID, _ := order["id"].(string)
			if !strings.HasPrefix(orderID, "order_mock_") {
				t.Fatalf("expected mock order id, got %q", orderID)
			}
			if order["amount"] != float64(4900) || order["currency"] != "INR" {
				t.Fatalf("unexpected order: %v", order)
			}

			sig := signature.Sign(orderID, "pay_1", testSecret)
			body := `{"razorpay_order_id":"` + orderID + `","razorpay_payment_id":"pay_1","razorpay_signature":"` + sig + `","bookId":"b1"}`
			w = serve(r, http.MethodPost, prefix+"/verify-payment", body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), `"success":true`) {
				t.Fatalf("expected success, got %s", w.Body.String())
			}

			tampered := `{"razorpay_order_id":"` + orderID + `","razorpay_payment_id":"pay_2","razorpay_signature":"` + sig + `"}`
			w = serve(r, http.MethodPost, prefix+"/verify-payment", tampered)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Invalid signature") {
				t.Fatalf("expected invalid signature, got %s", w.Body.String())
			}
		})
	}
}

func TestRouter_InvalidAmount(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{`{"amount":0}`, `{"amount":-1}`, `{}`, `{"amount":"ten"}`} {
		w := serve(r, http.MethodPost, "/create-order", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid amount") {
			t.Fatalf("body %s: unexpected response %s", body, w.Body.String())
		}
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/create-order", "/verify-payment", "/api/create-order", "/api/verify-payment"} {
		w := serve(r, http.MethodGet, path, "")
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Method not allowed") {
			t.Fatalf("%s: unexpected body %s", path, w.Body.String())
		}
	}
}

func TestRouter_Preflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/create-order", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestRouter_HealthAndLedger(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := serve(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"razorpay":false`) {
			t.Fatalf("%s: unexpected body %s", path, w.Body.String())
		}
	}

	w := serve(r, http.MethodGet, "/api/payments/order_1", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with ledger disabled, got %d", w.Code)
	}

	w = serve(r, http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
