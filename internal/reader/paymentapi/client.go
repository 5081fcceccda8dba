// Package paymentapi is the reader's HTTP client for the payment server.
package paymentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	request "openreaders_payments/internal/adapter/http/dto/request"
	response "openreaders_payments/internal/adapter/http/dto/response"
	"openreaders_payments/internal/domain/entities"
	"openreaders_payments/internal/reader/purchase"
	"openreaders_payments/pkg"
	"strings"
	"time"
)

const (
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 1 << 20

	pathCreateOrder   = "/api/create-order"
	pathVerifyPayment = "/api/verify-payment"
	pathHealth        = "/api/health"

	invalidSignatureMessage = "Invalid signature"
)

// APIError is a non-2xx answer from the payment server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("payment server returned %d", e.StatusCode)
	}
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ purchase.PaymentAPI = (*Client)(nil)

// NewClient returns a client for the server at baseURL. A nil httpClient is
// replaced by one with the given timeout.
func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) CreateOrder(ctx context.Context, req purchase.OrderRequest) (entities.Order, error) {
	bookID, err := json.Marshal(req.ContentID)
	if err != nil {
		return entities.Order{}, err
	}
	amount := req.Amount
	status, raw, err := c.post(ctx, pathCreateOrder, request.CreateOrderRequest{
		Amount:    &amount,
		BookID:    bookID,
		BookTitle: req.ContentTitle,
	})
	if err != nil {
		return entities.Order{}, err
	}

	if status < 200 || status > 299 {
		var httpErr pkg.HTTPError
		_ = json.Unmarshal(raw, &httpErr)
		return entities.Order{}, &APIError{StatusCode: status, Message: httpErr.Error}
	}

	var order entities.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return entities.Order{}, fmt.Errorf("%w: decode order: %v", purchase.ErrNetwork, err)
	}
	if order.ID == "" {
		return entities.Order{}, fmt.Errorf("%w: order response without id", purchase.ErrNetwork)
	}
	return order, nil
}

// VerifyPayment forwards the checkout callback. A signature mismatch is a
// result with Verified false, not an error.
func (c *Client) VerifyPayment(ctx context.Context, cb entities.PaymentCallback, contentID string) (entities.VerificationResult, error) {
	bookID, err := json.Marshal(contentID)
	if err != nil {
		return entities.VerificationResult{}, err
	}
	status, raw, err := c.post(ctx, pathVerifyPayment, request.VerifyPaymentRequest{
		RazorpayOrderID:   cb.OrderID,
		RazorpayPaymentID: cb.PaymentID,
		RazorpaySignature: cb.Signature,
		BookID:            bookID,
	})
	if err != nil {
		return entities.VerificationResult{}, err
	}

	if status >= 200 && status <= 299 {
		var ok response.VerifyPaymentResponse
		if err := json.Unmarshal(raw, &ok); err != nil {
			return entities.VerificationResult{}, fmt.Errorf("%w: decode verification: %v", purchase.ErrNetwork, err)
		}
		return entities.VerificationResult{Verified: ok.Success, PaymentID: ok.PaymentID, OrderID: ok.OrderID}, nil
	}

	var failed response.VerifyPaymentErrorResponse
	if err := json.Unmarshal(raw, &failed); err != nil {
		return entities.VerificationResult{}, fmt.Errorf("%w: verification status %d: %v", purchase.ErrNetwork, status, err)
	}
	if status == http.StatusBadRequest && failed.Error == invalidSignatureMessage {
		return entities.VerificationResult{Verified: false, PaymentID: cb.PaymentID, OrderID: cb.OrderID}, nil
	}
	return entities.VerificationResult{}, &APIError{StatusCode: status, Message: failed.Error}
}

// Health reports whether the server is up and has gateway credentials.
func (c *Client) Health(ctx context.Context) (response.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return response.HealthResponse{}, err
	}
	status, raw, err := c.do(req)
	if err != nil {
		return response.HealthResponse{}, err
	}
	if status != http.StatusOK {
		return response.HealthResponse{}, &APIError{StatusCode: status}
	}
	var out response.HealthResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return response.HealthResponse{}, fmt.Errorf("%w: decode health: %v", purchase.ErrNetwork, err)
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[paymentapi] request failed method=%s path=%s err=%v", req.Method, req.URL.Path, err)
		return 0, nil, fmt.Errorf("%w: %w", purchase.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read response: %w", purchase.ErrNetwork, err)
	}
	return resp.StatusCode, raw, nil
}
