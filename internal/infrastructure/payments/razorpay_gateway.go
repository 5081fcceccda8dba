package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"openreaders_payments/internal/config"
	"openreaders_payments/internal/domain/entities"
	"openreaders_payments/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

// GatewayError is a non-2xx answer from the Razorpay API. Error() returns the
// gateway's own description so it can be passed through to callers.
type GatewayError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("razorpay error status=%d", e.StatusCode)
}

type RazorpayGateway struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
	mockMode   bool
}

var _ interfaces.IOrderGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(cfg config.Razorpay, mockMode bool, httpClient *http.Client) (*RazorpayGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}

	if !cfg.GatewayConfigured() {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	log.Printf("[payment][gateway] Razorpay client initialized base_url=%s", cfg.BaseAPIURL)

	return &RazorpayGateway{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseAPIURL, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error) {
	if g != nil && g.mockMode {
		id := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create success order_id=%s receipt=%s", id, req.Receipt)
		return entities.Order{
			ID:        id,
			Entity:    "order",
			Amount:    req.Amount,
			AmountDue: req.Amount,
			Currency:  req.Currency,
			Receipt:   req.Receipt,
			Status:    "created",
			Notes:     req.Notes,
			CreatedAt: time.Now().UTC().Unix(),
		}, nil
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Order{}, ErrRazorpayGatewayNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return entities.Order{}, fmt.Errorf("marshal order request: %w", err)
	}
	log.Printf("[payment][gateway] create start receipt=%s amount=%d", req.Receipt, req.Amount)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return entities.Order{}, fmt.Errorf("create order request: %w", err)
	}
	httpReq.SetBasicAuth(g.keyID, g.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] request failed receipt=%s err=%v", req.Receipt, err)
		return entities.Order{}, fmt.Errorf("razorpay create order: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.Order{}, fmt.Errorf("read razorpay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := parseGatewayError(resp.StatusCode, raw)
		log.Printf("[payment][gateway] create rejected receipt=%s status=%d code=%s", req.Receipt, gwErr.StatusCode, gwErr.Code)
		return entities.Order{}, gwErr
	}

	var order entities.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		log.Printf("[payment][gateway] response unmarshal failed err=%v", err)
		return entities.Order{}, fmt.Errorf("decode razorpay order: %w", err)
	}
	log.Printf("[payment][gateway] create success order_id=%s status=%s", order.ID, order.Status)
	return order, nil
}

func parseGatewayError(status int, raw []byte) *GatewayError {
	var envelope struct {
		Error struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	gwErr := &GatewayError{StatusCode: status}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		gwErr.Code = envelope.Error.Code
		gwErr.Description = envelope.Error.Description
	}
	if gwErr.Description == "" {
		gwErr.Description = strings.TrimSpace(string(raw))
	}
	return gwErr
}
