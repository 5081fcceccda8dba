package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"openreaders_payments/internal/domain/entities"
	mock_interfaces "openreaders_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_CreateOrder_InvalidAmount(t *testing.T) {
	amounts := []float64{0, -1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, amount := range amounts {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIOrderGateway(ctrl)
		uc := NewOrderUseCase(gateway)

		// no EXPECT: any gateway call fails the test
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{Amount: amount, ContentID: "b1"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
		ctrl.Finish()
	}
}

func TestOrderUseCase_CreateOrder_GatewayNotConfigured(t *testing.T) {
	uc := NewOrderUseCase(nil)
	_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{Amount: 10})
	if !errors.Is(err, ErrOrderGatewayNotConfigured) {
		t.Fatalf("expected ErrOrderGatewayNotConfigured, got %v", err)
	}
}

func TestOrderUseCase_CreateOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIOrderGateway(ctrl)
	uc := NewOrderUseCase(gateway)
	fixed := time.UnixMilli(1700000000123)
	uc.now = func() time.Time { return fixed }

	gateway.EXPECT().CreateOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderRequest{})).DoAndReturn(
		func(_ context.Context, req entities.OrderRequest) (entities.Order, error) {
			if req.Amount != 49900 {
				t.Fatalf("expected 49900 paise, got %d", req.Amount)
			}
			if req.Currency != "INR" {
				t.Fatalf("expected INR, got %s", req.Currency)
			}
			if req.Receipt != "receipt_b1_1700000000123" {
				t.Fatalf("unexpected receipt %s", req.Receipt)
			}
			if req.Notes.BookID != "b1" || req.Notes.BookTitle != "The Long Night" {
				t.Fatalf("unexpected notes %+v", req.Notes)
			}
			return entities.Order{ID: "order_1", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Notes: req.Notes}, nil
		},
	)

	order, err := uc.CreateOrder(context.Background(), CreateOrderCommand{Amount: 499, ContentID: " b1 ", ContentTitle: "The Long Night"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order_1" || order.Amount != 49900 {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestOrderUseCase_CreateOrder_FractionalAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIOrderGateway(ctrl)
	uc := NewOrderUseCase(gateway)

	gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.OrderRequest) (entities.Order, error) {
			if req.Amount != 1999 {
				t.Fatalf("expected 1999 paise, got %d", req.Amount)
			}
			return entities.Order{ID: "order_2", Amount: req.Amount}, nil
		},
	)

	if _, err := uc.CreateOrder(context.Background(), CreateOrderCommand{Amount: 19.99}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderUseCase_CreateOrder_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIOrderGateway(ctrl)
	uc := NewOrderUseCase(gateway)

	// exactly one call: failures are not retried
	gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("Authentication failed")).Times(1)

	_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{Amount: 10, ContentID: "b1"})
	if err == nil || err.Error() != "Authentication failed" {
		t.Fatalf("expected gateway error, got %v", err)
	}
}

func TestBuildReceipt(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	if got := buildReceipt("", now); got != "receipt_book_1700000000123" {
		t.Fatalf("unexpected default receipt %s", got)
	}
	if got := buildReceipt("42", now); got != "receipt_42_1700000000123" {
		t.Fatalf("unexpected receipt %s", got)
	}

	long := buildReceipt(strings.Repeat("x", 80), now)
	if len(long) > maxReceiptLen {
		t.Fatalf("expected receipt within %d chars, got %d (%s)", maxReceiptLen, len(long), long)
	}
	if !strings.HasSuffix(long, "_1700000000123") {
		t.Fatalf("expected timestamp suffix, got %s", long)
	}

	if buildReceipt("b1", now) == buildReceipt("b1", now.Add(time.Millisecond)) {
		t.Fatalf("expected distinct receipts for distinct milliseconds")
	}
}

func TestBuildReceipt_MultibyteContentID(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	for _, id := range []string{"a" + strings.Repeat("é", 20), strings.Repeat("é", 30), "b" + strings.Repeat("日本", 10)} {
		got := buildReceipt(id, now)
		if !utf8.ValidString(got) {
			t.Fatalf("id %q: receipt is not valid utf-8: %q", id, got)
		}
		if len(got) > maxReceiptLen {
			t.Fatalf("id %q: expected receipt within %d bytes, got %d", id, maxReceiptLen, len(got))
		}
		if !strings.HasSuffix(got, "_1700000000123") {
			t.Fatalf("id %q: expected millisecond suffix, got %q", id, got)
		}
	}
}
