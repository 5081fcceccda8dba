package purchase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"openreaders_payments/internal/reader/purchase"
	mock_purchase "openreaders_payments/internal/reader/purchase/mocks"
	"openreaders_payments/internal/reader/storage"

	"go.uber.org/mock/gomock"
)

func TestGate(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	gate := purchase.NewGate(store)

	if _, err := purchase.NewEntitlements(store).Grant(ctx, "b1", purchase.Entitlement{OrderID: "order_1", Status: purchase.StatusVerified}); err != nil {
		t.Fatalf("unexpected grant error: %v", err)
	}

	cases := []struct {
		name      string
		contentID string
		total     int
		free      int
		want      int
	}{
		{name: "unlocked shows everything", contentID: "b1", total: 300, free: 10, want: 300},
		{name: "locked shows preview", contentID: "b2", total: 300, free: 10, want: 10},
		{name: "preview longer than book", contentID: "b2", total: 4, free: 10, want: 4},
		{name: "negative preview", contentID: "b2", total: 300, free: -3, want: 0},
		{name: "negative total", contentID: "b1", total: -1, free: 10, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gate.PagesVisible(ctx, tc.contentID, tc.total, tc.free)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}

	t.Run("is unlocked", func(t *testing.T) {
		if ok, _ := gate.IsUnlocked(ctx, "b1"); !ok {
			t.Fatalf("expected b1 unlocked")
		}
		if ok, _ := gate.IsUnlocked(ctx, "b2"); ok {
			t.Fatalf("expected b2 locked")
		}
	})

	t.Run("blank id", func(t *testing.T) {
		if _, err := gate.IsUnlocked(ctx, "  "); !errors.Is(err, purchase.ErrInvalidContentID) {
			t.Fatalf("expected ErrInvalidContentID, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		failing := mock_purchase.NewMockStore(ctrl)
		failing.EXPECT().Get(gomock.Any(), "paid_books:b1").Return(nil, false, errors.New("disk full"))

		if _, err := purchase.NewGate(failing).PagesVisible(ctx, "b1", 300, 10); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("corrupt record", func(t *testing.T) {
		_ = store.Set(ctx, "paid_books:b3", []byte("{"))
		if _, err := gate.IsUnlocked(ctx, "b3"); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}

func TestEntitlements_GrantNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	ents := purchase.NewEntitlements(store)

	first := purchase.Entitlement{OrderID: "order_1", PaymentID: "pay_1", PurchasedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Status: purchase.StatusVerified}
	if _, err := ents.Grant(ctx, "b1", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := ents.Grant(ctx, "b1", purchase.Entitlement{OrderID: "order_2", Status: purchase.StatusVerified})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OrderID != "order_1" {
		t.Fatalf("expected original record, got %+v", got)
	}

	raw, _, _ := store.Get(ctx, "paid_books:b1")
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("invalid stored json: %v", err)
	}
	if stored["orderId"] != "order_1" || stored["status"] != "verified" {
		t.Fatalf("unexpected stored record: %v", stored)
	}
}
