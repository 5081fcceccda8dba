package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"openreaders_payments/internal/domain/entities"
	"openreaders_payments/internal/usecase/interfaces"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrOrderGatewayNotConfigured = errors.New("payment gateway not configured")
)

// The gateway rejects receipts longer than this.
const maxReceiptLen = 40

// CreateOrderCommand is a purchase attempt as requested by the reader.
//
// Amount is in the major currency unit (rupees).
type CreateOrderCommand struct {
	Amount       float64
	ContentID    string
	ContentTitle string
}

// IOrderUseCase issues gateway orders for content purchases.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
}

type OrderUseCase struct {
	gateway interfaces.IOrderGateway
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(gateway interfaces.IOrderGateway) *OrderUseCase {
	return &OrderUseCase{gateway: gateway, now: time.Now}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	contentID := strings.TrimSpace(cmd.ContentID)
	log.Printf("[payment][order] create start content_id=%q amount=%v", contentID, cmd.Amount)
	if math.IsNaN(cmd.Amount) || math.IsInf(cmd.Amount, 0) || cmd.Amount <= 0 {
		log.Printf("[payment][order] invalid amount content_id=%q amount=%v", contentID, cmd.Amount)
		return entities.Order{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		log.Printf("[payment][order] gateway not configured content_id=%q", contentID)
		return entities.Order{}, ErrOrderGatewayNotConfigured
	}

	req := entities.OrderRequest{
		Amount:   toMinorUnits(cmd.Amount),
		Currency: entities.CurrencyINR,
		Receipt:  buildReceipt(contentID, u.now()),
		Notes: entities.OrderNotes{
			BookID:    contentID,
			BookTitle: strings.TrimSpace(cmd.ContentTitle),
		},
	}

	log.Printf("[payment][order] calling gateway receipt=%s amount=%d currency=%s", req.Receipt, req.Amount, req.Currency)
	order, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		log.Printf("[payment][order] gateway failed receipt=%s err=%v", req.Receipt, err)
		return entities.Order{}, err
	}
	log.Printf("[payment][order] create success order_id=%s receipt=%s", order.ID, order.Receipt)
	return order, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// buildReceipt combines the content id and the current millisecond so that
// every attempt gets its own receipt. It does not make order creation
// idempotent.
func buildReceipt(contentID string, now time.Time) string {
	if contentID == "" {
		contentID = "book"
	}
	millis := fmt.Sprintf("%d", now.UnixMilli())
	room := maxReceiptLen - len("receipt_") - len("_") - len(millis)
	if room > 0 && len(contentID) > room {
		cut := room
		for cut > 0 && !utf8.RuneStart(contentID[cut]) {
			cut--
		}
		contentID = contentID[:cut]
	}
	return "receipt_" + contentID + "_" + millis
}
