package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -source=entitlement.go -destination=mocks/store_mock.go -package=mock_purchase

const (
	entitlementKeyPrefix = "paid_books:"
	StatusVerified       = "verified"
)

var ErrInvalidContentID = errors.New("invalid content id")

// Store is the reader's key-value persistence. Values are opaque bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Entitlement records that a content item was unlocked after a verified
// payment. It is written once and never updated.
type Entitlement struct {
	ContentTitle string    `json:"bookTitle"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	OrderID      string    `json:"orderId"`
	PaymentID    string    `json:"paymentId"`
	Signature    string    `json:"signature"`
	PurchasedAt  time.Time `json:"purchaseDate"`
	Status       string    `json:"status"`
}

// Entitlements reads and writes entitlement records in a Store.
//
// Records live on the reader's side of the trust boundary: anything with
// write access to the Store can unlock content without paying.
type Entitlements struct {
	store Store
}

func NewEntitlements(store Store) *Entitlements {
	return &Entitlements{store: store}
}

func entitlementKey(contentID string) string {
	return entitlementKeyPrefix + contentID
}

func (e *Entitlements) Get(ctx context.Context, contentID string) (Entitlement, bool, error) {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return Entitlement{}, false, ErrInvalidContentID
	}
	raw, ok, err := e.store.Get(ctx, entitlementKey(contentID))
	if err != nil {
		return Entitlement{}, false, fmt.Errorf("read entitlement %s: %w", contentID, err)
	}
	if !ok {
		return Entitlement{}, false, nil
	}
	var ent Entitlement
	if err := json.Unmarshal(raw, &ent); err != nil {
		return Entitlement{}, false, fmt.Errorf("decode entitlement %s: %w", contentID, err)
	}
	return ent, true, nil
}

// Grant stores ent for contentID unless a record already exists, in which
// case the existing record is returned unchanged.
func (e *Entitlements) Grant(ctx context.Context, contentID string, ent Entitlement) (Entitlement, error) {
	existing, ok, err := e.Get(ctx, contentID)
	if err != nil {
		return Entitlement{}, err
	}
	if ok {
		return existing, nil
	}
	raw, err := json.Marshal(ent)
	if err != nil {
		return Entitlement{}, fmt.Errorf("encode entitlement %s: %w", contentID, err)
	}
	if err := e.store.Set(ctx, entitlementKey(strings.TrimSpace(contentID)), raw); err != nil {
		return Entitlement{}, fmt.Errorf("write entitlement %s: %w", contentID, err)
	}
	return ent, nil
}
