package purchase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"openreaders_payments/internal/domain/entities"
	"strings"
	"sync"
	"time"
)

type State string

const (
	StateIdle           State = "IDLE"
	StateOrderRequested State = "ORDER_REQUESTED"
	StateCheckoutOpen   State = "CHECKOUT_OPEN"
	StateVerifying      State = "VERIFYING"
	StateUnlocked       State = "UNLOCKED"
	StateFailed         State = "FAILED"
)

const defaultCheckoutTimeout = 10 * time.Minute

var (
	ErrPurchaseInProgress   = errors.New("purchase already in progress")
	ErrPaymentNotConfigured = errors.New("payment not configured")
	ErrOrderFailed          = errors.New("order creation failed")
	ErrCheckoutCancelled    = errors.New("checkout cancelled")
	ErrVerificationFailed   = errors.New("payment verification failed")
	ErrNetwork              = errors.New("network failure")
	ErrEntitlementNotSaved  = errors.New("entitlement not saved")
)

// User-facing messages.
const (
	msgAlreadyOwned       = "You have already purchased this book! Opening it now..."
	msgInProgress         = "A purchase for this book is already in progress."
	msgNotConfigured      = "Payment system not configured. Please contact support."
	msgInitializing       = "Initializing payment..."
	msgOrderFailed        = "Failed to initiate payment: "
	msgCancelled          = "Payment cancelled. Book not unlocked."
	msgVerifying          = "Verifying payment..."
	msgVerificationFailed = "Payment verification failed. Please contact support."
	msgNetwork            = "Network error. Please check your connection and try again."
	msgNotSaved           = "Payment verified but the purchase could not be saved. Please contact support."
	msgUnlocked           = "Payment successful! Unlocking full book..."
)

// Item is a purchasable content item.
type Item struct {
	ID    string
	Title string
	Price float64
}

// Observer is told about every state change of a purchase attempt.
type Observer func(contentID string, from, to State)

type Options struct {
	KeyID           string
	SiteName        string
	CheckoutTimeout time.Duration
	Observer        Observer
}

// Orchestrator runs purchase attempts: order, checkout, verification and
// unlock. Attempts for different content ids run independently; a second
// attempt for an id that is already in flight is refused.
type Orchestrator struct {
	entitlements *Entitlements
	api          PaymentAPI
	checkout     Checkout
	view         ContentView
	notifier     Notifier
	opts         Options
	now          func() time.Time

	mu       sync.Mutex
	inFlight map[string]State
}

func NewOrchestrator(store Store, api PaymentAPI, checkout Checkout, view ContentView, notifier Notifier, opts Options) *Orchestrator {
	if opts.CheckoutTimeout <= 0 {
		opts.CheckoutTimeout = defaultCheckoutTimeout
	}
	if view == nil {
		view = nopView{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Orchestrator{
		entitlements: NewEntitlements(store),
		api:          api,
		checkout:     checkout,
		view:         view,
		notifier:     notifier,
		opts:         opts,
		now:          time.Now,
		inFlight:     make(map[string]State),
	}
}

// State returns the current state of the attempt for contentID, or
// StateIdle when none is running.
func (o *Orchestrator) State(contentID string) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if s, ok := o.inFlight[contentID]; ok {
		return s
	}
	return StateIdle
}

// Purchase runs one attempt for item. Content that is already unlocked is
// opened directly without any network call.
func (o *Orchestrator) Purchase(ctx context.Context, item Item) (Entitlement, error) {
	id := strings.TrimSpace(item.ID)
	if id == "" {
		return Entitlement{}, ErrInvalidContentID
	}

	existing, owned, err := o.entitlements.Get(ctx, id)
	if err != nil {
		return Entitlement{}, err
	}
	if owned {
		return o.openOwned(id, existing), nil
	}

	if strings.TrimSpace(o.opts.KeyID) == "" || o.api == nil || o.checkout == nil {
		o.notifier.Notify(LevelError, msgNotConfigured)
		return Entitlement{}, ErrPaymentNotConfigured
	}

	if !o.begin(id) {
		log.Printf("[purchase] attempt refused, already in flight content_id=%s state=%s", id, o.State(id))
		o.notifier.Notify(LevelInfo, msgInProgress)
		return Entitlement{}, ErrPurchaseInProgress
	}
	defer o.end(id)

	// Another attempt may have unlocked id between the read above and begin.
	existing, owned, err = o.entitlements.Get(ctx, id)
	if err != nil {
		return Entitlement{}, err
	}
	if owned {
		return o.openOwned(id, existing), nil
	}

	o.transition(id, StateIdle, StateOrderRequested)
	return o.run(ctx, id, item)
}

func (o *Orchestrator) openOwned(id string, ent Entitlement) Entitlement {
	log.Printf("[purchase] already unlocked content_id=%s", id)
	o.notifier.Notify(LevelSuccess, msgAlreadyOwned)
	o.view.Open(id)
	return ent
}

func (o *Orchestrator) run(ctx context.Context, id string, item Item) (Entitlement, error) {
	o.notifier.Notify(LevelInfo, msgInitializing)
	order, err := o.api.CreateOrder(ctx, OrderRequest{Amount: item.Price, ContentID: id, ContentTitle: item.Title})
	if err != nil {
		log.Printf("[purchase] create order failed content_id=%s err=%v", id, err)
		o.fail(id, StateOrderRequested, LevelError, msgOrderFailed+err.Error())
		return Entitlement{}, fmt.Errorf("%w: %w", ErrOrderFailed, err)
	}
	log.Printf("[purchase] order created content_id=%s order_id=%s amount=%d", id, order.ID, order.Amount)

	o.transition(id, StateOrderRequested, StateCheckoutOpen)
	result, err := o.openCheckout(ctx, id, item, order)
	if err != nil {
		if errors.Is(err, ErrCheckoutCancelled) {
			o.fail(id, StateCheckoutOpen, LevelWarning, msgCancelled)
		} else {
			o.fail(id, StateCheckoutOpen, LevelError, msgNetwork)
		}
		return Entitlement{}, err
	}

	o.transition(id, StateCheckoutOpen, StateVerifying)
	o.notifier.Notify(LevelInfo, msgVerifying)
	cb := result.Callback
	if cb.OrderID != order.ID {
		log.Printf("[purchase] callback order mismatch content_id=%s order_id=%s callback_order_id=%s", id, order.ID, cb.OrderID)
		o.fail(id, StateVerifying, LevelError, msgVerificationFailed)
		return Entitlement{}, fmt.Errorf("%w: callback for order %q, expected %q", ErrVerificationFailed, cb.OrderID, order.ID)
	}

	verification, err := o.api.VerifyPayment(ctx, cb, id)
	if err != nil {
		log.Printf("[purchase] verify request failed content_id=%s order_id=%s err=%v", id, order.ID, err)
		if errors.Is(err, ErrNetwork) {
			o.fail(id, StateVerifying, LevelError, msgNetwork)
			return Entitlement{}, err
		}
		o.fail(id, StateVerifying, LevelError, msgVerificationFailed)
		return Entitlement{}, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	if !verification.Verified {
		log.Printf("[purchase] verification rejected content_id=%s order_id=%s payment_id=%s", id, cb.OrderID, cb.PaymentID)
		o.fail(id, StateVerifying, LevelError, msgVerificationFailed)
		return Entitlement{}, ErrVerificationFailed
	}

	ent, err := o.entitlements.Grant(ctx, id, Entitlement{
		ContentTitle: item.Title,
		Amount:       item.Price,
		Currency:     entities.CurrencyINR,
		OrderID:      cb.OrderID,
		PaymentID:    cb.PaymentID,
		Signature:    cb.Signature,
		PurchasedAt:  o.now().UTC(),
		Status:       StatusVerified,
	})
	if err != nil {
		log.Printf("[purchase] entitlement write failed content_id=%s payment_id=%s err=%v", id, cb.PaymentID, err)
		o.fail(id, StateVerifying, LevelError, msgNotSaved)
		return Entitlement{}, fmt.Errorf("%w: %w", ErrEntitlementNotSaved, err)
	}

	o.transition(id, StateVerifying, StateUnlocked)
	log.Printf("[purchase] unlocked content_id=%s order_id=%s payment_id=%s", id, cb.OrderID, cb.PaymentID)
	o.notifier.Notify(LevelSuccess, msgUnlocked)
	o.view.Invalidate(id)
	o.view.Open(id)
	return ent, nil
}

// openCheckout waits for the checkout within the configured timeout. A
// dismissal or a cancelled caller context is a cancellation; anything else,
// including the timeout, is a network failure.
func (o *Orchestrator) openCheckout(ctx context.Context, id string, item Item, order entities.Order) (CheckoutResult, error) {
	checkoutCtx, cancel := context.WithTimeout(ctx, o.opts.CheckoutTimeout)
	defer cancel()

	result, err := o.checkout.Open(checkoutCtx, CheckoutRequest{
		KeyID:       o.opts.KeyID,
		OrderID:     order.ID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        o.opts.SiteName,
		Description: "Purchase: " + item.Title,
		ContentID:   id,
	})
	switch {
	case err == nil && result.Completed:
		return result, nil
	case err == nil:
		log.Printf("[purchase] checkout dismissed content_id=%s order_id=%s", id, order.ID)
		return CheckoutResult{}, ErrCheckoutCancelled
	case errors.Is(ctx.Err(), context.Canceled):
		return CheckoutResult{}, fmt.Errorf("%w: %w", ErrCheckoutCancelled, err)
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("[purchase] checkout timed out content_id=%s order_id=%s timeout=%s", id, order.ID, o.opts.CheckoutTimeout)
		return CheckoutResult{}, fmt.Errorf("%w: checkout timed out after %s", ErrNetwork, o.opts.CheckoutTimeout)
	default:
		log.Printf("[purchase] checkout failed content_id=%s order_id=%s err=%v", id, order.ID, err)
		return CheckoutResult{}, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}

// begin claims id for one attempt. The claim is held in StateIdle until
// the attempt moves on.
func (o *Orchestrator) begin(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, busy := o.inFlight[id]; busy {
		return false
	}
	o.inFlight[id] = StateIdle
	return true
}

func (o *Orchestrator) end(id string) {
	o.mu.Lock()
	delete(o.inFlight, id)
	o.mu.Unlock()
}

func (o *Orchestrator) transition(id string, from, to State) {
	o.mu.Lock()
	o.inFlight[id] = to
	o.mu.Unlock()
	o.observe(id, from, to)
}

func (o *Orchestrator) fail(id string, from State, level Level, message string) {
	o.transition(id, from, StateFailed)
	o.notifier.Notify(level, message)
}

func (o *Orchestrator) observe(id string, from, to State) {
	log.Printf("[purchase] state content_id=%s %s -> %s", id, from, to)
	if o.opts.Observer != nil {
		o.opts.Observer(id, from, to)
	}
}

type nopView struct{}

func (nopView) Invalidate(string) {}
func (nopView) Open(string)       {}

type nopNotifier struct{}

func (nopNotifier) Notify(Level, string) {}
