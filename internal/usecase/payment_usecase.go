package usecase

import (
	"context"
	"errors"
	"log"
	"openreaders_payments/internal/domain/entities"
	"openreaders_payments/internal/domain/signature"
	"openreaders_payments/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidSignature      = errors.New("invalid signature")
	ErrVerifierNotConfigured = errors.New("payment verifier not configured")
	ErrInvalidOrderID        = errors.New("invalid order_id")
	ErrPaymentLedgerDisabled = errors.New("payment ledger disabled")
	ErrPaymentRecordNotFound = errors.New("payment record not found")
)

// VerifyPaymentCommand carries the gateway callback forwarded by the reader.
type VerifyPaymentCommand struct {
	OrderID   string
	PaymentID string
	Signature string
	ContentID string
}

// IPaymentUseCase verifies gateway payment callbacks.
//
// Verification confirms payment authenticity after the fact. It does not
// grant access to anything on its own.

type IPaymentUseCase interface {
	VerifyPayment(ctx context.Context, cmd VerifyPaymentCommand) (entities.VerificationResult, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	secret string
	ledger interfaces.IPaymentLedgerRepository
	verify func(orderID, paymentID, claimed, secret string) bool
	now    func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase builds the verifier. ledger may be nil, in which case
// outcomes are only logged.
func NewPaymentUseCase(secret string, ledger interfaces.IPaymentLedgerRepository) *PaymentUseCase {
	return &PaymentUseCase{
		secret: secret,
		ledger: ledger,
		verify: signature.Verify,
		now:    time.Now,
	}
}

func (u *PaymentUseCase) VerifyPayment(ctx context.Context, cmd VerifyPaymentCommand) (entities.VerificationResult, error) {
	log.Printf("[payment][verify] start order_id=%q payment_id=%q content_id=%q", cmd.OrderID, cmd.PaymentID, cmd.ContentID)
	if strings.TrimSpace(cmd.OrderID) == "" || strings.TrimSpace(cmd.PaymentID) == "" || strings.TrimSpace(cmd.Signature) == "" {
		log.Printf("[payment][verify] missing required fields order_id=%q payment_id=%q has_signature=%t",
			cmd.OrderID, cmd.PaymentID, strings.TrimSpace(cmd.Signature) != "")
		return entities.VerificationResult{}, ErrMissingRequiredFields
	}
	if u.secret == "" {
		log.Printf("[payment][verify] secret not configured order_id=%s", cmd.OrderID)
		return entities.VerificationResult{}, ErrVerifierNotConfigured
	}

	result := entities.VerificationResult{
		Verified:  u.verify(cmd.OrderID, cmd.PaymentID, cmd.Signature, u.secret),
		PaymentID: cmd.PaymentID,
		OrderID:   cmd.OrderID,
	}

	if !result.Verified {
		log.Printf("[payment][security] signature mismatch order_id=%s payment_id=%s content_id=%q", cmd.OrderID, cmd.PaymentID, cmd.ContentID)
		u.record(ctx, cmd, entities.PaymentRecordRejected)
		return result, ErrInvalidSignature
	}

	log.Printf("[payment][verify] success order_id=%s payment_id=%s", cmd.OrderID, cmd.PaymentID)
	u.record(ctx, cmd, entities.PaymentRecordVerified)
	return result, nil
}

// record appends the outcome to the ledger. A ledger failure never changes
// the verification result.
func (u *PaymentUseCase) record(ctx context.Context, cmd VerifyPaymentCommand, status entities.PaymentRecordStatus) {
	if u.ledger == nil {
		return
	}
	rec := entities.PaymentRecord{
		ID:        uuid.NewString(),
		OrderID:   cmd.OrderID,
		PaymentID: cmd.PaymentID,
		ContentID: strings.TrimSpace(cmd.ContentID),
		Status:    status,
		CreatedAt: u.now().UTC(),
	}
	if _, err := u.ledger.Create(ctx, rec); err != nil {
		log.Printf("[payment][ledger] record failed order_id=%s status=%s err=%v", rec.OrderID, rec.Status, err)
		return
	}
	log.Printf("[payment][ledger] recorded id=%s order_id=%s status=%s", rec.ID, rec.OrderID, rec.Status)
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if u.ledger == nil {
		return nil, ErrPaymentLedgerDisabled
	}
	records, err := u.ledger.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrPaymentRecordNotFound
	}
	return records, nil
}
