package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"openreaders_payments/internal/domain/entities"
	"openreaders_payments/internal/domain/signature"
	mock_interfaces "openreaders_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testSecret = "test_secret"

func TestPaymentUseCase_VerifyPayment_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		cmd  VerifyPaymentCommand
	}{
		{name: "missing order id", cmd: VerifyPaymentCommand{PaymentID: "pay_1", Signature: "sig"}},
		{name: "missing payment id", cmd: VerifyPaymentCommand{OrderID: "order_1", Signature: "sig"}},
		{name: "missing signature", cmd: VerifyPaymentCommand{OrderID: "order_1", PaymentID: "pay_1"}},
		{name: "blank signature", cmd: VerifyPaymentCommand{OrderID: "order_1", PaymentID: "pay_1", Signature: "  "}},
		{name: "all missing", cmd: VerifyPaymentCommand{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
			uc := NewPaymentUseCase(testSecret, ledger)
			uc.verify = func(_, _, _, _ string) bool {
				t.Fatalf("signature must not be computed when fields are missing")
				return false
			}

			_, err := uc.VerifyPayment(context.Background(), tc.cmd)
			if !errors.Is(err, ErrMissingRequiredFields) {
				t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
			}
		})
	}
}

func TestPaymentUseCase_VerifyPayment_SecretNotConfigured(t *testing.T) {
	uc := NewPaymentUseCase("", nil)
	_, err := uc.VerifyPayment(context.Background(), VerifyPaymentCommand{OrderID: "o", PaymentID: "p", Signature: "s"})
	if !errors.Is(err, ErrVerifierNotConfigured) {
		t.Fatalf("expected ErrVerifierNotConfigured, got %v", err)
	}
}

func TestPaymentUseCase_VerifyPayment_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
	uc := NewPaymentUseCase(testSecret, ledger)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return now }

	ledger.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentRecord{})).DoAndReturn(
		func(_ context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error) {
			if r.ID == "" || r.OrderID != "order_b1" || r.PaymentID != "pay_b1" || r.ContentID != "b1" {
				t.Fatalf("unexpected record %+v", r)
			}
			if r.Status != entities.PaymentRecordVerified || !r.CreatedAt.Equal(now) {
				t.Fatalf("unexpected record status/time %+v", r)
			}
			return r, nil
		},
	)

	sig := signature.Sign("order_b1", "pay_b1", testSecret)
	res, err := uc.VerifyPayment(context.Background(), VerifyPaymentCommand{OrderID: "order_b1", PaymentID: "pay_b1", Signature: sig, ContentID: "b1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Verified || res.OrderID != "order_b1" || res.PaymentID != "pay_b1" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestPaymentUseCase_VerifyPayment_KnownSignature(t *testing.T) {
	uc := NewPaymentUseCase(testSecret, nil)
	res, err := uc.VerifyPayment(context.Background(), VerifyPaymentCommand{
		OrderID:   "order_b1",
		PaymentID: "pay_b1",
		Signature: "34310a3f4a6ddf0a89aa54b88da88b7044223a053280506df5edc6832ab51424",
	})
	if err != nil || !res.Verified {
		t.Fatalf("expected verified, got %+v err=%v", res, err)
	}
}

func TestPaymentUseCase_VerifyPayment_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
	uc := NewPaymentUseCase(testSecret, ledger)

	ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error) {
			if r.Status != entities.PaymentRecordRejected {
				t.Fatalf("expected rejected record, got %s", r.Status)
			}
			return r, nil
		},
	)

	res, err := uc.VerifyPayment(context.Background(), VerifyPaymentCommand{OrderID: "order_b1", PaymentID: "pay_b1", Signature: "deadbeef"})
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if res.Verified {
		t.Fatalf("expected unverified result")
	}
}

func TestPaymentUseCase_VerifyPayment_LedgerFailureKeepsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
	uc := NewPaymentUseCase(testSecret, ledger)

	ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, errors.New("dynamodb down"))

	sig := signature.Sign("order_1", "pay_1", testSecret)
	res, err := uc.VerifyPayment(context.Background(), VerifyPaymentCommand{OrderID: "order_1", PaymentID: "pay_1", Signature: sig})
	if err != nil || !res.Verified {
		t.Fatalf("expected verified despite ledger failure, got %+v err=%v", res, err)
	}
}

func TestPaymentUseCase_ListByOrderID(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPaymentUseCase(testSecret, nil)
		if _, err := uc.ListByOrderID(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("ledger disabled", func(t *testing.T) {
		uc := NewPaymentUseCase(testSecret, nil)
		if _, err := uc.ListByOrderID(context.Background(), "order_1"); !errors.Is(err, ErrPaymentLedgerDisabled) {
			t.Fatalf("expected ErrPaymentLedgerDisabled, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
		uc := NewPaymentUseCase(testSecret, ledger)

		ledger.EXPECT().ListByOrderID(gomock.Any(), "order_1").Return(nil, errors.New("db"))

		if _, err := uc.ListByOrderID(context.Background(), "order_1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
		uc := NewPaymentUseCase(testSecret, ledger)

		ledger.EXPECT().ListByOrderID(gomock.Any(), "order_1").Return([]entities.PaymentRecord{}, nil)

		if _, err := uc.ListByOrderID(context.Background(), "order_1"); !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
		uc := NewPaymentUseCase(testSecret, ledger)

		ledger.EXPECT().ListByOrderID(gomock.Any(), "order_1").Return([]entities.PaymentRecord{{ID: "r1", OrderID: "order_1"}}, nil)

		records, err := uc.ListByOrderID(context.Background(), " order_1 ")
		if err != nil || len(records) != 1 || records[0].ID != "r1" {
			t.Fatalf("unexpected records %+v err=%v", records, err)
		}
	})
}
