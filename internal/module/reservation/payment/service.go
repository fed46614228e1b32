package payment

import (
	"context"
	stderrors "errors"
	"fmt"

	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

// Store is the slice of persistence the payment flow needs. It is usually
// bound to the transaction of the confirmation in progress.
type Store interface {
	FindActivePaymentPlatformByID(ctx context.Context, id uuid.UUID) (*entity.PaymentPlatform, error)
	InsertPayment(ctx context.Context, payment *entity.Payment) error
}

type Request struct {
	TotalAmount       *decimal.Decimal
	PaymentMethod     entity.PaymentMethod
	Reservation       *entity.Reservation
	PaymentPlatformID *uuid.UUID
}

// Amounts are stored as NUMERIC(12,2).
const amountScale = 2

var maxAmount = decimal.New(1, 10)

type Service interface {
	ProcessPayment(ctx context.Context, store Store, req Request) (entity.Payment, error)
}

type service struct {
	registry *Registry
	log      log.Logger
}

func NewService(registry *Registry, log log.Logger) Service {
	return &service{
		registry: registry,
		log:      log,
	}
}

func (s *service) ProcessPayment(ctx context.Context, store Store, req Request) (entity.Payment, error) {
	if req.Reservation == nil {
		return entity.Payment{}, errors.InvalidPaymentRequest("payment must settle a reservation")
	}
	if req.TotalAmount == nil {
		return entity.Payment{}, errors.InvalidPaymentRequest("total amount is required")
	}
	if req.TotalAmount.IsNegative() {
		return entity.Payment{}, errors.InvalidPaymentRequest("total amount must not be negative")
	}
	if !req.TotalAmount.Equal(req.TotalAmount.Round(amountScale)) {
		return entity.Payment{}, errors.InvalidPaymentRequest("total amount must have at most two decimal places")
	}
	if req.TotalAmount.GreaterThanOrEqual(maxAmount) {
		return entity.Payment{}, errors.InvalidPaymentRequest("total amount exceeds the supported range")
	}

	s.log.Info(ctx, "starting payment process",
		zap.String("reservation_id", req.Reservation.ID.String()),
		zap.String("total_amount", req.TotalAmount.String()))

	payment := entity.Payment{
		ID:            uuid.New(),
		ReservationID: req.Reservation.ID,
		TotalAmount:   *req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
	}

	switch req.PaymentMethod {
	case entity.PaymentMethodCash:
		if req.PaymentPlatformID != nil {
			s.log.Warn(ctx, "cash payment received with a platform", zap.String("payment_platform_id", req.PaymentPlatformID.String()))
			return entity.Payment{}, errors.InvalidPaymentRequest("cash payments must not specify a platform")
		}
	case entity.PaymentMethodTransfer:
		if req.PaymentPlatformID == nil {
			return entity.Payment{}, errors.InvalidPaymentRequest("transfer payments require a platform")
		}
		if err := s.dispatch(ctx, store, *req.PaymentPlatformID, &payment); err != nil {
			return entity.Payment{}, err
		}
	default:
		return entity.Payment{}, errors.InvalidPaymentRequest(fmt.Sprintf("unsupported payment method: %s", req.PaymentMethod))
	}

	if err := store.InsertPayment(ctx, &payment); err != nil {
		return entity.Payment{}, err
	}

	s.log.Info(ctx, "payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("payment_method", string(payment.PaymentMethod)))

	return payment, nil
}

// dispatch resolves the active platform and runs its processor on payment.
func (s *service) dispatch(ctx context.Context, store Store, platformID uuid.UUID, payment *entity.Payment) error {
	platform, err := store.FindActivePaymentPlatformByID(ctx, platformID)
	if err != nil {
		return err
	}
	if platform == nil {
		return errors.NotFound("payment platform", platformID.String())
	}

	processor, err := s.registry.Resolve(*platform)
	if err != nil {
		return err
	}

	payment.PaymentPlatformID = uuid.NullUUID{UUID: platform.ID, Valid: true}
	payment.PaymentPlatform = platform

	span, spanCtx := apm.StartSpan(ctx, "payment.process "+NormalizeCode(platform.Code), "payment.processor")
	err = processor.Process(spanCtx, payment)
	span.End()

	if err != nil {
		s.log.Error(ctx, "payment processor failed", zap.String("code", platform.Code), err)
		var ce errors.CustomError
		if stderrors.As(err, &ce) && ce.Kind == errors.KindPaymentProcessing {
			return ce
		}
		return errors.PaymentProcessingFailed(NormalizeCode(platform.Code), err)
	}

	s.log.Info(ctx, "payment processed", zap.String("code", platform.Code))
	return nil
}
