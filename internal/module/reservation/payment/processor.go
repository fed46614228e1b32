package payment

import (
	"context"

	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/pkg/log"

	"go.uber.org/zap"
)

// Processor runs the platform specific side effect of a transfer payment.
// It receives the payment before it is persisted and may block on I/O.
type Processor interface {
	Process(ctx context.Context, payment *entity.Payment) error
}

type ProcessorFunc func(ctx context.Context, payment *entity.Payment) error

func (f ProcessorFunc) Process(ctx context.Context, payment *entity.Payment) error {
	return f(ctx, payment)
}

type payPalProcessor struct {
	log log.Logger
}

func NewPayPalProcessor(log log.Logger) Processor {
	return &payPalProcessor{log: log}
}

// Process stands in for the PayPal gateway call.
func (p *payPalProcessor) Process(ctx context.Context, payment *entity.Payment) error {
	p.log.Info(ctx, "paypal processing started", zap.String("payment_id", payment.ID.String()))
	p.log.Info(ctx, "paypal processing completed", zap.String("payment_id", payment.ID.String()))
	return nil
}

type stripeProcessor struct {
	log log.Logger
}

func NewStripeProcessor(log log.Logger) Processor {
	return &stripeProcessor{log: log}
}

// Process stands in for the Stripe gateway call.
func (p *stripeProcessor) Process(ctx context.Context, payment *entity.Payment) error {
	p.log.Info(ctx, "stripe processing started", zap.String("payment_id", payment.ID.String()))
	p.log.Info(ctx, "stripe processing completed", zap.String("payment_id", payment.ID.String()))
	return nil
}
