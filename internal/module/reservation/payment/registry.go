package payment

import (
	"fmt"
	"strings"

	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"
)

const (
	CodePayPal = "PAYPAL"
	CodeStripe = "STRIPE"
)

// Registry maps normalized platform codes to processors. It is filled at
// startup and only read afterwards.
type Registry struct {
	processors map[string]Processor
}

func NewRegistry() *Registry {
	return &Registry{processors: make(map[string]Processor)}
}

// DefaultRegistry knows the PayPal and Stripe placeholders.
func DefaultRegistry(log log.Logger) *Registry {
	r := NewRegistry()
	_ = r.Register(CodePayPal, NewPayPalProcessor(log))
	_ = r.Register(CodeStripe, NewStripeProcessor(log))
	return r
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *Registry) Register(code string, p Processor) error {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return fmt.Errorf("register processor: empty platform code")
	}
	if p == nil {
		return fmt.Errorf("register processor %s: nil processor", normalized)
	}
	if _, ok := r.processors[normalized]; ok {
		return fmt.Errorf("register processor %s: already registered", normalized)
	}
	r.processors[normalized] = p
	return nil
}

func (r *Registry) Resolve(platform entity.PaymentPlatform) (Processor, error) {
	p, ok := r.processors[NormalizeCode(platform.Code)]
	if !ok {
		return nil, errors.UnsupportedPlatform(platform.Code)
	}
	return p, nil
}
