package httpclient

import (
	"net/http"

	"reservation-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerThreshold   = "threshold"
	BreakerConsecutive = "consecutive"
	BreakerRate        = "rate"
)

// InitCircuitBreaker builds the breaker named by breakerType, falling back to
// a consecutive-failures breaker for unknown values.
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSample)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{Timeout: cfg.Timeout}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
