package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

type Kind string

const (
	KindBadRequest            Kind = "BAD_REQUEST"
	KindUnauthorized          Kind = "UNAUTHORIZED"
	KindInternal              Kind = "INTERNAL_SERVER_ERROR"
	KindConflict              Kind = "CONFLICT"
	KindNotFound              Kind = "NOT_FOUND"
	KindInvalidTransition     Kind = "INVALID_TRANSITION"
	KindInvalidPaymentRequest Kind = "INVALID_PAYMENT_REQUEST"
	KindUnsupportedPlatform   Kind = "UNSUPPORTED_PLATFORM"
	KindPaymentProcessing     Kind = "PAYMENT_PROCESSING_FAILED"
)

// CustomError is returned by every layer of the service. Code is the HTTP
// status the transport layer answers with, Context carries the identifiers
// needed to build a precise message (entity id, transition, platform code).
type CustomError struct {
	Code    int               `json:"code"`
	Kind    Kind              `json:"kind"`
	Message string            `json:"message"`
	Context map[string]string `json:"context,omitempty"`
	cause   error
}

func (e CustomError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e CustomError) Unwrap() error {
	return e.cause
}

func BadRequest(msg string) CustomError {
	return CustomError{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: msg}
}

func UnauthorizedError(msg string) CustomError {
	return CustomError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: msg}
}

func InternalServerError(msg string) CustomError {
	return CustomError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: msg}
}

// Internal keeps the infrastructure cause (with its stack) behind a generic message.
func Internal(cause error, msg string) CustomError {
	e := InternalServerError(msg)
	if cause != nil {
		e.cause = pkgerrors.WithStack(cause)
	}
	return e
}

func Conflict(msg string) CustomError {
	return CustomError{Code: http.StatusConflict, Kind: KindConflict, Message: msg}
}

func NotFound(entity, id string) CustomError {
	return CustomError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Context: map[string]string{"entity": entity, "id": id},
	}
}

func InvalidTransition(action, status, reason string) CustomError {
	return CustomError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidTransition,
		Message: reason,
		Context: map[string]string{"action": action, "status": status},
	}
}

func InvalidPaymentRequest(msg string) CustomError {
	return CustomError{Code: http.StatusBadRequest, Kind: KindInvalidPaymentRequest, Message: msg}
}

func UnsupportedPlatform(code string) CustomError {
	return CustomError{
		Code:    http.StatusBadRequest,
		Kind:    KindUnsupportedPlatform,
		Message: fmt.Sprintf("unsupported payment platform: %s", code),
		Context: map[string]string{"code": code},
	}
}

func PaymentProcessingFailed(code string, cause error) CustomError {
	return CustomError{
		Code:    http.StatusBadGateway,
		Kind:    KindPaymentProcessing,
		Message: fmt.Sprintf("payment processing failed on platform %s", code),
		Context: map[string]string{"code": code},
		cause:   cause,
	}
}

// KindOf reports the kind of the first CustomError in err's chain.
func KindOf(err error) Kind {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
