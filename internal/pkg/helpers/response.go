package helpers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"reservation-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Meta struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Kind    errors.Kind       `json:"kind,omitempty"`
	Context map[string]string `json:"context,omitempty"`
}

type Response struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data any, message string) error {
	return RespWithStatus(ctx, log, http.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data any, message string) error {
	return RespWithStatus(ctx, log, http.StatusCreated, data, message)
}

func RespWithStatus(ctx *fiber.Ctx, log *otelzap.Logger, code int, data any, message string) error {
	resp := Response{
		Meta: Meta{
			Code:    code,
			Status:  "success",
			Message: message,
		},
		Data: data,
	}
	return ctx.Status(code).JSON(resp)
}

// RespError renders err. Anything that is not a CustomError is answered with
// a 500 and its detail only goes to the log.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unhandled error: %v", err))
		ce = errors.InternalServerError("internal server error")
	}

	resp := Response{
		Meta: Meta{
			Code:    ce.Code,
			Status:  "error",
			Message: ce.Message,
			Kind:    ce.Kind,
			Context: ce.Context,
		},
	}
	return ctx.Status(ce.Code).JSON(resp)
}
