package middleware

import (
	"strings"

	"reservation-service/internal/module/reservation/repositories"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email_user"
	LocalRole   = "role"
)

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// ValidateToken delegates the bearer token to the user service and exposes
// the caller identity through the request locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	token, ok := bearerToken(ctx.Get(fiber.HeaderAuthorization))
	if !ok {
		m.Log.Ctx(ctx.UserContext()).Warn("missing bearer token", zap.String("path", ctx.Path()))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing bearer token"))
	}

	caller, err := m.Repo.ValidateToken(ctx.UserContext(), token)
	if err != nil || !caller.IsValid {
		m.Log.Ctx(ctx.UserContext()).Warn("token rejected", zap.String("path", ctx.Path()), zap.Error(err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	ctx.Locals(LocalUserID, caller.UserID)
	ctx.Locals(LocalEmail, caller.EmailUser)
	ctx.Locals(LocalRole, caller.Role)

	return ctx.Next()
}
