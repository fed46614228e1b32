package handler

import (
	"context"
	"fmt"

	"reservation-service/internal/module/reservation/models/request"
	"reservation-service/internal/module/reservation/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const DefaultPoisonedTopic = "poisoned_queue"

type ReservationHandler struct {
	Log           *otelzap.Logger
	Validator     *validator.Validate
	Usecase       usecases.Usecase
	Publish       message.Publisher
	PoisonedTopic string
}

func (h *ReservationHandler) parseID(ctx *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(param))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse %s: %v", param, err))
		return uuid.Nil, errors.BadRequest(fmt.Sprintf("invalid %s", param))
	}
	return id, nil
}

func (h *ReservationHandler) CreateReservation(ctx *fiber.Ctx) error {
	var req request.CreateReservation
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateReservation(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create reservation")
}

func (h *ReservationHandler) FindAllReservations(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.FindAllReservations(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error find all reservations: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success find all reservations")
}

func (h *ReservationHandler) FindReservationByID(ctx *fiber.Ctx) error {
	id, err := h.parseID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.FindReservationByID(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error find reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success find reservation")
}

func (h *ReservationHandler) GroupReservationsByStatus(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GroupReservationsByStatus(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error group reservations by status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success group reservations by status")
}

func (h *ReservationHandler) ConfirmReservation(ctx *fiber.Ctx) error {
	id, err := h.parseID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.ConfirmReservation
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.ConfirmReservation(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error confirm reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success confirm reservation")
}

func (h *ReservationHandler) CancelReservation(ctx *fiber.Ctx) error {
	id, err := h.parseID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CancelReservation(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel reservation")
}

func (h *ReservationHandler) FindReservationsByRoom(ctx *fiber.Ctx) error {
	roomID, err := h.parseID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.FindReservationsByRoom(ctx.UserContext(), roomID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error find reservations by room: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success find reservations by room")
}

func (h *ReservationHandler) TotalEarningsByHotel(ctx *fiber.Ctx) error {
	hotelID, err := h.parseID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.TotalEarningsByHotel(ctx.UserContext(), hotelID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error total earnings by hotel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success total earnings by hotel")
}

// ConsumeCreateReservationQueue acks every message; the ones that cannot be
// turned into a reservation are republished to the poisoned topic.
func (h *ReservationHandler) ConsumeCreateReservationQueue(msg *message.Message) error {
	msg.Ack()

	var req request.CreateReservation
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, usecases.TopicCreateReservation, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, usecases.TopicCreateReservation, err)
		return nil
	}

	ctx := context.Background()

	if err := h.Usecase.ConsumeCreateReservationQueue(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume create reservation queue: %v", err))
		h.poison(msg, usecases.TopicCreateReservation, err)
		return nil
	}

	return nil
}

func (h *ReservationHandler) poison(msg *message.Message, topic string, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: topic,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	poisonedTopic := h.PoisonedTopic
	if poisonedTopic == "" {
		poisonedTopic = DefaultPoisonedTopic
	}

	if err := h.Publish.Publish(poisonedTopic, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func (h *ReservationHandler) ExpirePendingReservation(ctx context.Context, t *asynq.Task) error {
	var req request.ReservationExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ExpirePendingReservation(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error expire pending reservation: %v", err))
		return err
	}

	return nil
}
