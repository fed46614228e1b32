package usecases

import (
	"context"
	"strings"
	"time"

	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/module/reservation/models/request"
	"reservation-service/internal/module/reservation/models/response"
	"reservation-service/internal/module/reservation/payment"
	"reservation-service/internal/module/reservation/repositories"
	"reservation-service/internal/module/reservation/statemachine"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/lock"
	"reservation-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const (
	TopicCreateReservation    = "create_reservation"
	TopicReservationConfirmed = "reservation_confirmed"
	TopicReservationCancelled = "reservation_cancelled"
)

type usecase struct {
	repo       repositories.Repositories
	log        log.Logger
	publish    message.Publisher
	locker     lock.Locker
	payments   payment.Service
	pendingTTL time.Duration
}

type Usecase interface {
	// http
	CreateReservation(ctx context.Context, payload *request.CreateReservation) (response.Reservation, error)
	FindReservationByID(ctx context.Context, id uuid.UUID) (response.Reservation, error)
	FindAllReservations(ctx context.Context) ([]response.Reservation, error)
	FindReservationsByRoom(ctx context.Context, roomID uuid.UUID) ([]response.Reservation, error)
	GroupReservationsByStatus(ctx context.Context) (response.ReservationsByStatus, error)
	ConfirmReservation(ctx context.Context, id uuid.UUID, payload *request.ConfirmReservation) (response.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (response.Reservation, error)
	TotalEarningsByHotel(ctx context.Context, hotelID uuid.UUID) (response.HotelEarnings, error)
	// message stream
	ConsumeCreateReservationQueue(ctx context.Context, payload *request.CreateReservation) error
	// scheduler
	ExpirePendingReservation(ctx context.Context, payload *request.ReservationExpiration) error
}

// New builds the reservation usecase. A pendingTTL of zero disables
// automatic expiry of pending reservations.
func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, locker lock.Locker, payments payment.Service, pendingTTL time.Duration) Usecase {
	return &usecase{
		repo:       repo,
		log:        log,
		publish:    publish,
		locker:     locker,
		payments:   payments,
		pendingTTL: pendingTTL,
	}
}

func (u *usecase) CreateReservation(ctx context.Context, payload *request.CreateReservation) (response.Reservation, error) {
	checkIn, err := time.Parse(request.DateLayout, payload.CheckInDate)
	if err != nil {
		return response.Reservation{}, errors.BadRequest("check-in date must be formatted as YYYY-MM-DD")
	}
	checkOut, err := time.Parse(request.DateLayout, payload.CheckOutDate)
	if err != nil {
		return response.Reservation{}, errors.BadRequest("check-out date must be formatted as YYYY-MM-DD")
	}
	if !checkOut.After(checkIn) {
		return response.Reservation{}, errors.BadRequest("check-out date must be after check-in date")
	}
	if payload.PeopleCount <= 0 {
		return response.Reservation{}, errors.BadRequest("people count must be greater than zero")
	}

	room, err := u.repo.FindRoomByID(ctx, payload.RoomID)
	if err != nil {
		return response.Reservation{}, err
	}
	if room == nil {
		return response.Reservation{}, errors.NotFound("room", payload.RoomID.String())
	}

	guest, err := u.repo.FindGuestByID(ctx, payload.GuestID)
	if err != nil {
		return response.Reservation{}, err
	}
	if guest == nil {
		return response.Reservation{}, errors.NotFound("guest", payload.GuestID.String())
	}

	reservation := entity.Reservation{
		ID:           uuid.New(),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		PeopleCount:  payload.PeopleCount,
		Status:       entity.StatusPending,
		RoomID:       room.ID,
		GuestID:      guest.ID,
	}

	if err := u.repo.InsertReservation(ctx, &reservation); err != nil {
		return response.Reservation{}, err
	}

	u.log.Info(ctx, "reservation created", zap.String("reservation_id", reservation.ID.String()))

	if u.pendingTTL > 0 {
		u.scheduleExpiry(ctx, reservation.ID)
	}

	return toReservationResponse(reservation), nil
}

func (u *usecase) ConsumeCreateReservationQueue(ctx context.Context, payload *request.CreateReservation) error {
	_, err := u.CreateReservation(ctx, payload)
	return err
}

func (u *usecase) FindReservationByID(ctx context.Context, id uuid.UUID) (response.Reservation, error) {
	reservation, err := u.repo.FindReservationByID(ctx, id)
	if err != nil {
		return response.Reservation{}, err
	}
	if reservation == nil {
		return response.Reservation{}, errors.NotFound("reservation", id.String())
	}

	return toReservationResponse(*reservation), nil
}

func (u *usecase) FindAllReservations(ctx context.Context) ([]response.Reservation, error) {
	reservations, err := u.repo.FindAllReservations(ctx)
	if err != nil {
		return nil, err
	}

	return toReservationResponses(reservations), nil
}

func (u *usecase) FindReservationsByRoom(ctx context.Context, roomID uuid.UUID) ([]response.Reservation, error) {
	exists, err := u.repo.ExistsRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound("room", roomID.String())
	}

	reservations, err := u.repo.FindReservationsByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return toReservationResponses(reservations), nil
}

func (u *usecase) GroupReservationsByStatus(ctx context.Context) (response.ReservationsByStatus, error) {
	reservations, err := u.repo.FindAllReservations(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(response.ReservationsByStatus, len(entity.ReservationStatuses))
	for _, status := range entity.ReservationStatuses {
		grouped[status] = []response.Reservation{}
	}
	for _, r := range reservations {
		grouped[r.Status] = append(grouped[r.Status], toReservationResponse(r))
	}

	return grouped, nil
}

// ConfirmReservation moves a pending reservation to confirmed and records its
// payment. Both happen in one transaction under the reservation lock, so a
// failing payment leaves the reservation untouched.
func (u *usecase) ConfirmReservation(ctx context.Context, id uuid.UUID, payload *request.ConfirmReservation) (response.Reservation, error) {
	span, ctx := apm.StartSpan(ctx, "reservation.confirm", "app")
	defer span.End()

	method := entity.PaymentMethod(strings.ToUpper(strings.TrimSpace(payload.PaymentMethod)))

	var confirmed *entity.Reservation
	err := u.withReservationLock(ctx, id, func() error {
		return u.repo.WithTransaction(ctx, func(tx repositories.Repositories) error {
			reservation, err := tx.FindReservationByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if reservation == nil {
				return errors.NotFound("reservation", id.String())
			}

			if err := statemachine.Confirm(reservation); err != nil {
				return err
			}

			p, err := u.payments.ProcessPayment(ctx, tx, payment.Request{
				TotalAmount:       payload.TotalAmount,
				PaymentMethod:     method,
				Reservation:       reservation,
				PaymentPlatformID: payload.PaymentPlatformID,
			})
			if err != nil {
				return err
			}
			reservation.Payment = &p

			if err := tx.UpdateReservationStatus(ctx, reservation.ID, reservation.Status); err != nil {
				return err
			}

			confirmed = reservation
			return nil
		})
	})
	if err != nil {
		u.log.Warn(ctx, "reservation not confirmed", zap.String("reservation_id", id.String()), err)
		return response.Reservation{}, err
	}

	u.log.Info(ctx, "reservation confirmed", zap.String("reservation_id", id.String()))
	u.publishStatusChanged(ctx, TopicReservationConfirmed, confirmed)

	return toReservationResponse(*confirmed), nil
}

// CancelReservation keeps an existing payment as the historical record.
func (u *usecase) CancelReservation(ctx context.Context, id uuid.UUID) (response.Reservation, error) {
	cancelled, err := u.cancel(ctx, id, func(*entity.Reservation) bool { return true })
	if err != nil {
		u.log.Warn(ctx, "reservation not cancelled", zap.String("reservation_id", id.String()), err)
		return response.Reservation{}, err
	}

	return toReservationResponse(*cancelled), nil
}

func (u *usecase) ExpirePendingReservation(ctx context.Context, payload *request.ReservationExpiration) error {
	id, err := uuid.Parse(payload.ReservationID)
	if err != nil {
		return errors.BadRequest("invalid reservation id")
	}

	stillPending := func(r *entity.Reservation) bool { return r.Status == entity.StatusPending }

	_, err = u.cancel(ctx, id, stillPending)
	if errors.IsKind(err, errors.KindNotFound) {
		u.log.Warn(ctx, "expired reservation no longer exists", zap.String("reservation_id", id.String()))
		return nil
	}

	return err
}

// cancel applies the cancel transition when shouldCancel accepts the current
// reservation. A rejected reservation is returned unchanged.
func (u *usecase) cancel(ctx context.Context, id uuid.UUID, shouldCancel func(*entity.Reservation) bool) (*entity.Reservation, error) {
	var (
		result  *entity.Reservation
		changed bool
	)
	err := u.withReservationLock(ctx, id, func() error {
		return u.repo.WithTransaction(ctx, func(tx repositories.Repositories) error {
			reservation, err := tx.FindReservationByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if reservation == nil {
				return errors.NotFound("reservation", id.String())
			}

			result = reservation
			if !shouldCancel(reservation) {
				return nil
			}

			if err := statemachine.Cancel(reservation); err != nil {
				return err
			}
			if err := tx.UpdateReservationStatus(ctx, reservation.ID, reservation.Status); err != nil {
				return err
			}

			changed = true
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if changed {
		u.log.Info(ctx, "reservation cancelled", zap.String("reservation_id", id.String()))
		u.publishStatusChanged(ctx, TopicReservationCancelled, result)
	}

	return result, nil
}

func (u *usecase) withReservationLock(ctx context.Context, id uuid.UUID, fn func() error) error {
	unlock, err := u.locker.Lock(ctx, "reservation:"+id.String())
	if err != nil {
		u.log.Warn(ctx, "error acquire reservation lock", zap.String("reservation_id", id.String()), err)
		return errors.Conflict("reservation is being modified, try again")
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			u.log.Error(ctx, "error release reservation lock", zap.String("reservation_id", id.String()), err)
		}
	}()

	return fn()
}

func (u *usecase) scheduleExpiry(ctx context.Context, id uuid.UUID) {
	payload, err := json.Marshal(request.ReservationExpiration{ReservationID: id.String()})
	if err != nil {
		u.log.Error(ctx, "error marshal reservation expiration", err)
		return
	}

	taskID, err := u.repo.SetTaskScheduler(ctx, u.pendingTTL, payload)
	if err != nil {
		u.log.Error(ctx, "error schedule reservation expiration", zap.String("reservation_id", id.String()), err)
		return
	}

	u.log.Info(ctx, "reservation expiration scheduled",
		zap.String("reservation_id", id.String()),
		zap.String("task_id", taskID))
}

// publishStatusChanged runs after commit; a failure is logged and the
// committed state stands.
func (u *usecase) publishStatusChanged(ctx context.Context, topic string, r *entity.Reservation) {
	if u.publish == nil || r == nil {
		return
	}

	event := request.ReservationStatusChanged{
		ReservationID: r.ID,
		RoomID:        r.RoomID,
		GuestID:       r.GuestID,
		Status:        string(r.Status),
		OccurredAt:    time.Now().UTC(),
	}
	if r.Payment != nil {
		paymentID := r.Payment.ID
		amount := r.Payment.TotalAmount
		event.PaymentID = &paymentID
		event.TotalAmount = &amount
		event.PaymentMethod = string(r.Payment.PaymentMethod)
		if r.Payment.PaymentPlatform != nil {
			event.PlatformCode = payment.NormalizeCode(r.Payment.PaymentPlatform.Code)
		}
	}

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal reservation event", err)
		return
	}

	if err := u.publish.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish reservation event", zap.String("topic", topic), err)
	}
}
