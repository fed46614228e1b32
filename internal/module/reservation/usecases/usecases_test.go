package usecases_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"reservation-service/internal/module/reservation/mocks"
	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/module/reservation/models/request"
	"reservation-service/internal/module/reservation/payment"
	"reservation-service/internal/module/reservation/repositories"
	"reservation-service/internal/module/reservation/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/lock"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mu       sync.Mutex
	messages map[string][]*message.Message
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[topic] = append(m.messages[topic], messages...)
	return nil
}

func (m *mockPublisher) count(topic string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages[topic])
}

func NewMockPublisher() *mockPublisher {
	return &mockPublisher{messages: make(map[string][]*message.Message)}
}

type recordingProcessor struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *recordingProcessor) Process(context.Context, *entity.Payment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.err
}

type fixture struct {
	uc        usecases.Usecase
	repoMock  *mocks.Repositories
	publisher *mockPublisher
	processor *recordingProcessor
}

func setup(t *testing.T, pendingTTL time.Duration) *fixture {
	repoMock := mocks.NewRepositories(t)
	publisher := NewMockPublisher()
	processor := &recordingProcessor{}
	logger := log_internal.GetLogger()

	registry := payment.NewRegistry()
	require.NoError(t, registry.Register("PP", processor))

	uc := usecases.New(repoMock, logger, publisher, lock.NewLocalLocker(), payment.NewService(registry, logger), pendingTTL)

	return &fixture{uc: uc, repoMock: repoMock, publisher: publisher, processor: processor}
}

// expectTransaction makes WithTransaction run its callback against the mock.
func (f *fixture) expectTransaction() {
	f.repoMock.On("WithTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(repositories.Repositories) error) error {
			return fn(f.repoMock)
		})
}

// expectStored serves reservation from FindReservationByIDForUpdate and
// applies status updates to it, like a single locked row would.
func (f *fixture) expectStored(reservation entity.Reservation) *entity.Reservation {
	var mu sync.Mutex
	stored := reservation

	f.repoMock.On("FindReservationByIDForUpdate", mock.Anything, reservation.ID).
		Return(func(context.Context, uuid.UUID) (*entity.Reservation, error) {
			mu.Lock()
			defer mu.Unlock()
			cp := stored
			return &cp, nil
		}).Maybe()
	f.repoMock.On("UpdateReservationStatus", mock.Anything, reservation.ID, mock.Anything).
		Return(func(_ context.Context, _ uuid.UUID, status entity.ReservationStatus) error {
			mu.Lock()
			defer mu.Unlock()
			stored.Status = status
			return nil
		}).Maybe()

	return &stored
}

func newReservation(status entity.ReservationStatus) entity.Reservation {
	return entity.Reservation{
		ID:           uuid.New(),
		CheckInDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		PeopleCount:  2,
		Status:       status,
		RoomID:       uuid.New(),
		GuestID:      uuid.New(),
	}
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateReservation(t *testing.T) {
	room := &entity.Room{ID: uuid.New(), HotelID: uuid.New(), Code: "101", Capacity: 2}
	guest := &entity.Guest{User: entity.User{ID: uuid.New(), Name: "Ana", Role: entity.RoleGuest}}

	payload := func() *request.CreateReservation {
		return &request.CreateReservation{
			CheckInDate:  "2024-03-01",
			CheckOutDate: "2024-03-04",
			PeopleCount:  2,
			RoomID:       room.ID,
			GuestID:      guest.ID,
		}
	}

	t.Run("success", func(t *testing.T) {
		f := setup(t, 0)

		f.repoMock.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil).Once()
		f.repoMock.On("FindGuestByID", mock.Anything, guest.ID).Return(guest, nil).Once()
		f.repoMock.On("InsertReservation", mock.Anything, mock.AnythingOfType("*entity.Reservation")).Return(nil).Once()

		resp, err := f.uc.CreateReservation(context.Background(), payload())

		require.NoError(t, err)
		assert.Equal(t, string(entity.StatusPending), resp.Status)
		assert.Equal(t, "2024-03-01", resp.CheckInDate)
		assert.Equal(t, "2024-03-04", resp.CheckOutDate)
		assert.Equal(t, room.ID, resp.RoomID)
		assert.Equal(t, guest.ID, resp.GuestID)
		assert.Nil(t, resp.Payment)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		f.repoMock.AssertNotCalled(t, "SetTaskScheduler", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("schedules expiry when a pending ttl is set", func(t *testing.T) {
		f := setup(t, 15*time.Minute)

		f.repoMock.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil).Once()
		f.repoMock.On("FindGuestByID", mock.Anything, guest.ID).Return(guest, nil).Once()
		f.repoMock.On("InsertReservation", mock.Anything, mock.AnythingOfType("*entity.Reservation")).Return(nil).Once()
		f.repoMock.On("SetTaskScheduler", mock.Anything, 15*time.Minute, mock.Anything).Return("task-1", nil).Once()

		resp, err := f.uc.CreateReservation(context.Background(), payload())

		require.NoError(t, err)
		call := f.repoMock.Calls[len(f.repoMock.Calls)-1]
		var expiration request.ReservationExpiration
		require.NoError(t, json.Unmarshal(call.Arguments.Get(2).([]byte), &expiration))
		assert.Equal(t, resp.ID.String(), expiration.ReservationID)
	})

	t.Run("scheduler failure does not fail the reservation", func(t *testing.T) {
		f := setup(t, time.Minute)

		f.repoMock.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil).Once()
		f.repoMock.On("FindGuestByID", mock.Anything, guest.ID).Return(guest, nil).Once()
		f.repoMock.On("InsertReservation", mock.Anything, mock.AnythingOfType("*entity.Reservation")).Return(nil).Once()
		f.repoMock.On("SetTaskScheduler", mock.Anything, time.Minute, mock.Anything).Return("", stderrors.New("redis down")).Once()

		_, err := f.uc.CreateReservation(context.Background(), payload())
		assert.NoError(t, err)
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		f := setup(t, 0)

		p := payload()
		p.CheckOutDate = p.CheckInDate

		_, err := f.uc.CreateReservation(context.Background(), p)

		assert.True(t, errors.IsKind(err, errors.KindBadRequest))
		f.repoMock.AssertNotCalled(t, "InsertReservation", mock.Anything, mock.Anything)
	})

	t.Run("room not found", func(t *testing.T) {
		f := setup(t, 0)

		f.repoMock.On("FindRoomByID", mock.Anything, room.ID).Return(nil, nil).Once()

		_, err := f.uc.CreateReservation(context.Background(), payload())

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
		f.repoMock.AssertNotCalled(t, "InsertReservation", mock.Anything, mock.Anything)
	})

	t.Run("guest not found", func(t *testing.T) {
		f := setup(t, 0)

		f.repoMock.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil).Once()
		f.repoMock.On("FindGuestByID", mock.Anything, guest.ID).Return(nil, nil).Once()

		_, err := f.uc.CreateReservation(context.Background(), payload())

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
		f.repoMock.AssertNotCalled(t, "InsertReservation", mock.Anything, mock.Anything)
	})
}

func TestConfirmReservation(t *testing.T) {
	t.Run("cash", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)

		f.expectTransaction()
		stored := f.expectStored(reservation)
		f.repoMock.On("InsertPayment", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil).Once()

		resp, err := f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:   amount("80.00"),
			PaymentMethod: "cash",
		})

		require.NoError(t, err)
		assert.Equal(t, string(entity.StatusConfirmed), resp.Status)
		require.NotNil(t, resp.Payment)
		assert.Equal(t, string(entity.PaymentMethodCash), resp.Payment.PaymentMethod)
		assert.True(t, decimal.RequireFromString("80").Equal(resp.Payment.TotalAmount))
		assert.Nil(t, resp.Payment.PaymentPlatform)
		assert.Equal(t, entity.StatusConfirmed, stored.Status)
		assert.Equal(t, 0, f.processor.calls)
		assert.Equal(t, 1, f.publisher.count(usecases.TopicReservationConfirmed))
	})

	t.Run("transfer dispatches to the platform processor", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)
		platformID := uuid.New()

		f.expectTransaction()
		f.expectStored(reservation)
		f.repoMock.On("FindActivePaymentPlatformByID", mock.Anything, platformID).
			Return(&entity.PaymentPlatform{ID: platformID, Name: "Pay Pal", Code: "PP", Active: true}, nil).Once()
		f.repoMock.On("InsertPayment", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil).Once()

		resp, err := f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:       amount("150.00"),
			PaymentMethod:     "TRANSFER",
			PaymentPlatformID: &platformID,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, f.processor.calls)
		require.NotNil(t, resp.Payment)
		require.NotNil(t, resp.Payment.PaymentPlatform)
		assert.Equal(t, "PP", resp.Payment.PaymentPlatform.Code)
	})

	t.Run("processor failure leaves the reservation pending", func(t *testing.T) {
		f := setup(t, 0)
		f.processor.err = stderrors.New("card declined")
		reservation := newReservation(entity.StatusPending)
		platformID := uuid.New()

		f.expectTransaction()
		stored := f.expectStored(reservation)
		f.repoMock.On("FindActivePaymentPlatformByID", mock.Anything, platformID).
			Return(&entity.PaymentPlatform{ID: platformID, Code: "pp", Active: true}, nil).Once()

		_, err := f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:       amount("150.00"),
			PaymentMethod:     "TRANSFER",
			PaymentPlatformID: &platformID,
		})

		assert.True(t, errors.IsKind(err, errors.KindPaymentProcessing))
		assert.Equal(t, entity.StatusPending, stored.Status)
		f.repoMock.AssertNotCalled(t, "InsertPayment", mock.Anything, mock.Anything)
		f.repoMock.AssertNotCalled(t, "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.publisher.count(usecases.TopicReservationConfirmed))
	})

	t.Run("invalid payment request", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)

		f.expectTransaction()
		stored := f.expectStored(reservation)

		_, err := f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:   amount("10"),
			PaymentMethod: "BITCOIN",
		})

		assert.True(t, errors.IsKind(err, errors.KindInvalidPaymentRequest))
		assert.Equal(t, entity.StatusPending, stored.Status)
	})

	t.Run("already confirmed", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusConfirmed)

		f.expectTransaction()
		f.expectStored(reservation)

		_, err := f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:   amount("80"),
			PaymentMethod: "CASH",
		})

		assert.True(t, errors.IsKind(err, errors.KindInvalidTransition))
		f.repoMock.AssertNotCalled(t, "InsertPayment", mock.Anything, mock.Anything)
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusCancelled)

		f.expectTransaction()
		f.expectStored(reservation)

		_, err := f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:   amount("80"),
			PaymentMethod: "CASH",
		})

		assert.True(t, errors.IsKind(err, errors.KindInvalidTransition))
		assert.Equal(t, "reservation is already cancelled", err.(errors.CustomError).Message)
		f.repoMock.AssertNotCalled(t, "InsertPayment", mock.Anything, mock.Anything)
	})

	t.Run("publisher unavailable does not undo the confirmation", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)
		uc := usecases.New(f.repoMock, log_internal.GetLogger(), messagestream.NewNopPublisher(watermill.NopLogger{}),
			lock.NewLocalLocker(), payment.NewService(payment.NewRegistry(), log_internal.GetLogger()), 0)

		f.expectTransaction()
		stored := f.expectStored(reservation)
		f.repoMock.On("InsertPayment", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil).Once()

		resp, err := uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:   amount("80.00"),
			PaymentMethod: "CASH",
		})

		require.NoError(t, err)
		assert.Equal(t, string(entity.StatusConfirmed), resp.Status)
		assert.Equal(t, entity.StatusConfirmed, stored.Status)
	})

	t.Run("without a publisher", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)
		uc := usecases.New(f.repoMock, log_internal.GetLogger(), nil,
			lock.NewLocalLocker(), payment.NewService(payment.NewRegistry(), log_internal.GetLogger()), 0)

		f.expectTransaction()
		f.expectStored(reservation)
		f.repoMock.On("InsertPayment", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil).Once()

		_, err := uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
			TotalAmount:   amount("80.00"),
			PaymentMethod: "CASH",
		})

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t, 0)
		id := uuid.New()

		f.expectTransaction()
		f.repoMock.On("FindReservationByIDForUpdate", mock.Anything, id).Return(nil, nil).Once()

		_, err := f.uc.ConfirmReservation(context.Background(), id, &request.ConfirmReservation{
			TotalAmount:   amount("80"),
			PaymentMethod: "CASH",
		})

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
	})

	t.Run("concurrent confirms settle exactly once", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)

		f.expectTransaction()
		stored := f.expectStored(reservation)
		f.repoMock.On("InsertPayment", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil).Once()

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			rejected  int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
					TotalAmount:   amount("80"),
					PaymentMethod: "CASH",
				})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					succeeded++
				} else if errors.IsKind(err, errors.KindInvalidTransition) {
					rejected++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, workers-1, rejected)
		assert.Equal(t, entity.StatusConfirmed, stored.Status)
	})

	t.Run("cancel racing confirm never cancels without payment", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			f := setup(t, 0)
			reservation := newReservation(entity.StatusPending)

			f.expectTransaction()
			stored := f.expectStored(reservation)

			var (
				mu       sync.Mutex
				payments int
			)
			f.repoMock.On("InsertPayment", mock.Anything, mock.AnythingOfType("*entity.Payment")).
				Return(func(context.Context, *entity.Payment) error {
					mu.Lock()
					defer mu.Unlock()
					payments++
					return nil
				}).Maybe()

			var wg sync.WaitGroup
			var confirmErr, cancelErr error
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, confirmErr = f.uc.ConfirmReservation(context.Background(), reservation.ID, &request.ConfirmReservation{
					TotalAmount:   amount("80.00"),
					PaymentMethod: "CASH",
				})
			}()
			go func() {
				defer wg.Done()
				_, cancelErr = f.uc.CancelReservation(context.Background(), reservation.ID)
			}()
			wg.Wait()

			require.NoError(t, cancelErr)
			assert.Equal(t, entity.StatusCancelled, stored.Status)
			if confirmErr == nil {
				assert.Equal(t, 1, payments, "confirmed before the cancel")
			} else {
				assert.True(t, errors.IsKind(confirmErr, errors.KindInvalidTransition))
				assert.Equal(t, 0, payments, "cancelled before the confirm")
			}
		}
	})
}

func TestCancelReservation(t *testing.T) {
	t.Run("pending", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)

		f.expectTransaction()
		stored := f.expectStored(reservation)

		resp, err := f.uc.CancelReservation(context.Background(), reservation.ID)

		require.NoError(t, err)
		assert.Equal(t, string(entity.StatusCancelled), resp.Status)
		assert.Equal(t, entity.StatusCancelled, stored.Status)
		assert.Equal(t, 1, f.publisher.count(usecases.TopicReservationCancelled))
	})

	t.Run("confirmed keeps its payment", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusConfirmed)
		reservation.Payment = &entity.Payment{
			ID:            uuid.New(),
			ReservationID: reservation.ID,
			TotalAmount:   decimal.RequireFromString("80"),
			PaymentMethod: entity.PaymentMethodCash,
		}

		f.expectTransaction()
		f.expectStored(reservation)

		resp, err := f.uc.CancelReservation(context.Background(), reservation.ID)

		require.NoError(t, err)
		assert.Equal(t, string(entity.StatusCancelled), resp.Status)
		require.NotNil(t, resp.Payment)
		assert.Equal(t, reservation.Payment.ID, resp.Payment.ID)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusCancelled)

		f.expectTransaction()
		f.expectStored(reservation)

		_, err := f.uc.CancelReservation(context.Background(), reservation.ID)

		assert.True(t, errors.IsKind(err, errors.KindInvalidTransition))
		f.repoMock.AssertNotCalled(t, "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.publisher.count(usecases.TopicReservationCancelled))
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t, 0)
		id := uuid.New()

		f.expectTransaction()
		f.repoMock.On("FindReservationByIDForUpdate", mock.Anything, id).Return(nil, nil).Once()

		_, err := f.uc.CancelReservation(context.Background(), id)

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
	})
}

func TestExpirePendingReservation(t *testing.T) {
	t.Run("pending is cancelled", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)

		f.expectTransaction()
		stored := f.expectStored(reservation)

		err := f.uc.ExpirePendingReservation(context.Background(), &request.ReservationExpiration{ReservationID: reservation.ID.String()})

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, stored.Status)
	})

	t.Run("confirmed is left alone", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusConfirmed)

		f.expectTransaction()
		stored := f.expectStored(reservation)

		err := f.uc.ExpirePendingReservation(context.Background(), &request.ReservationExpiration{ReservationID: reservation.ID.String()})

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, stored.Status)
		f.repoMock.AssertNotCalled(t, "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deleted reservation", func(t *testing.T) {
		f := setup(t, 0)
		id := uuid.New()

		f.expectTransaction()
		f.repoMock.On("FindReservationByIDForUpdate", mock.Anything, id).Return(nil, nil).Once()

		err := f.uc.ExpirePendingReservation(context.Background(), &request.ReservationExpiration{ReservationID: id.String()})
		assert.NoError(t, err)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := setup(t, 0)

		err := f.uc.ExpirePendingReservation(context.Background(), &request.ReservationExpiration{ReservationID: "nope"})
		assert.True(t, errors.IsKind(err, errors.KindBadRequest))
	})
}

func TestFindReservationByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := setup(t, 0)
		reservation := newReservation(entity.StatusPending)

		f.repoMock.On("FindReservationByID", mock.Anything, reservation.ID).Return(&reservation, nil).Once()

		resp, err := f.uc.FindReservationByID(context.Background(), reservation.ID)

		require.NoError(t, err)
		assert.Equal(t, reservation.ID, resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t, 0)
		id := uuid.New()

		f.repoMock.On("FindReservationByID", mock.Anything, id).Return(nil, nil).Once()

		_, err := f.uc.FindReservationByID(context.Background(), id)

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
	})
}

func TestFindReservationsByRoom(t *testing.T) {
	t.Run("room with reservations", func(t *testing.T) {
		f := setup(t, 0)
		roomID := uuid.New()
		r1, r2 := newReservation(entity.StatusPending), newReservation(entity.StatusCancelled)
		r1.RoomID, r2.RoomID = roomID, roomID

		f.repoMock.On("ExistsRoomByID", mock.Anything, roomID).Return(true, nil).Once()
		f.repoMock.On("FindReservationsByRoomID", mock.Anything, roomID).Return([]entity.Reservation{r1, r2}, nil).Once()

		resp, err := f.uc.FindReservationsByRoom(context.Background(), roomID)

		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("room without reservations", func(t *testing.T) {
		f := setup(t, 0)
		roomID := uuid.New()

		f.repoMock.On("ExistsRoomByID", mock.Anything, roomID).Return(true, nil).Once()
		f.repoMock.On("FindReservationsByRoomID", mock.Anything, roomID).Return([]entity.Reservation{}, nil).Once()

		resp, err := f.uc.FindReservationsByRoom(context.Background(), roomID)

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := setup(t, 0)
		roomID := uuid.New()

		f.repoMock.On("ExistsRoomByID", mock.Anything, roomID).Return(false, nil).Once()

		_, err := f.uc.FindReservationsByRoom(context.Background(), roomID)

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
	})
}

func TestGroupReservationsByStatus(t *testing.T) {
	t.Run("groups every reservation", func(t *testing.T) {
		f := setup(t, 0)
		reservations := []entity.Reservation{
			newReservation(entity.StatusPending),
			newReservation(entity.StatusConfirmed),
			newReservation(entity.StatusPending),
		}

		f.repoMock.On("FindAllReservations", mock.Anything).Return(reservations, nil).Once()

		grouped, err := f.uc.GroupReservationsByStatus(context.Background())

		require.NoError(t, err)
		assert.Len(t, grouped, 3)
		assert.Len(t, grouped[entity.StatusPending], 2)
		assert.Len(t, grouped[entity.StatusConfirmed], 1)
		assert.NotNil(t, grouped[entity.StatusCancelled])
		assert.Empty(t, grouped[entity.StatusCancelled])
	})

	t.Run("no reservations", func(t *testing.T) {
		f := setup(t, 0)

		f.repoMock.On("FindAllReservations", mock.Anything).Return([]entity.Reservation{}, nil).Once()

		grouped, err := f.uc.GroupReservationsByStatus(context.Background())

		require.NoError(t, err)
		for _, status := range entity.ReservationStatuses {
			assert.Contains(t, grouped, status)
			assert.Empty(t, grouped[status])
		}
	})
}

func TestTotalEarningsByHotel(t *testing.T) {
	t.Run("sums payments", func(t *testing.T) {
		f := setup(t, 0)
		hotelID := uuid.New()

		f.repoMock.On("ExistsHotelByID", mock.Anything, hotelID).Return(true, nil).Once()
		f.repoMock.On("SumPaymentsForHotel", mock.Anything, hotelID).
			Return(decimal.NullDecimal{Decimal: decimal.RequireFromString("230.00"), Valid: true}, nil).Once()

		resp, err := f.uc.TotalEarningsByHotel(context.Background(), hotelID)

		require.NoError(t, err)
		assert.Equal(t, hotelID, resp.HotelID)
		assert.True(t, decimal.RequireFromString("230").Equal(resp.TotalEarnings))
	})

	t.Run("no payments earns zero", func(t *testing.T) {
		f := setup(t, 0)
		hotelID := uuid.New()

		f.repoMock.On("ExistsHotelByID", mock.Anything, hotelID).Return(true, nil).Once()
		f.repoMock.On("SumPaymentsForHotel", mock.Anything, hotelID).Return(decimal.NullDecimal{}, nil).Once()

		resp, err := f.uc.TotalEarningsByHotel(context.Background(), hotelID)

		require.NoError(t, err)
		assert.True(t, resp.TotalEarnings.IsZero())
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := setup(t, 0)
		hotelID := uuid.New()

		f.repoMock.On("ExistsHotelByID", mock.Anything, hotelID).Return(false, nil).Once()

		_, err := f.uc.TotalEarningsByHotel(context.Background(), hotelID)

		assert.True(t, errors.IsKind(err, errors.KindNotFound))
		f.repoMock.AssertNotCalled(t, "SumPaymentsForHotel", mock.Anything, mock.Anything)
	})
}
