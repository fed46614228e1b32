package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"reservation-service/config"
	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/module/reservation/models/response"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
)

type repositories struct {
	db             *sqlx.DB
	exec           sqlx.ExtContext
	inTx           bool
	log            log.Logger
	httpClient     *circuit.HTTPClient
	cfgUserService *config.UserServiceConfig
	asynqClient    *asynq.Client
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processIn time.Duration, payload []byte) (string, error)
	// db
	WithTransaction(ctx context.Context, fn func(repo Repositories) error) error
	InsertReservation(ctx context.Context, reservation *entity.Reservation) error
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
	FindReservationByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindReservationsByRoomID(ctx context.Context, roomID uuid.UUID) ([]entity.Reservation, error)
	FindAllReservations(ctx context.Context) ([]entity.Reservation, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	ExistsRoomByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindGuestByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	ExistsHotelByID(ctx context.Context, id uuid.UUID) (bool, error)
	InsertPayment(ctx context.Context, payment *entity.Payment) error
	FindActivePaymentPlatformByID(ctx context.Context, id uuid.UUID) (*entity.PaymentPlatform, error)
	SumPaymentsForHotel(ctx context.Context, hotelID uuid.UUID) (decimal.NullDecimal, error)
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, cfgUserService *config.UserServiceConfig, asynqClient *asynq.Client) Repositories {
	return &repositories{
		db:             db,
		exec:           db,
		log:            log,
		httpClient:     httpClient,
		cfgUserService: cfgUserService,
		asynqClient:    asynqClient,
	}
}

// WithTransaction runs fn against a copy of the repository bound to one
// transaction. fn's error rolls everything back. Nested calls join the
// outer transaction.
func (r *repositories) WithTransaction(ctx context.Context, fn func(repo Repositories) error) error {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Internal(err, "error starting transaction")
	}

	txRepo := *r
	txRepo.exec = tx
	txRepo.inTx = true

	if err := fn(&txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error(ctx, "error rollback transaction", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Internal(err, "error committing transaction")
	}

	return nil
}

const reservationColumns = `id, check_in_date, check_out_date, people_count, status, room_id, guest_id, created_at, updated_at`

// InsertReservation implements Repositories.
func (r *repositories) InsertReservation(ctx context.Context, reservation *entity.Reservation) error {
	query := `INSERT INTO reservations (id, check_in_date, check_out_date, people_count, status, room_id, guest_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.exec.QueryRowxContext(ctx, query,
		reservation.ID,
		reservation.CheckInDate,
		reservation.CheckOutDate,
		reservation.PeopleCount,
		reservation.Status,
		reservation.RoomID,
		reservation.GuestID,
	).Scan(&reservation.CreatedAt)
	if err != nil {
		return errors.Internal(err, "error insert reservation")
	}

	return nil
}

// UpdateReservationStatus implements Repositories.
func (r *repositories) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $1, updated_at = now() WHERE id = $2`

	res, err := r.exec.ExecContext(ctx, query, status, id)
	if err != nil {
		return errors.Internal(err, "error update reservation status")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Internal(err, "error update reservation status")
	}
	if affected == 0 {
		return errors.NotFound("reservation", id.String())
	}

	return nil
}

// FindReservationByID implements Repositories. A missing row is (nil, nil).
func (r *repositories) FindReservationByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return r.findReservation(ctx, query, id)
}

// FindReservationByIDForUpdate implements Repositories. The row stays
// locked until the surrounding transaction ends.
func (r *repositories) FindReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	return r.findReservation(ctx, query, id)
}

func (r *repositories) findReservation(ctx context.Context, query string, id uuid.UUID) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := sqlx.GetContext(ctx, r.exec, &reservation, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal(err, "error find reservation by id")
	}

	reservations := []entity.Reservation{reservation}
	if err := r.attachPayments(ctx, reservations); err != nil {
		return nil, err
	}

	return &reservations[0], nil
}

// FindReservationsByRoomID implements Repositories.
func (r *repositories) FindReservationsByRoomID(ctx context.Context, roomID uuid.UUID) ([]entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE room_id = $1 ORDER BY check_in_date`

	reservations := []entity.Reservation{}
	if err := sqlx.SelectContext(ctx, r.exec, &reservations, query, roomID); err != nil {
		return nil, errors.Internal(err, "error find reservations by room id")
	}

	if err := r.attachPayments(ctx, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// FindAllReservations implements Repositories.
func (r *repositories) FindAllReservations(ctx context.Context) ([]entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at`

	reservations := []entity.Reservation{}
	if err := sqlx.SelectContext(ctx, r.exec, &reservations, query); err != nil {
		return nil, errors.Internal(err, "error find all reservations")
	}

	if err := r.attachPayments(ctx, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

type paymentRow struct {
	entity.Payment
	PlatformName   sql.NullString `db:"platform_name"`
	PlatformCode   sql.NullString `db:"platform_code"`
	PlatformActive sql.NullBool   `db:"platform_active"`
}

// attachPayments loads the payments of reservations in one query.
func (r *repositories) attachPayments(ctx context.Context, reservations []entity.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]string, len(reservations))
	for i := range reservations {
		ids[i] = reservations[i].ID.String()
	}

	query := `SELECT p.id, p.reservation_id, p.total_amount, p.payment_method, p.payment_platform_id, p.created_at,
			pp.name AS platform_name, pp.code AS platform_code, pp.active AS platform_active
		FROM payments p
		LEFT JOIN payment_platforms pp ON pp.id = p.payment_platform_id
		WHERE p.reservation_id = ANY($1::uuid[])`

	var rows []paymentRow
	if err := sqlx.SelectContext(ctx, r.exec, &rows, query, pq.Array(ids)); err != nil {
		return errors.Internal(err, "error find payments by reservation ids")
	}

	byReservation := make(map[uuid.UUID]*entity.Payment, len(rows))
	for i := range rows {
		p := rows[i].Payment
		if p.PaymentPlatformID.Valid {
			p.PaymentPlatform = &entity.PaymentPlatform{
				ID:     p.PaymentPlatformID.UUID,
				Name:   rows[i].PlatformName.String,
				Code:   rows[i].PlatformCode.String,
				Active: rows[i].PlatformActive.Bool,
			}
		}
		byReservation[p.ReservationID] = &p
	}

	for i := range reservations {
		reservations[i].Payment = byReservation[reservations[i].ID]
	}

	return nil
}

// FindRoomByID implements Repositories. Soft deleted rooms are not found.
func (r *repositories) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT id, hotel_id, code, capacity, type, price, description, available, deleted, deleted_at
		FROM rooms WHERE id = $1 AND deleted = false`

	var room entity.Room
	err := sqlx.GetContext(ctx, r.exec, &room, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal(err, "error find room by id")
	}

	return &room, nil
}

// ExistsRoomByID implements Repositories.
func (r *repositories) ExistsRoomByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1 AND deleted = false)`, id, "error check room exists")
}

// ExistsHotelByID implements Repositories.
func (r *repositories) ExistsHotelByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1)`, id, "error check hotel exists")
}

func (r *repositories) exists(ctx context.Context, query string, id uuid.UUID, msg string) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, r.exec, &exists, query, id); err != nil {
		return false, errors.Internal(err, msg)
	}
	return exists, nil
}

// FindGuestByID implements Repositories.
func (r *repositories) FindGuestByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `SELECT id, identification, name, email, role, created_at, updated_at, birth_date, nationality
		FROM users WHERE id = $1 AND role = $2`

	var guest entity.Guest
	err := sqlx.GetContext(ctx, r.exec, &guest, query, id, entity.RoleGuest)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal(err, "error find guest by id")
	}

	return &guest, nil
}

// InsertPayment implements Repositories. created_at is assigned by the database.
func (r *repositories) InsertPayment(ctx context.Context, payment *entity.Payment) error {
	query := `INSERT INTO payments (id, reservation_id, total_amount, payment_method, payment_platform_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.exec.QueryRowxContext(ctx, query,
		payment.ID,
		payment.ReservationID,
		payment.TotalAmount,
		payment.PaymentMethod,
		payment.PaymentPlatformID,
	).Scan(&payment.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errors.Conflict("reservation already has a payment")
		}
		return errors.Internal(err, "error insert payment")
	}

	return nil
}

// FindActivePaymentPlatformByID implements Repositories. Inactive platforms are not found.
func (r *repositories) FindActivePaymentPlatformByID(ctx context.Context, id uuid.UUID) (*entity.PaymentPlatform, error) {
	query := `SELECT id, name, code, active FROM payment_platforms WHERE id = $1 AND active = true`

	var platform entity.PaymentPlatform
	err := sqlx.GetContext(ctx, r.exec, &platform, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal(err, "error find payment platform by id")
	}

	return &platform, nil
}

// SumPaymentsForHotel implements Repositories. No payments gives an invalid NullDecimal.
func (r *repositories) SumPaymentsForHotel(ctx context.Context, hotelID uuid.UUID) (decimal.NullDecimal, error) {
	query := `SELECT SUM(p.total_amount)
		FROM payments p
		JOIN reservations r ON p.reservation_id = r.id
		JOIN rooms ro ON r.room_id = ro.id
		WHERE ro.hotel_id = $1`

	var total decimal.NullDecimal
	if err := r.exec.QueryRowxContext(ctx, query, hotelID).Scan(&total); err != nil {
		return decimal.NullDecimal{}, errors.Internal(err, "error sum payments for hotel")
	}

	return total, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processIn time.Duration, payload []byte) (string, error) {
	if r.asynqClient == nil {
		return "", errors.InternalServerError("scheduler is not configured")
	}

	task := scheduler.NewExpirePendingReservationTask(payload, processIn)
	info, err := r.asynqClient.EnqueueContext(ctx, task)
	if err != nil {
		return "", errors.Internal(err, "error set task scheduler")
	}

	return info.ID, nil
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	endpoint := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, url.QueryEscape(token))
	resp, err := r.httpClient.Get(endpoint)
	if err != nil {
		return response.UserServiceValidate{}, errors.Internal(err, "error call user service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return response.UserServiceValidate{}, errors.Internal(err, "error decode user service response")
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}
