package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

var ReservationStatuses = []ReservationStatus{StatusPending, StatusConfirmed, StatusCancelled}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

type Reservation struct {
	ID           uuid.UUID         `db:"id"`
	CheckInDate  time.Time         `db:"check_in_date"`
	CheckOutDate time.Time         `db:"check_out_date"`
	PeopleCount  int               `db:"people_count"`
	Status       ReservationStatus `db:"status"`
	RoomID       uuid.UUID         `db:"room_id"`
	GuestID      uuid.UUID         `db:"guest_id"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    sql.NullTime      `db:"updated_at"`

	// Payment is loaded explicitly by the repository, never lazily.
	Payment *Payment `db:"-"`
}

type Payment struct {
	ID                uuid.UUID       `db:"id"`
	ReservationID     uuid.UUID       `db:"reservation_id"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	PaymentMethod     PaymentMethod   `db:"payment_method"`
	PaymentPlatformID uuid.NullUUID   `db:"payment_platform_id"`
	CreatedAt         time.Time       `db:"created_at"`

	PaymentPlatform *PaymentPlatform `db:"-"`
}

type PaymentPlatform struct {
	ID     uuid.UUID `db:"id"`
	Name   string    `db:"name"`
	Code   string    `db:"code"`
	Active bool      `db:"active"`
}

type Room struct {
	ID          uuid.UUID       `db:"id"`
	HotelID     uuid.UUID       `db:"hotel_id"`
	Code        string          `db:"code"`
	Capacity    int             `db:"capacity"`
	Type        string          `db:"type"`
	Price       decimal.Decimal `db:"price"`
	Description string          `db:"description"`
	Available   bool            `db:"available"`
	Deleted     bool            `db:"deleted"`
	DeletedAt   sql.NullTime    `db:"deleted_at"`
}

const RoleGuest = "GUEST"

// User holds the columns shared by every row of the users table.
type User struct {
	ID             uuid.UUID `db:"id"`
	Identification string    `db:"identification"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Role           string    `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Guest struct {
	User
	BirthDate   sql.NullTime   `db:"birth_date"`
	Nationality sql.NullString `db:"nationality"`
}
