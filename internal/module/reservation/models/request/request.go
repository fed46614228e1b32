package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type CreateReservation struct {
	CheckInDate  string    `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string    `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	PeopleCount  int       `json:"people_count" validate:"required,gt=0"`
	RoomID       uuid.UUID `json:"room_id" validate:"required"`
	GuestID      uuid.UUID `json:"guest_id" validate:"required"`
}

type ConfirmReservation struct {
	TotalAmount       *decimal.Decimal `json:"total_amount" validate:"required"`
	PaymentMethod     string           `json:"payment_method" validate:"required"`
	PaymentPlatformID *uuid.UUID       `json:"payment_platform_id"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type ReservationExpiration struct {
	ReservationID string `json:"reservation_id" validate:"required,uuid"`
}

// ReservationStatusChanged is published after a confirm or cancel commits.
type ReservationStatusChanged struct {
	ReservationID uuid.UUID        `json:"reservation_id"`
	RoomID        uuid.UUID        `json:"room_id"`
	GuestID       uuid.UUID        `json:"guest_id"`
	Status        string           `json:"status"`
	PaymentID     *uuid.UUID       `json:"payment_id,omitempty"`
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	PlatformCode  string           `json:"platform_code,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
