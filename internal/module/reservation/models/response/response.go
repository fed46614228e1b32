package response

import (
	"reservation-service/internal/module/reservation/models/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    string `json:"user_id"`
	EmailUser string `json:"email_user"`
	Role      string `json:"role"`
}

type PaymentPlatform struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

type Payment struct {
	ID              uuid.UUID        `json:"id"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	Date            string           `json:"date"`
	PaymentMethod   string           `json:"payment_method"`
	PaymentPlatform *PaymentPlatform `json:"payment_platform,omitempty"`
}

type Reservation struct {
	ID           uuid.UUID `json:"id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	PeopleCount  int       `json:"people_count"`
	Status       string    `json:"status"`
	Payment      *Payment  `json:"payment,omitempty"`
	RoomID       uuid.UUID `json:"room_id"`
	GuestID      uuid.UUID `json:"guest_id"`
}

type ReservationsByStatus map[entity.ReservationStatus][]Reservation

type HotelEarnings struct {
	HotelID       uuid.UUID       `json:"hotel_id"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}
