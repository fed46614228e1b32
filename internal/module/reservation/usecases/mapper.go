package usecases

import (
	"time"

	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/module/reservation/models/request"
	"reservation-service/internal/module/reservation/models/response"
)

func toReservationResponse(r entity.Reservation) response.Reservation {
	resp := response.Reservation{
		ID:           r.ID,
		CheckInDate:  r.CheckInDate.Format(request.DateLayout),
		CheckOutDate: r.CheckOutDate.Format(request.DateLayout),
		PeopleCount:  r.PeopleCount,
		Status:       string(r.Status),
		RoomID:       r.RoomID,
		GuestID:      r.GuestID,
	}

	if r.Payment != nil {
		p := &response.Payment{
			ID:            r.Payment.ID,
			TotalAmount:   r.Payment.TotalAmount,
			Date:          r.Payment.CreatedAt.Format(time.RFC3339),
			PaymentMethod: string(r.Payment.PaymentMethod),
		}
		if r.Payment.PaymentPlatform != nil {
			p.PaymentPlatform = &response.PaymentPlatform{
				ID:   r.Payment.PaymentPlatform.ID,
				Name: r.Payment.PaymentPlatform.Name,
				Code: r.Payment.PaymentPlatform.Code,
			}
		}
		resp.Payment = p
	}

	return resp
}

func toReservationResponses(reservations []entity.Reservation) []response.Reservation {
	out := make([]response.Reservation, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	return out
}
