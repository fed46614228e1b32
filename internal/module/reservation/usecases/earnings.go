package usecases

import (
	"context"

	"reservation-service/internal/module/reservation/models/response"
	"reservation-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TotalEarningsByHotel sums every payment recorded on the hotel's rooms.
// A hotel without payments earns zero.
func (u *usecase) TotalEarningsByHotel(ctx context.Context, hotelID uuid.UUID) (response.HotelEarnings, error) {
	exists, err := u.repo.ExistsHotelByID(ctx, hotelID)
	if err != nil {
		return response.HotelEarnings{}, err
	}
	if !exists {
		return response.HotelEarnings{}, errors.NotFound("hotel", hotelID.String())
	}

	sum, err := u.repo.SumPaymentsForHotel(ctx, hotelID)
	if err != nil {
		return response.HotelEarnings{}, err
	}

	total := decimal.Zero
	if sum.Valid {
		total = sum.Decimal
	}

	return response.HotelEarnings{
		HotelID:       hotelID,
		TotalEarnings: total,
	}, nil
}
