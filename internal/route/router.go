package router

import (
	"reservation-service/internal/module/reservation/handler"
	"reservation-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerReservation *handler.ReservationHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1", m.ValidateToken)

	reservations := v1.Group("/reservations")
	reservations.Post("/", handlerReservation.CreateReservation)
	reservations.Get("/", handlerReservation.FindAllReservations)
	reservations.Get("/grouped-by-status", handlerReservation.GroupReservationsByStatus)
	reservations.Get("/:id", handlerReservation.FindReservationByID)
	reservations.Patch("/:id/confirm", handlerReservation.ConfirmReservation)
	reservations.Patch("/:id/cancel", handlerReservation.CancelReservation)

	v1.Get("/rooms/:id/reservations", handlerReservation.FindReservationsByRoom)
	v1.Get("/hotels/:id/total-earnings", handlerReservation.TotalEarningsByHotel)

	return app

}
