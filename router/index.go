package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/persist"
	"cinema_booking/store"
	"cinema_booking/validate"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, hub *store.Hub, shim *persist.Store) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	session := middleware.VisitorSession(hub, shim)

	// Danh mục công khai
	v1.Get("/movies", h.GetMovies)
	v1.Get("/movies/:slug", h.GetMovieBySlug)
	v1.Get("/theaters", h.GetTheaters)
	v1.Get("/showtimes", h.GetShowtimes)
	v1.Get("/showtimes/:showtimeId", validate.GetById("showtimeId"), h.GetShowtimeById)
	v1.Get("/showtimes/:showtimeId/seats", session, validate.GetById("showtimeId"), h.GetSeatsByShowtime)
	v1.Get("/concessions", h.GetConcessions)

	// Phiên đặt vé
	sess := v1.Group("/session", session)
	sess.Get("/", h.GetSession)
	sess.Delete("/", h.ClearSession)
	sess.Post("/showtime", validate.SelectShowtime(), h.SelectShowtime)
	sess.Post("/seats", validate.AddSeat(), h.AddSeat)
	sess.Delete("/seats/:seatId", h.RemoveSeat)
	sess.Post("/concessions", validate.AddConcession(), h.AddConcession)
	sess.Put("/concessions/:itemId", validate.UpdateConcession("itemId"), h.UpdateConcessionQuantity)
	sess.Delete("/concessions/:itemId", validate.GetById("itemId"), h.RemoveConcession)

	// Thanh toán + tra cứu đơn
	v1.Post("/checkout", session, validate.Checkout(), h.Checkout)
	v1.Get("/bookings", h.GetMyBookings)
	v1.Get("/bookings/:code", h.GetBookingByCode)

	// Sơ đồ ghế realtime
	v1.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	v1.Get("/ws/showtimes/:id/seats", websocket.New(h.SeatMapSocket))

	// Back-office
	admin := v1.Group("/admin", logger.New())
	admin.Get("/bookings", validate.FilterBooking(), h.GetBookings)
	admin.Patch("/bookings/:code/status", validate.UpdateBookingStatus(), h.UpdateBookingStatus)
	admin.Get("/statistics", h.GetStatistics)
	admin.Get("/customers", h.GetCustomers)
	admin.Put("/movies/:movieId", validate.UpdateMovie("movieId"), h.UpdateMovie)
}
