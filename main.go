package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"cinema_booking/catalog"
	"cinema_booking/config"
	"cinema_booking/handler"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/persist"
	"cinema_booking/queue"
	"cinema_booking/router"
	"cinema_booking/store"
)

// bookingReader ghép sổ đơn + catalog cho worker email
type bookingReader struct {
	ledger  *store.BookingLedger
	catalog *catalog.Provider
}

func (r bookingReader) Get(id string) (model.Booking, error)          { return r.ledger.Get(id) }
func (r bookingReader) MovieByID(id uint) (model.Movie, error)        { return r.catalog.MovieByID(id) }
func (r bookingReader) TheaterByID(id uint) (model.Theater, error)    { return r.catalog.TheaterByID(id) }
func (r bookingReader) ShowtimeByID(id uint) (model.Showtime, error)  { return r.catalog.ShowtimeByID(id) }

func main() {
	provider := catalog.NewProvider()
	hub := store.NewHub()
	ledger := store.NewBookingLedger()

	redisAddr := config.ConfigOr("REDIS_ADDR", "localhost:6379")
	shim := persist.Connect(redisAddr)

	// Nạp lại sổ đơn từ lần chạy trước (nếu có snapshot)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	var bookings []model.Booking
	if err := shim.Load(ctx, persist.KeyBookingLedger, &bookings); err == nil {
		ledger.Restore(bookings)
		log.Printf("Nạp lại %d đơn từ snapshot", len(bookings))
	} else if !errors.Is(err, persist.ErrNotFound) {
		log.Printf("Lỗi nạp sổ đơn: %v", err)
	}
	cancel()

	queueAddr := ""
	if shim.Enabled() {
		queueAddr = redisAddr
	}
	q := queue.NewClient(queueAddr)
	queue.StartWorker(queueAddr, bookingReader{ledger: ledger, catalog: provider}, config.ConfigOr("APP_URL", "http://localhost:5173"))

	helper.StartShowtimeScheduler(provider)
	defer helper.StopShowtimeScheduler()
	helper.StartMovieStatusScheduler(provider)
	defer helper.StopMovieStatusScheduler()

	app := fiber.New(fiber.Config{
		AppName: "cinema_booking",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	h := handler.New(provider, hub, ledger, shim, q)
	router.SetupRoutes(app, h, hub, shim)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
