// Package queue gửi email xác nhận đơn qua task nền asynq trên redis,
// để response checkout không phải chờ SMTP.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/hibiken/asynq"

	"cinema_booking/model"
	"cinema_booking/utils"
)

const TypeBookingConfirmation = "booking:confirmation"

type BookingConfirmationPayload struct {
	BookingID string `json:"booking_id"`
}

type Client struct {
	client *asynq.Client
}

// NewClient tạo asynq client; addr rỗng thì enqueue sẽ bị bỏ qua
func NewClient(redisAddr string) *Client {
	if redisAddr == "" {
		return &Client{}
	}
	return &Client{client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})}
}

// EnqueueBookingConfirmation xếp task gửi email cho một đơn vừa chốt
func (c *Client) EnqueueBookingConfirmation(bookingId string) {
	if c == nil || c.client == nil {
		log.Printf("Không có redis, bỏ qua email xác nhận đơn %s", bookingId)
		return
	}

	payload, _ := json.Marshal(BookingConfirmationPayload{BookingID: bookingId})
	task := asynq.NewTask(TypeBookingConfirmation, payload)
	if _, err := c.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		log.Printf("Lỗi enqueue email xác nhận đơn %s: %v", bookingId, err)
	}
}

// BookingReader phần ledger + catalog mà worker cần để render email
type BookingReader interface {
	Get(bookingId string) (model.Booking, error)
	MovieByID(id uint) (model.Movie, error)
	TheaterByID(id uint) (model.Theater, error)
	ShowtimeByID(id uint) (model.Showtime, error)
}

// StartWorker chạy asynq server xử lý task email ở goroutine riêng
func StartWorker(redisAddr string, reader BookingReader, detailBaseUrl string) {
	if redisAddr == "" {
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmation, func(ctx context.Context, t *asynq.Task) error {
		var payload BookingConfirmationPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return sendConfirmation(reader, payload.BookingID, detailBaseUrl)
	})

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Printf("Asynq server dừng: %v", err)
		}
	}()
}

func sendConfirmation(reader BookingReader, bookingId, detailBaseUrl string) error {
	booking, err := reader.Get(bookingId)
	if err != nil {
		return err
	}

	movie, _ := reader.MovieByID(booking.MovieId)
	theater, _ := reader.TheaterByID(booking.TheaterId)
	showtime, err := reader.ShowtimeByID(booking.ShowtimeId)
	if err != nil {
		return err
	}

	return utils.SendBookingConfirmationEmail(booking.CustomerInfo.Email, utils.BookingConfirmationData{
		BookingCode:   booking.ID,
		MovieName:     movie.Title,
		TheaterName:   theater.Name,
		Showtime:      showtime.StartTime.Format("15:04 - 02/01/2006"),
		Seats:         strings.Join(booking.Seats, ", "),
		TotalAmount:   booking.TotalAmount,
		PaymentMethod: booking.PaymentMethod,
		DetailLink:    fmt.Sprintf("%s/bookings/%s", detailBaseUrl, booking.ID),
	})
}
