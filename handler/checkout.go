package handler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/model"
	"cinema_booking/store"
	"cinema_booking/utils"
	"cinema_booking/validate"
)

// Checkout chốt đơn: tính lại tổng, chạy validator tổng hợp, giả lập thanh toán,
// ghi đơn vào sổ rồi dọn phiên. Mọi lỗi validator trả về cùng lúc để client
// hiển thị đủ, không dừng ở lỗi đầu.
func (h *Handler) Checkout(c *fiber.Ctx) error {
	input, _ := c.Locals("inputCheckout").(model.CheckoutInput)
	sessionId, visitor := h.visitor(c)

	showtime := visitor.Session.Showtime()
	if showtime == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chưa chọn suất chiếu", errors.New("no showtime selected"))
	}

	// Tính lại ngay trước khi kiểm tra để không bao giờ đọc tổng cũ
	h.recompute(visitor)

	layout := h.Catalog.SeatLayout(showtime.ID)
	occupied := h.occupiedFor(showtime.ID)

	customer := model.CustomerInfo{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	result := validate.ValidateBooking(validate.BookingInput{
		Customer:         customer,
		SeatIds:          visitor.Session.Seats(),
		RegularPrice:     showtime.Price.Regular,
		VipPrice:         showtime.Price.Vip,
		VipRowIndices:    layout.VipRowIndices,
		ConcessionAmount: visitor.Concessions.Subtotal(),
		TotalAmount:      visitor.Session.TotalAmount(),
		ShowtimeId:       showtime.ID,
		Showtimes:        h.Catalog.AllShowtimes(),
		OccupiedSeatIds:  occupied,
	})
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Đơn đặt vé chưa hợp lệ",
			"errors":  result.Errors,
		})
	}

	// Thanh toán giả lập: không gọi cổng thật, coi như thành công ngay
	log.Printf("Thanh toán giả lập %s cho phiên %s: %.0f đ", input.PaymentMethod, sessionId, visitor.Session.TotalAmount())

	booking := h.Ledger.AddBooking(store.BookingDraft{
		UserId:           sessionId,
		ShowtimeId:       showtime.ID,
		MovieId:          showtime.MovieId,
		TheaterId:        showtime.TheaterId,
		Seats:            visitor.Session.Seats(),
		SeatAmount:       visitor.Session.SeatAmount(),
		ConcessionOrders: visitor.Concessions.Orders(),
		ConcessionAmount: visitor.Concessions.Subtotal(),
		TotalAmount:      visitor.Session.TotalAmount(),
		CustomerInfo:     customer,
		PaymentMethod:    input.PaymentMethod,
	})

	// Đơn đã đóng băng — phiên và giỏ về rỗng, không còn tham chiếu chung
	visitor.Session.Clear()
	visitor.Concessions.Clear()

	h.saveLedger()
	h.saveVisitor(sessionId, visitor)
	h.broadcastSeatChange(showtime.ID)
	h.Queue.EnqueueBookingConfirmation(booking.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"bookingCode": booking.ID,
		"status":      booking.Status,
		"seatAmount":  booking.SeatAmount,
		"totalAmount": booking.TotalAmount,
	})
}

// broadcastSeatChange đẩy danh sách ghế đã bán mới nhất của suất lên pub/sub
func (h *Handler) broadcastSeatChange(showtimeId uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	payload := fiber.Map{
		"showtimeId":      showtimeId,
		"occupiedSeatIds": h.occupiedFor(showtimeId),
	}
	if err := h.Shim.Publish(ctx, showtimeChannel(showtimeId), payload); err != nil {
		log.Printf("Lỗi broadcast ghế suất %d: %v", showtimeId, err)
	}
}
