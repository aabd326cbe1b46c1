package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/store"
	"cinema_booking/utils"
)

// GetBookingByCode chi tiết đơn + mã QR (một QR duy nhất cho cả đơn)
func (h *Handler) GetBookingByCode(c *fiber.Ctx) error {
	bookingCode := c.Params("code")

	booking, err := h.Ledger.Get(bookingCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
	}

	movie, _ := h.Catalog.MovieByID(booking.MovieId)
	theater, _ := h.Catalog.TheaterByID(booking.TheaterId)
	showtime, _ := h.Catalog.ShowtimeByID(booking.ShowtimeId)

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(booking.ID, 400) // size lớn cho dễ quét
	if err != nil {
		log.Printf("Lỗi tạo QR cho đơn %s: %v", booking.ID, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingCode":      booking.ID,
		"movieTitle":       movie.Title,
		"theaterName":      theater.Name,
		"showtime":         showtime.StartTime.Format("15:04 - 02/01/2006"),
		"format":           showtime.Format,
		"seats":            booking.Seats,
		"seatAmount":       booking.SeatAmount,
		"concessionOrders": booking.ConcessionOrders,
		"concessionAmount": booking.ConcessionAmount,
		"totalAmount":      booking.TotalAmount,
		"paymentMethod":    booking.PaymentMethod,
		"customerName":     booking.CustomerInfo.Name,
		"phone":            booking.CustomerInfo.Phone,
		"email":            booking.CustomerInfo.Email,
		"createdAt":        booking.CreatedAt.Format("15:04 - 02/01/2006"),
		"status":           booking.Status,
		"qrCode":           qrBase64,
	})
}

// GetMyBookings đơn của khách theo email
func (h *Handler) GetMyBookings(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu email", errors.New("email required"))
	}

	bookings := h.Ledger.ByEmail(email)

	response := []fiber.Map{}
	for _, booking := range bookings {
		movie, _ := h.Catalog.MovieByID(booking.MovieId)
		showtime, _ := h.Catalog.ShowtimeByID(booking.ShowtimeId)

		response = append(response, fiber.Map{
			"bookingCode": booking.ID,
			"movieTitle":  movie.Title,
			"poster":      movie.PosterUrl,
			"showtime":    showtime.StartTime.Format("02/01/2006 15:04"),
			"seats":       booking.Seats,
			"totalAmount": booking.TotalAmount,
			"status":      booking.Status,
			"createdAt":   booking.CreatedAt.Format("02/01/2006 15:04"),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetBookings admin lọc đơn theo email / ngày / trạng thái
func (h *Handler) GetBookings(c *fiber.Ctx) error {
	filter, _ := c.Locals("inputFilterBooking").(model.FilterBookingInput)

	bookings := h.Ledger.All()
	if filter.Email != "" {
		bookings = h.Ledger.ByEmail(filter.Email)
	}

	out := []model.Booking{}
	for _, b := range bookings {
		if filter.Date != "" && b.CreatedAt.Format("2006-01-02") != filter.Date {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       out,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: int64(len(out)),
	})
}

// UpdateBookingStatus admin đổi trạng thái đơn theo bảng chuyển hợp lệ
func (h *Handler) UpdateBookingStatus(c *fiber.Ctx) error {
	bookingCode := c.Params("code")
	input, _ := c.Locals("inputBookingStatus").(model.UpdateBookingStatusInput)

	booking, err := h.Ledger.UpdateStatus(bookingCode, input.Status)
	if errors.Is(err, store.ErrBookingNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
	}
	if errors.Is(err, store.ErrStatusTransition) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể chuyển trạng thái đơn", err)
	}

	h.saveLedger()
	// Huỷ đơn thì ghế được nhả ra, báo cho client đang xem sơ đồ
	h.broadcastSeatChange(booking.ShowtimeId)

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetCustomers admin: danh sách khách đã từng đặt vé, gộp theo email
func (h *Handler) GetCustomers(c *fiber.Ctx) error {
	type customerRow struct {
		Name         string  `json:"name"`
		Email        string  `json:"email"`
		Phone        string  `json:"phone"`
		BookingCount int     `json:"bookingCount"`
		TotalSpent   float64 `json:"totalSpent"`
	}

	byEmail := map[string]*customerRow{}
	order := []string{}
	for _, b := range h.Ledger.All() {
		key := strings.ToLower(b.CustomerInfo.Email)
		row, ok := byEmail[key]
		if !ok {
			row = &customerRow{
				Name:  b.CustomerInfo.Name,
				Email: b.CustomerInfo.Email,
				Phone: b.CustomerInfo.Phone,
			}
			byEmail[key] = row
			order = append(order, key)
		}
		row.BookingCount++
		if b.Status != constants.BOOKING_CANCELLED {
			row.TotalSpent += b.TotalAmount
		}
	}

	response := make([]customerRow, 0, len(order))
	for _, key := range order {
		response = append(response, *byEmail[key])
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
