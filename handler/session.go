package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

// SelectShowtime chọn phim + rạp + suất chiếu, nạp ghế đã bán vào phiên.
// Đổi suất chiếu thì ghế đã chọn trước đó bị bỏ (giá và sơ đồ khác nhau).
func (h *Handler) SelectShowtime(c *fiber.Ctx) error {
	input, _ := c.Locals("inputSelectShowtime").(model.SelectShowtimeInput)
	sessionId, visitor := h.visitor(c)

	movie, err := h.Catalog.MovieByID(input.MovieId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phim", err)
	}
	theater, err := h.Catalog.TheaterByID(input.TheaterId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy rạp", err)
	}
	showtime, err := h.Catalog.ShowtimeByID(input.ShowtimeId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_SHOWTIME_NOT_FOUND, err)
	}
	if showtime.MovieId != movie.ID || showtime.TheaterId != theater.ID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Suất chiếu không thuộc phim/rạp đã chọn", errors.New("showtime mismatch"))
	}
	if showtime.Status != constants.SHOWTIME_AVAILABLE {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_SHOWTIME_IN_PAST, nil)
	}

	prev := visitor.Session.Showtime()
	if prev != nil && prev.ID != showtime.ID {
		visitor.Session.Clear()
	}

	visitor.Session.SetMovie(&movie)
	visitor.Session.SetTheater(&theater)
	visitor.Session.SetShowtime(&showtime)
	visitor.Session.SetOccupiedSeats(h.occupiedFor(showtime.ID))

	h.recompute(visitor)
	h.saveVisitor(sessionId, visitor)

	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	_, visitor := h.visitor(c)
	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}

// AddSeat thêm ghế vào phiên. Quá 8 ghế / trùng / ghế đã bán thì phiên giữ
// nguyên — client nhận lại trạng thái hiện tại, không phải lỗi.
func (h *Handler) AddSeat(c *fiber.Ctx) error {
	input, _ := c.Locals("inputAddSeat").(model.AddSeatInput)
	sessionId, visitor := h.visitor(c)

	if visitor.Session.Showtime() == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chưa chọn suất chiếu", errors.New("no showtime selected"))
	}

	layout := h.Catalog.SeatLayout(visitor.Session.Showtime().ID)
	if !helper.SeatInLayout(input.SeatId, layout) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_SEAT_ID_INVALID, errors.New("seat out of layout"))
	}

	visitor.Session.AddSeat(input.SeatId)
	h.recompute(visitor)
	h.saveVisitor(sessionId, visitor)

	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}

func (h *Handler) RemoveSeat(c *fiber.Ctx) error {
	seatId := c.Params("seatId")
	sessionId, visitor := h.visitor(c)

	visitor.Session.RemoveSeat(seatId)
	h.recompute(visitor)
	h.saveVisitor(sessionId, visitor)

	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}

// ClearSession khách thoát hẳn flow đặt vé
func (h *Handler) ClearSession(c *fiber.Ctx) error {
	sessionId, visitor := h.visitor(c)

	visitor.Session.Clear()
	visitor.Concessions.Clear()
	h.saveVisitor(sessionId, visitor)

	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}
