package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinema_booking/model"
	"cinema_booking/utils"
)

func (h *Handler) GetShowtimes(c *fiber.Ctx) error {
	var filter model.FilterShowtimeInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bộ lọc không hợp lệ", err)
	}

	showtimes := h.Catalog.Showtimes(filter)
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: int64(len(showtimes)),
	})
}

func (h *Handler) GetShowtimeById(c *fiber.Ctx) error {
	showtimeId, _ := c.Locals("inputId").(int)

	showtime, err := h.Catalog.ShowtimeByID(uint(showtimeId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Suất chiếu không tồn tại", err)
	}

	movie, _ := h.Catalog.MovieByID(showtime.MovieId)
	theater, _ := h.Catalog.TheaterByID(showtime.TheaterId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"showtime": showtime,
		"movie":    movie,
		"theater":  theater,
	})
}
