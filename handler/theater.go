package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinema_booking/utils"
)

func (h *Handler) GetTheaters(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.Catalog.Theaters())
}
