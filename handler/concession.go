package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinema_booking/model"
	"cinema_booking/utils"
)

func (h *Handler) GetConcessions(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.Catalog.Concessions())
}

// AddConcession thêm món vào giỏ; món đã có thì cộng dồn số lượng
func (h *Handler) AddConcession(c *fiber.Ctx) error {
	input, _ := c.Locals("inputAddConcession").(model.AddConcessionInput)
	sessionId, visitor := h.visitor(c)

	item, err := h.Catalog.ConcessionByID(input.ItemId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy món", err)
	}

	visitor.Concessions.AddItem(item.ID, item.Name, item.Price, input.Quantity)
	h.recompute(visitor)
	h.saveVisitor(sessionId, visitor)

	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}

// UpdateConcessionQuantity đặt lại số lượng; <= 0 thì xoá khỏi giỏ
func (h *Handler) UpdateConcessionQuantity(c *fiber.Ctx) error {
	itemId, _ := c.Locals("inputItemId").(uint)
	input, _ := c.Locals("inputUpdateConcession").(model.UpdateConcessionInput)
	sessionId, visitor := h.visitor(c)

	visitor.Concessions.UpdateQuantity(itemId, input.Quantity)
	h.recompute(visitor)
	h.saveVisitor(sessionId, visitor)

	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}

func (h *Handler) RemoveConcession(c *fiber.Ctx) error {
	itemId, _ := c.Locals("inputId").(int)
	sessionId, visitor := h.visitor(c)

	visitor.Concessions.RemoveItem(uint(itemId))
	h.recompute(visitor)
	h.saveVisitor(sessionId, visitor)

	return utils.SuccessResponse(c, fiber.StatusOK, h.sessionView(visitor))
}
