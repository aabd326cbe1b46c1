package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/utils"
)

// GetStatistics số liệu cho dashboard admin: doanh thu (không tính đơn huỷ),
// số đơn hôm nay, số khách khác nhau và phân bố trạng thái
func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalRevenue":      h.Ledger.TotalRevenue(),
		"todayBookings":     h.Ledger.TodayCount(),
		"distinctCustomers": h.Ledger.DistinctCustomerCount(),
		"byStatus": fiber.Map{
			"confirmed": len(h.Ledger.ByStatus(constants.BOOKING_CONFIRMED)),
			"completed": len(h.Ledger.ByStatus(constants.BOOKING_COMPLETED)),
			"cancelled": len(h.Ledger.ByStatus(constants.BOOKING_CANCELLED)),
		},
	})
}
