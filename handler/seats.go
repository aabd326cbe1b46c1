package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

const (
	SeatAvailable = "AVAILABLE"
	SeatOccupied  = "OCCUPIED"
	SeatSelected  = "SELECTED"
)

// GetSeatsByShowtime trả về sơ đồ ghế của một suất: loại ghế, giá và trạng thái
// (trống / đã bán / đang được chính khách này chọn)
func (h *Handler) GetSeatsByShowtime(c *fiber.Ctx) error {
	showtimeId, _ := c.Locals("inputId").(int)

	showtime, err := h.Catalog.ShowtimeByID(uint(showtimeId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Suất chiếu không tồn tại", err)
	}

	layout := h.Catalog.SeatLayout(showtime.ID)

	occupied := map[string]bool{}
	for _, id := range h.occupiedFor(showtime.ID) {
		occupied[id] = true
	}

	_, visitor := h.visitor(c)
	selected := map[string]bool{}
	if visitor != nil {
		for _, id := range visitor.Session.Seats() {
			selected[id] = true
		}
	}

	rows := make([][]model.SeatUI, 0, layout.RowCount)
	for r := 0; r < layout.RowCount; r++ {
		row := make([]model.SeatUI, 0, layout.SeatsPerRow)
		for col := 1; col <= layout.SeatsPerRow; col++ {
			label := fmt.Sprintf("%c%d", 'A'+r, col)

			seatType := "NORMAL"
			price := showtime.Price.Regular
			if helper.IsVipSeat(label, layout.VipRowIndices) {
				seatType = "VIP"
				price = showtime.Price.Vip
			}

			status := SeatAvailable
			if occupied[label] {
				status = SeatOccupied
			} else if selected[label] {
				status = SeatSelected
			}

			row = append(row, model.SeatUI{
				Label:  label,
				Type:   seatType,
				Status: status,
				Price:  price,
			})
		}
		rows = append(rows, row)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"showtimeId":  showtime.ID,
		"rowCount":    layout.RowCount,
		"seatsPerRow": layout.SeatsPerRow,
		"rows":        rows,
	})
}
