package handler

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/catalog"
	"cinema_booking/middleware"
	"cinema_booking/model"
	"cinema_booking/persist"
	"cinema_booking/queue"
	"cinema_booking/store"
)

// Handler gom các phụ thuộc của tầng HTTP: catalog chỉ đọc, hub phiên khách,
// sổ đơn dùng chung, persistence shim và queue email.
type Handler struct {
	Catalog *catalog.Provider
	Hub     *store.Hub
	Ledger  *store.BookingLedger
	Shim    *persist.Store
	Queue   *queue.Client
}

func New(provider *catalog.Provider, hub *store.Hub, ledger *store.BookingLedger, shim *persist.Store, q *queue.Client) *Handler {
	return &Handler{
		Catalog: provider,
		Hub:     hub,
		Ledger:  ledger,
		Shim:    shim,
		Queue:   q,
	}
}

func (h *Handler) visitor(c *fiber.Ctx) (string, *store.Visitor) {
	sessionId, _ := c.Locals("sessionId").(string)
	visitor, _ := c.Locals("visitor").(*store.Visitor)
	return sessionId, visitor
}

// recompute tính lại tiền ghế và tổng tiền của phiên. Gọi sau mọi mutation
// để validator và checkout không bao giờ đọc phải tổng cũ.
func (h *Handler) recompute(v *store.Visitor) {
	if st := v.Session.Showtime(); st != nil {
		layout := h.Catalog.SeatLayout(st.ID)
		v.Session.RecomputeSeatAmount(st.Price.Regular, st.Price.Vip, layout.VipRowIndices)
	}
	v.Session.RecomputeTotal(v.Concessions.Subtotal())
}

// saveVisitor ghi snapshot phiên xuống shim sau mỗi mutation
func (h *Handler) saveVisitor(sessionId string, v *store.Visitor) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	snap := middleware.VisitorSnapshot{
		Session:     v.Session.Snapshot(),
		Concessions: v.Concessions.Orders(),
	}
	if err := h.Shim.Save(ctx, persist.KeySessionPrefix+sessionId, snap); err != nil {
		log.Printf("Lỗi lưu phiên %s: %v", sessionId, err)
	}
}

func (h *Handler) saveLedger() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.Shim.Save(ctx, persist.KeyBookingLedger, h.Ledger.Snapshot()); err != nil {
		log.Printf("Lỗi lưu sổ đơn: %v", err)
	}
}

// occupiedFor ghế không còn trống của một suất: dữ liệu mồi + ghế của các đơn chưa huỷ
func (h *Handler) occupiedFor(showtimeId uint) []string {
	layout := h.Catalog.SeatLayout(showtimeId)
	return append(layout.OccupiedSeatIds, h.Ledger.OccupiedSeats(showtimeId)...)
}

// sessionView dựng trạng thái phiên trả về cho client
func (h *Handler) sessionView(v *store.Visitor) model.SessionView {
	return model.SessionView{
		Movie:            v.Session.Movie(),
		Theater:          v.Session.Theater(),
		Showtime:         v.Session.Showtime(),
		Seats:            v.Session.Seats(),
		SeatAmount:       v.Session.SeatAmount(),
		ConcessionOrders: v.Concessions.Orders(),
		ConcessionAmount: v.Concessions.Subtotal(),
		TotalAmount:      v.Session.TotalAmount(),
	}
}
