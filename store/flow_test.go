package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/constants"
	"cinema_booking/model"
)

// Kịch bản đặt vé trọn vẹn: chọn ghế → thêm bắp nước → tính tổng → chốt đơn
// → phiên và giỏ về rỗng, đơn giữ đúng số tiền đã đóng băng.
func TestBookingFlow_EndToEnd(t *testing.T) {
	session := NewSession()
	concessions := NewConcessionLedger()
	ledger := NewBookingLedger()

	require.True(t, session.AddSeat("A1"))
	require.True(t, session.AddSeat("A2"))

	seatAmount := session.RecomputeSeatAmount(75000, 120000, []int{7, 8, 9})
	assert.Equal(t, float64(150000), seatAmount)

	concessions.AddItem(1, "Bắp rang bơ (L)", 45000, 1)
	assert.Equal(t, float64(45000), concessions.Subtotal())

	total := session.RecomputeTotal(concessions.Subtotal())
	assert.Equal(t, float64(195000), total)

	booking := ledger.AddBooking(BookingDraft{
		UserId:           "visitor-1",
		ShowtimeId:       3,
		Seats:            session.Seats(),
		SeatAmount:       session.SeatAmount(),
		ConcessionOrders: concessions.Orders(),
		ConcessionAmount: concessions.Subtotal(),
		TotalAmount:      session.TotalAmount(),
		CustomerInfo:     model.CustomerInfo{Name: "Nguyễn Văn An", Email: "an@example.com", Phone: "0901234567"},
		PaymentMethod:    "CARD",
	})

	session.Clear()
	concessions.Clear()

	require.Len(t, ledger.All(), 1)
	assert.Equal(t, constants.BOOKING_CONFIRMED, booking.Status)
	assert.Equal(t, float64(150000), booking.SeatAmount)
	assert.Equal(t, float64(45000), booking.ConcessionAmount)
	assert.Equal(t, float64(195000), booking.TotalAmount)

	// Phiên và giỏ rỗng ngay sau khi chốt
	assert.Empty(t, session.Seats())
	assert.Zero(t, session.TotalAmount())
	assert.Empty(t, concessions.Orders())
}
