package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/constants"
	"cinema_booking/model"
)

func draftFixture() BookingDraft {
	return BookingDraft{
		UserId:     "visitor-1",
		ShowtimeId: 7,
		MovieId:    1,
		TheaterId:  2,
		Seats:      []string{"A1", "A2"},
		SeatAmount: 150000,
		ConcessionOrders: []model.ConcessionOrder{
			{ItemId: 1, Name: "Bắp rang bơ (L)", Price: 45000, Quantity: 1},
		},
		ConcessionAmount: 45000,
		TotalAmount:      195000,
		CustomerInfo:     model.CustomerInfo{Name: "Nguyễn Văn An", Email: "an@example.com", Phone: "0901234567"},
		PaymentMethod:    "MOMO",
	}
}

func TestBookingLedger_AddBooking(t *testing.T) {
	lg := NewBookingLedger()

	booking := lg.AddBooking(draftFixture())

	assert.True(t, strings.HasPrefix(booking.ID, "ORD-"))
	assert.Len(t, booking.ID, 10)
	assert.Equal(t, constants.BOOKING_CONFIRMED, booking.Status)
	assert.Equal(t, float64(150000), booking.SeatAmount)
	assert.Equal(t, float64(45000), booking.ConcessionAmount)
	assert.Equal(t, float64(195000), booking.TotalAmount)
	assert.WithinDuration(t, time.Now(), booking.CreatedAt, time.Second)

	require.Len(t, lg.All(), 1)
}

func TestBookingLedger_IdsUnique(t *testing.T) {
	lg := NewBookingLedger()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		b := lg.AddBooking(draftFixture())
		require.False(t, seen[b.ID], "mã đơn %s bị trùng", b.ID)
		seen[b.ID] = true
	}
}

func TestBookingLedger_FrozenSnapshot(t *testing.T) {
	lg := NewBookingLedger()

	draft := draftFixture()
	booking := lg.AddBooking(draft)

	// Sửa dữ liệu phiên sau khi chốt không được lọt vào đơn
	draft.Seats[0] = "Z9"
	draft.ConcessionOrders[0].Quantity = 99

	stored, err := lg.Get(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, stored.Seats)
	assert.Equal(t, 1, stored.ConcessionOrders[0].Quantity)
}

func TestBookingLedger_UpdateStatusTransitions(t *testing.T) {
	lg := NewBookingLedger()
	booking := lg.AddBooking(draftFixture())

	// CONFIRMED → COMPLETED hợp lệ
	updated, err := lg.UpdateStatus(booking.ID, constants.BOOKING_COMPLETED)
	require.NoError(t, err)
	assert.Equal(t, constants.BOOKING_COMPLETED, updated.Status)

	// COMPLETED là trạng thái cuối
	_, err = lg.UpdateStatus(booking.ID, constants.BOOKING_CONFIRMED)
	assert.ErrorIs(t, err, ErrStatusTransition)
	_, err = lg.UpdateStatus(booking.ID, constants.BOOKING_CANCELLED)
	assert.ErrorIs(t, err, ErrStatusTransition)

	// Đơn không tồn tại
	_, err = lg.UpdateStatus("ORD-KHONGCO", constants.BOOKING_CANCELLED)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingLedger_ReadSideQueries(t *testing.T) {
	lg := NewBookingLedger()

	first := lg.AddBooking(draftFixture())

	other := draftFixture()
	other.CustomerInfo.Email = "Binh@example.com"
	other.TotalAmount = 100000
	second := lg.AddBooking(other)

	_, err := lg.UpdateStatus(second.ID, constants.BOOKING_CANCELLED)
	require.NoError(t, err)

	// Lọc theo email không phân biệt hoa thường
	assert.Len(t, lg.ByEmail("binh@example.com"), 1)
	assert.Len(t, lg.ByEmail("an@example.com"), 1)

	today := time.Now().Format("2006-01-02")
	assert.Len(t, lg.ByDate(today), 2)
	assert.Empty(t, lg.ByDate("2000-01-01"))

	assert.Len(t, lg.ByStatus(constants.BOOKING_CONFIRMED), 1)
	assert.Len(t, lg.ByStatus(constants.BOOKING_CANCELLED), 1)

	// Doanh thu bỏ đơn huỷ
	assert.Equal(t, float64(195000), lg.TotalRevenue())
	assert.Equal(t, 2, lg.TodayCount())
	assert.Equal(t, 2, lg.DistinctCustomerCount())
	_ = first
}

func TestBookingLedger_OccupiedSeats(t *testing.T) {
	lg := NewBookingLedger()

	b1 := lg.AddBooking(draftFixture())

	other := draftFixture()
	other.Seats = []string{"B5"}
	b2 := lg.AddBooking(other)

	assert.ElementsMatch(t, []string{"A1", "A2", "B5"}, lg.OccupiedSeats(7))

	// Huỷ đơn thì ghế được nhả
	_, err := lg.UpdateStatus(b2.ID, constants.BOOKING_CANCELLED)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "A2"}, lg.OccupiedSeats(7))
	_ = b1
}

func TestBookingLedger_SnapshotRestore(t *testing.T) {
	lg := NewBookingLedger()
	lg.AddBooking(draftFixture())
	lg.AddBooking(draftFixture())

	restored := NewBookingLedger()
	restored.Restore(lg.Snapshot())

	assert.Len(t, restored.All(), 2)
	assert.Equal(t, lg.TotalRevenue(), restored.TotalRevenue())
}
