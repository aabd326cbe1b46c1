package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cinema_booking/model"
)

func TestIsValidSeatId(t *testing.T) {
	valid := []string{"A1", "B12", "J9", "Z99"}
	for _, id := range valid {
		assert.True(t, IsValidSeatId(id), id)
	}

	invalid := []string{"", "a1", "AA1", "A", "1A", "A-1", "A1B"}
	for _, id := range invalid {
		assert.False(t, IsValidSeatId(id), id)
	}
}

func TestSeatRowIndexAndColumn(t *testing.T) {
	assert.Equal(t, 0, SeatRowIndex("A1"))
	assert.Equal(t, 7, SeatRowIndex("H12"))
	assert.Equal(t, -1, SeatRowIndex("??"))

	assert.Equal(t, 1, SeatColumn("A1"))
	assert.Equal(t, 12, SeatColumn("H12"))
	assert.Equal(t, 0, SeatColumn("bad"))
}

func TestSeatInLayout(t *testing.T) {
	layout := model.SeatLayout{RowCount: 10, SeatsPerRow: 12}

	assert.True(t, SeatInLayout("A1", layout))
	assert.True(t, SeatInLayout("J12", layout))
	assert.False(t, SeatInLayout("K1", layout))  // quá số hàng
	assert.False(t, SeatInLayout("A13", layout)) // quá số ghế mỗi hàng
	assert.False(t, SeatInLayout("A0", layout))
}

func TestIsVipSeat(t *testing.T) {
	vipRows := []int{4, 5, 6, 7}

	assert.True(t, IsVipSeat("E1", vipRows))
	assert.True(t, IsVipSeat("H12", vipRows))
	assert.False(t, IsVipSeat("A1", vipRows))
	assert.False(t, IsVipSeat("J1", vipRows))
	assert.False(t, IsVipSeat("invalid", vipRows))

	// Ổn định qua nhiều lần gọi
	for i := 0; i < 3; i++ {
		assert.True(t, IsVipSeat("H1", vipRows))
	}
}

func TestCalculateSeatAmount(t *testing.T) {
	// A1 thường + H1 VIP
	got := CalculateSeatAmount([]string{"A1", "H1"}, 75000, 120000, []int{7, 8, 9})
	assert.Equal(t, float64(195000), got)

	assert.Zero(t, CalculateSeatAmount(nil, 75000, 120000, []int{7}))
}
