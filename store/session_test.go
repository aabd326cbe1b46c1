package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AddSeatCapAndDedupe(t *testing.T) {
	s := NewSession()

	for i := 1; i <= 8; i++ {
		require.True(t, s.AddSeat(fmt.Sprintf("A%d", i)))
	}

	// Ghế thứ 9: phiên giữ nguyên, không lỗi
	assert.False(t, s.AddSeat("B1"))
	assert.Len(t, s.Seats(), 8)

	// Thêm trùng cũng bị bỏ qua
	s2 := NewSession()
	require.True(t, s2.AddSeat("A1"))
	assert.False(t, s2.AddSeat("A1"))
	assert.Len(t, s2.Seats(), 1)
}

func TestSession_AddSeatRejectsOccupied(t *testing.T) {
	s := NewSession()
	s.SetOccupiedSeats([]string{"C3", "C4"})

	assert.False(t, s.AddSeat("C3"))
	assert.True(t, s.AddSeat("C5"))
	assert.Equal(t, []string{"C5"}, s.Seats())
}

func TestSession_SeatsKeepInsertionOrder(t *testing.T) {
	s := NewSession()
	s.AddSeat("B2")
	s.AddSeat("A1")
	s.AddSeat("C7")
	s.RemoveSeat("A1")
	s.AddSeat("A1")

	assert.Equal(t, []string{"B2", "C7", "A1"}, s.Seats())
}

func TestSession_RecomputeSeatAmount(t *testing.T) {
	s := NewSession()
	s.AddSeat("A1")
	s.AddSeat("H1") // hàng H (index 7) là VIP

	got := s.RecomputeSeatAmount(75000, 120000, []int{7, 8, 9})
	assert.Equal(t, float64(195000), got)

	// Idempotent: gọi lại với cùng input ra cùng kết quả
	assert.Equal(t, got, s.RecomputeSeatAmount(75000, 120000, []int{7, 8, 9}))

	// Đổi bảng giá thì tổng đổi theo, không dính giá cũ
	assert.Equal(t, float64(130000), s.RecomputeSeatAmount(50000, 80000, []int{7, 8, 9}))
}

func TestSession_RecomputeTotal(t *testing.T) {
	s := NewSession()
	s.AddSeat("A1")
	s.AddSeat("A2")
	s.RecomputeSeatAmount(75000, 120000, []int{7, 8, 9})

	assert.Equal(t, float64(195000), s.RecomputeTotal(45000))
	assert.Equal(t, float64(195000), s.TotalAmount())

	// Bỏ bắp nước
	assert.Equal(t, float64(150000), s.RecomputeTotal(0))
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.AddSeat("A1")
	s.RecomputeSeatAmount(75000, 120000, nil)
	s.RecomputeTotal(45000)

	s.Clear()

	assert.Empty(t, s.Seats())
	assert.Zero(t, s.SeatAmount())
	assert.Zero(t, s.TotalAmount())
	assert.Nil(t, s.Showtime())
}

func TestSession_SnapshotRestoreRoundTrip(t *testing.T) {
	s := NewSession()
	s.SetOccupiedSeats([]string{"D4"})
	s.AddSeat("A1")
	s.AddSeat("H2")
	s.RecomputeSeatAmount(75000, 120000, []int{7})
	s.RecomputeTotal(30000)

	restored := NewSession()
	restored.Restore(s.Snapshot())

	assert.Equal(t, s.Seats(), restored.Seats())
	assert.Equal(t, s.SeatAmount(), restored.SeatAmount())
	assert.Equal(t, s.TotalAmount(), restored.TotalAmount())
	assert.False(t, restored.AddSeat("D4")) // ghế đã bán vẫn bị chặn sau restore
}
