package store

import (
	"cinema_booking/constants"
	"cinema_booking/helper"
	"cinema_booking/model"
)

// Session phiên đặt vé đang dở của một khách: phim, rạp, suất chiếu,
// ghế đã chọn và các tổng tiền suy ra. seatAmount/totalAmount chỉ được
// cập nhật qua Recompute*, không gán tay.
type Session struct {
	movie    *model.Movie
	theater  *model.Theater
	showtime *model.Showtime

	seats    []string // giữ thứ tự chọn
	occupied map[string]struct{}

	seatAmount  float64
	totalAmount float64
}

func NewSession() *Session {
	return &Session{
		seats:    []string{},
		occupied: map[string]struct{}{},
	}
}

func (s *Session) SetMovie(m *model.Movie)       { s.movie = m }
func (s *Session) SetTheater(t *model.Theater)   { s.theater = t }
func (s *Session) SetShowtime(st *model.Showtime) { s.showtime = st }

func (s *Session) Movie() *model.Movie       { return s.movie }
func (s *Session) Theater() *model.Theater   { return s.theater }
func (s *Session) Showtime() *model.Showtime { return s.showtime }

// SetOccupiedSeats nạp danh sách ghế đã bán của suất chiếu hiện tại.
// Ghế trong danh sách này không bao giờ vào được seats.
func (s *Session) SetOccupiedSeats(seatIds []string) {
	s.occupied = make(map[string]struct{}, len(seatIds))
	for _, id := range seatIds {
		s.occupied[id] = struct{}{}
	}
}

// AddSeat thêm ghế vào phiên. Bỏ qua (không lỗi) khi đã đủ 8 ghế,
// ghế đã chọn rồi, hoặc ghế đã có người đặt.
func (s *Session) AddSeat(seatId string) bool {
	if len(s.seats) >= constants.MAX_SEATS_PER_BOOKING {
		return false
	}
	for _, id := range s.seats {
		if id == seatId {
			return false
		}
	}
	if _, taken := s.occupied[seatId]; taken {
		return false
	}
	s.seats = append(s.seats, seatId)
	return true
}

func (s *Session) RemoveSeat(seatId string) {
	for i, id := range s.seats {
		if id == seatId {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return
		}
	}
}

// Seats trả về bản sao danh sách ghế theo thứ tự chọn
func (s *Session) Seats() []string {
	out := make([]string, len(s.seats))
	copy(out, s.seats)
	return out
}

func (s *Session) SeatAmount() float64  { return s.seatAmount }
func (s *Session) TotalAmount() float64 { return s.totalAmount }

// RecomputeSeatAmount tính lại toàn bộ tiền ghế từ mã ghế + bảng giá + hàng VIP.
// Gọi sau mỗi lần thêm/bớt ghế hoặc đổi suất chiếu.
func (s *Session) RecomputeSeatAmount(regularPrice, vipPrice float64, vipRowIndices []int) float64 {
	s.seatAmount = helper.CalculateSeatAmount(s.seats, regularPrice, vipPrice, vipRowIndices)
	return s.seatAmount
}

// RecomputeTotal tổng tiền = tiền ghế + tiền bắp nước
func (s *Session) RecomputeTotal(concessionSubtotal float64) float64 {
	s.totalAmount = s.seatAmount + concessionSubtotal
	return s.totalAmount
}

// Clear đưa phiên về trạng thái rỗng (sau khi chốt đơn hoặc khách thoát flow)
func (s *Session) Clear() {
	s.movie = nil
	s.theater = nil
	s.showtime = nil
	s.seats = []string{}
	s.occupied = map[string]struct{}{}
	s.seatAmount = 0
	s.totalAmount = 0
}

// SessionSnapshot trạng thái phiên để ghi xuống persistence shim
type SessionSnapshot struct {
	Movie       *model.Movie    `json:"movie"`
	Theater     *model.Theater  `json:"theater"`
	Showtime    *model.Showtime `json:"showtime"`
	Seats       []string        `json:"seats"`
	Occupied    []string        `json:"occupied"`
	SeatAmount  float64         `json:"seatAmount"`
	TotalAmount float64         `json:"totalAmount"`
}

func (s *Session) Snapshot() SessionSnapshot {
	occupied := make([]string, 0, len(s.occupied))
	for id := range s.occupied {
		occupied = append(occupied, id)
	}
	return SessionSnapshot{
		Movie:       s.movie,
		Theater:     s.theater,
		Showtime:    s.showtime,
		Seats:       s.Seats(),
		Occupied:    occupied,
		SeatAmount:  s.seatAmount,
		TotalAmount: s.totalAmount,
	}
}

func (s *Session) Restore(snap SessionSnapshot) {
	s.movie = snap.Movie
	s.theater = snap.Theater
	s.showtime = snap.Showtime
	s.seats = make([]string, len(snap.Seats))
	copy(s.seats, snap.Seats)
	s.SetOccupiedSeats(snap.Occupied)
	s.seatAmount = snap.SeatAmount
	s.totalAmount = snap.TotalAmount
}
