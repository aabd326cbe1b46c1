package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
)

// BookingDraft dữ liệu chốt đơn; id, trạng thái và thời điểm tạo do Ledger cấp
type BookingDraft struct {
	UserId           string
	ShowtimeId       uint
	MovieId          uint
	TheaterId        uint
	Seats            []string
	SeatAmount       float64
	ConcessionOrders []model.ConcessionOrder
	ConcessionAmount float64
	TotalAmount      float64
	CustomerInfo     model.CustomerInfo
	PaymentMethod    string
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrStatusTransition = errors.New(constants.ERROR_STATUS_TRANSITION)

// BookingLedger sổ đơn đặt vé dùng chung cho mọi phiên. Đơn chỉ được thêm,
// không xoá; sau khi tạo chỉ đổi được trạng thái.
type BookingLedger struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func NewBookingLedger() *BookingLedger {
	return &BookingLedger{bookings: []model.Booking{}}
}

// AddBooking cấp mã ORD-XXXXXX không trùng trong tiến trình, đóng băng
// danh sách ghế và bắp nước của phiên vào đơn. Ledger tin dữ liệu đầu vào
// đã qua validator — việc đó là hợp đồng của caller.
func (lg *BookingLedger) AddBooking(draft BookingDraft) model.Booking {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	booking := model.Booking{
		ID:               lg.nextCode(),
		UserId:           draft.UserId,
		ShowtimeId:       draft.ShowtimeId,
		MovieId:          draft.MovieId,
		TheaterId:        draft.TheaterId,
		SeatAmount:       draft.SeatAmount,
		ConcessionAmount: draft.ConcessionAmount,
		TotalAmount:      draft.TotalAmount,
		Status:           constants.BOOKING_CONFIRMED,
		CustomerInfo:     draft.CustomerInfo,
		PaymentMethod:    draft.PaymentMethod,
		CreatedAt:        time.Now(),
	}

	// Snapshot sâu: đơn không được chia sẻ slice với phiên
	booking.Seats = make([]string, len(draft.Seats))
	copy(booking.Seats, draft.Seats)
	copier.Copy(&booking.ConcessionOrders, &draft.ConcessionOrders)
	if booking.ConcessionOrders == nil {
		booking.ConcessionOrders = []model.ConcessionOrder{}
	}

	lg.bookings = append(lg.bookings, booking)
	return booking
}

func (lg *BookingLedger) nextCode() string {
	for {
		code := "ORD-" + utils.RandomString(6)
		exists := false
		for _, b := range lg.bookings {
			if b.ID == code {
				exists = true
				break
			}
		}
		if !exists {
			return code
		}
	}
}

// canTransition bảng chuyển trạng thái: CONFIRMED → COMPLETED/CANCELLED,
// COMPLETED và CANCELLED là trạng thái cuối
func canTransition(from, to string) bool {
	if from != constants.BOOKING_CONFIRMED {
		return false
	}
	return to == constants.BOOKING_COMPLETED || to == constants.BOOKING_CANCELLED
}

// UpdateStatus chỉ đổi trường Status, mọi trường khác giữ nguyên
func (lg *BookingLedger) UpdateStatus(bookingId, newStatus string) (model.Booking, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	for i := range lg.bookings {
		if lg.bookings[i].ID == bookingId {
			if !canTransition(lg.bookings[i].Status, newStatus) {
				return model.Booking{}, ErrStatusTransition
			}
			lg.bookings[i].Status = newStatus
			return lg.bookings[i], nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

func (lg *BookingLedger) Get(bookingId string) (model.Booking, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	for _, b := range lg.bookings {
		if b.ID == bookingId {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

func (lg *BookingLedger) All() []model.Booking {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	out := make([]model.Booking, len(lg.bookings))
	copy(out, lg.bookings)
	return out
}

// ByEmail lọc đơn theo email khách
func (lg *BookingLedger) ByEmail(email string) []model.Booking {
	return lg.filter(func(b model.Booking) bool {
		return strings.EqualFold(b.CustomerInfo.Email, email)
	})
}

// ByDate lọc đơn theo ngày tạo, date dạng YYYY-MM-DD
func (lg *BookingLedger) ByDate(date string) []model.Booking {
	return lg.filter(func(b model.Booking) bool {
		return b.CreatedAt.Format("2006-01-02") == date
	})
}

func (lg *BookingLedger) ByStatus(status string) []model.Booking {
	return lg.filter(func(b model.Booking) bool {
		return b.Status == status
	})
}

func (lg *BookingLedger) filter(keep func(model.Booking) bool) []model.Booking {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	out := []model.Booking{}
	for _, b := range lg.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// TotalRevenue tổng doanh thu, không tính đơn đã huỷ
func (lg *BookingLedger) TotalRevenue() float64 {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	total := float64(0)
	for _, b := range lg.bookings {
		if b.Status != constants.BOOKING_CANCELLED {
			total += b.TotalAmount
		}
	}
	return total
}

// TodayCount số đơn tạo trong ngày hôm nay
func (lg *BookingLedger) TodayCount() int {
	return len(lg.ByDate(time.Now().Format("2006-01-02")))
}

// DistinctCustomerCount số khách khác nhau theo email
func (lg *BookingLedger) DistinctCustomerCount() int {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	seen := map[string]struct{}{}
	for _, b := range lg.bookings {
		seen[strings.ToLower(b.CustomerInfo.Email)] = struct{}{}
	}
	return len(seen)
}

// OccupiedSeats ghế đã bán của một suất chiếu từ các đơn chưa huỷ
func (lg *BookingLedger) OccupiedSeats(showtimeId uint) []string {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	seats := []string{}
	for _, b := range lg.bookings {
		if b.ShowtimeId == showtimeId && b.Status != constants.BOOKING_CANCELLED {
			seats = append(seats, b.Seats...)
		}
	}
	return seats
}

// Snapshot / Restore cho persistence shim
func (lg *BookingLedger) Snapshot() []model.Booking {
	return lg.All()
}

func (lg *BookingLedger) Restore(bookings []model.Booking) {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	lg.bookings = make([]model.Booking, len(bookings))
	copy(lg.bookings, bookings)
}
