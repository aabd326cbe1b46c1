package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"cinema_booking/constants"
	"cinema_booking/helper"
	"cinema_booking/model"
)

// Result kết quả kiểm tra: hợp lệ hay không + danh sách lỗi theo thứ tự.
// Các hàm kiểm tra không bao giờ panic, lỗi luôn trả về dạng giá trị.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func ok() Result {
	return Result{IsValid: true, Errors: []string{}}
}

func fail(errs []string) Result {
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Số di động 10 số: 0 + đầu số 3/5/7/8/9 + 8 số
var phonePattern = regexp.MustCompile(`^0[35789]\d{8}$`)

// ValidateCustomerInfo kiểm tra họ tên, email, số điện thoại khách
func ValidateCustomerInfo(info model.CustomerInfo) Result {
	errs := []string{}

	if len([]rune(strings.TrimSpace(info.Name))) < 2 {
		errs = append(errs, constants.ERROR_NAME_TOO_SHORT)
	}
	if !emailPattern.MatchString(info.Email) {
		errs = append(errs, constants.ERROR_EMAIL_INVALID)
	}
	if !phonePattern.MatchString(info.Phone) {
		errs = append(errs, constants.ERROR_PHONE_INVALID)
	}

	return fail(errs)
}

// ValidateSeatSelection ghế phải có ít nhất 1, tối đa 8, mã đúng dạng A1..Z99
func ValidateSeatSelection(seatIds []string) Result {
	errs := []string{}

	if len(seatIds) == 0 {
		errs = append(errs, constants.ERROR_SEATS_EMPTY)
	}
	if len(seatIds) > constants.MAX_SEATS_PER_BOOKING {
		errs = append(errs, constants.ERROR_SEATS_TOO_MANY)
	}
	for _, seatId := range seatIds {
		if !helper.IsValidSeatId(seatId) {
			errs = append(errs, fmt.Sprintf("%s: %s", constants.ERROR_SEAT_ID_INVALID, seatId))
		}
	}

	return fail(errs)
}

// Sai số cho phép khi so tổng tiền (hấp thụ nhiễu float)
const amountEpsilon = 0.01

// ValidateBookingAmount tính lại tiền ghế độc lập rồi so với tổng caller đưa.
// Lệch quá epsilon nghĩa là caller quên recompute — lỗi lập trình, không phải lỗi nhập liệu.
func ValidateBookingAmount(seatIds []string, regularPrice, vipPrice float64, vipRowIndices []int, concessionAmount, totalAmount float64) Result {
	errs := []string{}

	if regularPrice <= 0 || vipPrice <= 0 {
		errs = append(errs, constants.ERROR_PRICE_INVALID)
	}
	if concessionAmount < 0 {
		errs = append(errs, constants.ERROR_CONCESSION_NEGATIVE)
	}

	expected := helper.CalculateSeatAmount(seatIds, regularPrice, vipPrice, vipRowIndices) + concessionAmount
	if math.Abs(expected-totalAmount) > amountEpsilon {
		errs = append(errs, constants.ERROR_AMOUNT_MISMATCH)
	}

	return fail(errs)
}

// ValidateShowtimeDate suất chiếu phải tồn tại và chưa qua giờ chiếu
func ValidateShowtimeDate(showtimeId uint, showtimes []model.Showtime) Result {
	var found *model.Showtime
	for i := range showtimes {
		if showtimes[i].ID == showtimeId {
			found = &showtimes[i]
			break
		}
	}
	if found == nil {
		// Không tìm thấy thì khỏi kiểm tra thời gian
		return fail([]string{constants.ERROR_SHOWTIME_NOT_FOUND})
	}
	if found.StartTime.Before(time.Now()) {
		return fail([]string{constants.ERROR_SHOWTIME_IN_PAST})
	}
	return ok()
}

// ValidateSeatAvailability báo lỗi riêng cho từng ghế đã có người đặt
// để client biết chính xác ghế nào cần bỏ chọn
func ValidateSeatAvailability(seatIds []string, occupiedSeatIds []string) Result {
	occupied := make(map[string]struct{}, len(occupiedSeatIds))
	for _, id := range occupiedSeatIds {
		occupied[id] = struct{}{}
	}

	errs := []string{}
	for _, seatId := range seatIds {
		if _, taken := occupied[seatId]; taken {
			errs = append(errs, fmt.Sprintf(constants.ERROR_SEAT_TAKEN, seatId))
		}
	}
	return fail(errs)
}

// BookingInput toàn bộ dữ liệu cần cho kiểm tra tổng hợp trước khi chốt đơn
type BookingInput struct {
	Customer         model.CustomerInfo
	SeatIds          []string
	RegularPrice     float64
	VipPrice         float64
	VipRowIndices    []int
	ConcessionAmount float64
	TotalAmount      float64
	ShowtimeId       uint
	Showtimes        []model.Showtime
	OccupiedSeatIds  []string
}

// ValidateBooking chạy lần lượt: thông tin khách, ghế đã chọn, tổng tiền,
// suất chiếu, ghế trùng — gom hết lỗi, không dừng ở lỗi đầu tiên
func ValidateBooking(in BookingInput) Result {
	errs := []string{}

	errs = append(errs, ValidateCustomerInfo(in.Customer).Errors...)
	errs = append(errs, ValidateSeatSelection(in.SeatIds).Errors...)
	errs = append(errs, ValidateBookingAmount(in.SeatIds, in.RegularPrice, in.VipPrice, in.VipRowIndices, in.ConcessionAmount, in.TotalAmount).Errors...)
	errs = append(errs, ValidateShowtimeDate(in.ShowtimeId, in.Showtimes).Errors...)
	errs = append(errs, ValidateSeatAvailability(in.SeatIds, in.OccupiedSeatIds).Errors...)

	return fail(errs)
}
