package helper

import (
	"regexp"
	"strconv"

	"cinema_booking/model"
)

var seatIdPattern = regexp.MustCompile(`^[A-Z]\d+$`)

// IsValidSeatId kiểm tra mã ghế dạng chữ hàng + số cột, ví dụ "A1", "H12"
func IsValidSeatId(seatId string) bool {
	return seatIdPattern.MatchString(seatId)
}

// SeatRowIndex trả về chỉ số hàng từ mã ghế (A=0, B=1...), -1 nếu mã sai
func SeatRowIndex(seatId string) int {
	if !IsValidSeatId(seatId) {
		return -1
	}
	return int(seatId[0] - 'A')
}

// SeatColumn trả về số cột của ghế, 0 nếu mã sai
func SeatColumn(seatId string) int {
	if !IsValidSeatId(seatId) {
		return 0
	}
	col, _ := strconv.Atoi(seatId[1:])
	return col
}

// SeatInLayout kiểm tra ghế nằm trong phạm vi phòng chiếu
func SeatInLayout(seatId string, layout model.SeatLayout) bool {
	row := SeatRowIndex(seatId)
	col := SeatColumn(seatId)
	return row >= 0 && row < layout.RowCount && col >= 1 && col <= layout.SeatsPerRow
}

// IsVipSeat ghế VIP khi hàng của nó thuộc danh sách hàng VIP.
// Luôn suy ra lại từ mã ghế, không cache theo ghế.
func IsVipSeat(seatId string, vipRowIndices []int) bool {
	row := SeatRowIndex(seatId)
	if row < 0 {
		return false
	}
	for _, v := range vipRowIndices {
		if v == row {
			return true
		}
	}
	return false
}

// CalculateSeatAmount tính tổng tiền ghế từ danh sách ghế + bảng giá + hàng VIP
func CalculateSeatAmount(seatIds []string, regularPrice, vipPrice float64, vipRowIndices []int) float64 {
	total := float64(0)
	for _, seatId := range seatIds {
		if IsVipSeat(seatId, vipRowIndices) {
			total += vipPrice
		} else {
			total += regularPrice
		}
	}
	return total
}
