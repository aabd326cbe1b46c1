package helper

import (
	"time"

	"cinema_booking/model"
)

// CalculateShowtimePrice tính bảng giá cho một suất chiếu khi seed dữ liệu.
// Giá thường theo định dạng + giờ vàng + cuối tuần, giá VIP cộng thêm phụ thu cố định.
func CalculateShowtimePrice(startTime time.Time, format string) model.SeatPrice {
	base := 75000.0

	// Định dạng
	switch format {
	case "IMAX":
		base += 20000
	case "4DX":
		base += 10000
	case "3D":
		base += 5000
	}

	// Giờ vàng (18h-22h)
	hour := startTime.Hour()
	if hour >= 18 && hour < 22 {
		base += 10000
	}

	// Cuối tuần
	if startTime.Weekday() == time.Saturday || startTime.Weekday() == time.Sunday {
		base += 10000
	}

	return model.SeatPrice{
		Regular: base,
		Vip:     base + 45000,
	}
}
