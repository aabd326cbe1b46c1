package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(weekday time.Weekday, hour int) time.Time {
	// 2026-08-24 là thứ Hai
	base := time.Date(2026, 8, 24, hour, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(weekday-time.Monday))
}

func TestCalculateShowtimePrice(t *testing.T) {
	// 2D, ngày thường, ngoài giờ vàng: giá gốc
	p := CalculateShowtimePrice(at(time.Monday, 10), "2D")
	assert.Equal(t, float64(75000), p.Regular)
	assert.Equal(t, float64(120000), p.Vip)

	// IMAX giờ vàng cuối tuần: cộng đủ ba phụ thu
	p = CalculateShowtimePrice(at(time.Saturday, 20), "IMAX")
	assert.Equal(t, float64(75000+20000+10000+10000), p.Regular)
	assert.Equal(t, p.Regular+45000, p.Vip)

	// 22h không còn là giờ vàng
	p = CalculateShowtimePrice(at(time.Tuesday, 22), "3D")
	assert.Equal(t, float64(80000), p.Regular)
}
