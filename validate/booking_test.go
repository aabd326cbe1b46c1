package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/constants"
	"cinema_booking/model"
)

func TestValidateCustomerInfo(t *testing.T) {
	ok := ValidateCustomerInfo(model.CustomerInfo{
		Name: "Nguyễn Văn An", Email: "an@example.com", Phone: "0901234567",
	})
	assert.True(t, ok.IsValid)
	assert.Empty(t, ok.Errors)

	// Tên 1 ký tự + email sai, số điện thoại đúng dạng
	bad := ValidateCustomerInfo(model.CustomerInfo{
		Name: "A", Email: "bad", Phone: "0901234567",
	})
	assert.False(t, bad.IsValid)
	assert.Contains(t, bad.Errors, constants.ERROR_NAME_TOO_SHORT)
	assert.Contains(t, bad.Errors, constants.ERROR_EMAIL_INVALID)
	assert.NotContains(t, bad.Errors, constants.ERROR_PHONE_INVALID)
}

func TestValidateCustomerInfo_Phone(t *testing.T) {
	valid := []string{"0901234567", "0351234567", "0781234567", "0591234567"}
	for _, phone := range valid {
		res := ValidateCustomerInfo(model.CustomerInfo{Name: "An", Email: "an@example.com", Phone: phone})
		assert.True(t, res.IsValid, phone)
	}

	invalid := []string{"0123456789", "090123456", "09012345678", "1901234567", "+84901234567"}
	for _, phone := range invalid {
		res := ValidateCustomerInfo(model.CustomerInfo{Name: "An", Email: "an@example.com", Phone: phone})
		assert.Contains(t, res.Errors, constants.ERROR_PHONE_INVALID, phone)
	}
}

func TestValidateCustomerInfo_NameTrimmed(t *testing.T) {
	res := ValidateCustomerInfo(model.CustomerInfo{Name: "  B  ", Email: "b@example.com", Phone: "0901234567"})
	assert.Contains(t, res.Errors, constants.ERROR_NAME_TOO_SHORT)
}

func TestValidateSeatSelection(t *testing.T) {
	assert.True(t, ValidateSeatSelection([]string{"A1", "H12"}).IsValid)

	empty := ValidateSeatSelection(nil)
	assert.Contains(t, empty.Errors, constants.ERROR_SEATS_EMPTY)

	tooMany := ValidateSeatSelection([]string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9"})
	assert.Contains(t, tooMany.Errors, constants.ERROR_SEATS_TOO_MANY)

	badId := ValidateSeatSelection([]string{"A1", "x9"})
	assert.False(t, badId.IsValid)
	require.Len(t, badId.Errors, 1)
	assert.Contains(t, badId.Errors[0], "x9")
}

func TestValidateBookingAmount(t *testing.T) {
	// A1 thường 75000 + H1 VIP 120000 = 195000
	ok := ValidateBookingAmount([]string{"A1", "H1"}, 75000, 120000, []int{7, 8, 9}, 0, 195000)
	assert.True(t, ok.IsValid)

	mismatch := ValidateBookingAmount([]string{"A1", "H1"}, 75000, 120000, []int{7, 8, 9}, 0, 194999)
	assert.Contains(t, mismatch.Errors, constants.ERROR_AMOUNT_MISMATCH)

	// Sai số nhỏ trong epsilon được chấp nhận
	noise := ValidateBookingAmount([]string{"A1", "H1"}, 75000, 120000, []int{7, 8, 9}, 0, 195000.005)
	assert.True(t, noise.IsValid)

	badPrice := ValidateBookingAmount([]string{"A1"}, 0, 120000, nil, 0, 0)
	assert.Contains(t, badPrice.Errors, constants.ERROR_PRICE_INVALID)

	negative := ValidateBookingAmount([]string{"A1"}, 75000, 120000, nil, -1, 74999)
	assert.Contains(t, negative.Errors, constants.ERROR_CONCESSION_NEGATIVE)
}

func showtimeFixture(id uint, start time.Time) model.Showtime {
	return model.Showtime{
		ID:        id,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     model.SeatPrice{Regular: 75000, Vip: 120000},
	}
}

func TestValidateShowtimeDate(t *testing.T) {
	future := showtimeFixture(1, time.Now().Add(24*time.Hour))
	past := showtimeFixture(2, time.Now().Add(-time.Hour))
	showtimes := []model.Showtime{future, past}

	assert.True(t, ValidateShowtimeDate(1, showtimes).IsValid)

	res := ValidateShowtimeDate(2, showtimes)
	assert.Equal(t, []string{constants.ERROR_SHOWTIME_IN_PAST}, res.Errors)

	// Không tìm thấy: chỉ báo một lỗi, bỏ qua kiểm tra thời gian
	missing := ValidateShowtimeDate(99, showtimes)
	assert.Equal(t, []string{constants.ERROR_SHOWTIME_NOT_FOUND}, missing.Errors)
}

func TestValidateSeatAvailability(t *testing.T) {
	res := ValidateSeatAvailability([]string{"A1", "B2", "C3"}, []string{"B2", "C3", "D4"})

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 2) // một lỗi cho từng ghế trùng
	assert.Contains(t, res.Errors[0], "B2")
	assert.Contains(t, res.Errors[1], "C3")

	assert.True(t, ValidateSeatAvailability([]string{"A1"}, []string{"B2"}).IsValid)
}

func TestValidateBooking_Composite(t *testing.T) {
	future := showtimeFixture(1, time.Now().Add(24*time.Hour))

	in := BookingInput{
		Customer:         model.CustomerInfo{Name: "Nguyễn Văn An", Email: "an@example.com", Phone: "0901234567"},
		SeatIds:          []string{"A1", "H1"},
		RegularPrice:     75000,
		VipPrice:         120000,
		VipRowIndices:    []int{7, 8, 9},
		ConcessionAmount: 0,
		TotalAmount:      195000,
		ShowtimeId:       1,
		Showtimes:        []model.Showtime{future},
		OccupiedSeatIds:  []string{"D4"},
	}
	assert.True(t, ValidateBooking(in).IsValid)

	// Gom lỗi từ nhiều nhóm kiểm tra, đúng thứ tự: khách → ghế → tiền → suất → trùng ghế
	in.Customer.Name = "A"
	in.TotalAmount = 1
	in.OccupiedSeatIds = []string{"A1"}
	res := ValidateBooking(in)

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, constants.ERROR_NAME_TOO_SHORT, res.Errors[0])
	assert.Equal(t, constants.ERROR_AMOUNT_MISMATCH, res.Errors[1])
	assert.Contains(t, res.Errors[2], "A1")
}
