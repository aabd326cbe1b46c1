package constants

// Trạng thái đơn đặt vé
const (
	BOOKING_CONFIRMED = "CONFIRMED"
	BOOKING_CANCELLED = "CANCELLED"
	BOOKING_COMPLETED = "COMPLETED"
)

// Trạng thái suất chiếu
const (
	SHOWTIME_AVAILABLE = "AVAILABLE"
	SHOWTIME_EXPIRED   = "EXPIRED"
)

// Trạng thái phim
const (
	MOVIE_COMING_SOON = "COMING_SOON"
	MOVIE_NOW_SHOWING = "NOW_SHOWING"
	MOVIE_ENDED       = "ENDED"
)

// Phương thức thanh toán được chấp nhận (giả lập, không gọi cổng thật)
var PaymentMethods = []string{"CARD", "CASH", "MOMO", "VNPAY"}

// Giới hạn chọn ghế cho một đơn
const MAX_SEATS_PER_BOOKING = 8

// Thông báo lỗi dùng chung
const (
	ERROR_INTERNAL_ERROR      = "Lỗi hệ thống"
	DATA_INPUT_IS_NOT_NUMBER  = "Dữ liệu truyền vào không phải là số"
	ERROR_NAME_TOO_SHORT      = "Họ tên phải có ít nhất 2 ký tự"
	ERROR_EMAIL_INVALID       = "Email không hợp lệ"
	ERROR_PHONE_INVALID       = "Số điện thoại không hợp lệ (10 số, bắt đầu bằng 0)"
	ERROR_SEATS_EMPTY         = "Vui lòng chọn ít nhất một ghế"
	ERROR_SEATS_TOO_MANY      = "Chỉ được chọn tối đa 8 ghế"
	ERROR_SEAT_ID_INVALID     = "Mã ghế không hợp lệ"
	ERROR_PRICE_INVALID       = "Bảng giá vé không hợp lệ"
	ERROR_CONCESSION_NEGATIVE = "Tiền bắp nước không hợp lệ"
	ERROR_AMOUNT_MISMATCH     = "Tổng tiền không khớp với giá vé đã chọn"
	ERROR_SHOWTIME_NOT_FOUND  = "Suất chiếu không tồn tại"
	ERROR_SHOWTIME_IN_PAST    = "Suất chiếu đã qua"
	ERROR_SEAT_TAKEN          = "Ghế %s đã có người đặt"
	ERROR_STATUS_TRANSITION   = "Không thể chuyển trạng thái đơn"
)
