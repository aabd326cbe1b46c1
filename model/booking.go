package model

import "time"

// CustomerInfo thông tin khách điền lúc thanh toán
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking đơn đặt vé đã chốt. Sau khi tạo chỉ được đổi Status,
// mọi trường khác đóng băng.
type Booking struct {
	ID               string            `json:"id"` // ORD-XXXXXX
	UserId           string            `json:"userId"`
	ShowtimeId       uint              `json:"showtimeId"`
	MovieId          uint              `json:"movieId"`
	TheaterId        uint              `json:"theaterId"`
	Seats            []string          `json:"seats"`
	SeatAmount       float64           `json:"seatAmount"`
	ConcessionOrders []ConcessionOrder `json:"concessionOrders"`
	ConcessionAmount float64           `json:"concessionAmount"`
	TotalAmount      float64           `json:"totalAmount"`
	Status           string            `json:"status"` // CONFIRMED, CANCELLED, COMPLETED
	CustomerInfo     CustomerInfo      `json:"customerInfo"`
	PaymentMethod    string            `json:"paymentMethod"`
	CreatedAt        time.Time         `json:"createdAt"`
}

type CheckoutInput struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=CARD CASH MOMO VNPAY"`
}

type FilterBookingInput struct {
	Pagination
	Email  string `query:"email"`
	Date   string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Status string `query:"status" validate:"omitempty,oneof=CONFIRMED CANCELLED COMPLETED"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED COMPLETED"`
}
