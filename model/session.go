package model

// SelectShowtimeInput chọn phim + rạp + suất chiếu cho phiên đặt vé
type SelectShowtimeInput struct {
	MovieId    uint `json:"movieId" validate:"required,gt=0"`
	TheaterId  uint `json:"theaterId" validate:"required,gt=0"`
	ShowtimeId uint `json:"showtimeId" validate:"required,gt=0"`
}

type AddSeatInput struct {
	SeatId string `json:"seatId" validate:"required"`
}

// SessionView trạng thái phiên trả về cho client
type SessionView struct {
	Movie            *Movie            `json:"movie"`
	Theater          *Theater          `json:"theater"`
	Showtime         *Showtime         `json:"showtime"`
	Seats            []string          `json:"seats"`
	SeatAmount       float64           `json:"seatAmount"`
	ConcessionOrders []ConcessionOrder `json:"concessionOrders"`
	ConcessionAmount float64           `json:"concessionAmount"`
	TotalAmount      float64           `json:"totalAmount"`
}
