package model

// SeatLayout cấu hình phòng chiếu cho một suất: số hàng, số ghế mỗi hàng,
// các hàng VIP và danh sách ghế đã bán sẵn (dữ liệu mồi).
type SeatLayout struct {
	RowCount        int      `json:"rowCount"`
	SeatsPerRow     int      `json:"seatsPerRow"`
	VipRowIndices   []int    `json:"vipRowIndices"`
	OccupiedSeatIds []string `json:"occupiedSeatIds"`
}

// SeatUI một ghế trả về cho client khi vẽ sơ đồ phòng
type SeatUI struct {
	Label  string  `json:"label"` // A1, B12...
	Type   string  `json:"type"`  // NORMAL, VIP
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}
