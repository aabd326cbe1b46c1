package model

import "time"

// SeatPrice bảng giá vé của một suất chiếu
type SeatPrice struct {
	Regular float64 `json:"regular"`
	Vip     float64 `json:"vip"`
}

type Showtime struct {
	ID           uint      `json:"id"`
	PublicCode   string    `json:"publicCode"` // ST-XXXXXX
	MovieId      uint      `json:"movieId"`
	TheaterId    uint      `json:"theaterId"`
	StartTime    time.Time `json:"start"`
	EndTime      time.Time `json:"end"`
	Format       string    `json:"format"` // 2D, 3D, IMAX, 4DX
	LanguageType string    `json:"languageType"`
	Price        SeatPrice `json:"price"`
	Status       string    `json:"status"` // AVAILABLE, EXPIRED
}

type FilterShowtimeInput struct {
	Pagination
	MovieId   uint   `query:"movieId" validate:"omitempty,gt=0"`
	TheaterId uint   `query:"theaterId" validate:"omitempty,gt=0"`
	Date      string `query:"date"` // YYYY-MM-DD
}
