package model

import "time"

type Movie struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Director    string    `json:"director"`
	Cast        string    `json:"cast"`
	Duration    int       `json:"duration"` // phút
	PosterUrl   string    `json:"posterUrl"`
	TrailerUrl  string    `json:"trailerUrl"`
	Rating      float64   `json:"rating"`
	DateRelease time.Time `json:"dateRelease"`
	DateEnd     *time.Time `json:"dateEnd,omitempty"`
	StatusMovie string    `json:"statusMovie"` // COMING_SOON, NOW_SHOWING, ENDED
}

type UpdateMovieInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Genre       *string  `json:"genre"`
	Director    *string  `json:"director"`
	Cast        *string  `json:"cast"`
	Duration    *int     `json:"duration" validate:"omitempty,gt=0"`
	PosterUrl   *string  `json:"posterUrl"`
	TrailerUrl  *string  `json:"trailerUrl"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

type FilterMovieInput struct {
	Pagination
	StatusMovie string `query:"status" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
	Genre       string `query:"genre"`
}
