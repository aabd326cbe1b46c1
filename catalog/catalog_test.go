package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/constants"
	"cinema_booking/model"
)

func TestProvider_SeedData(t *testing.T) {
	p := NewProvider()

	movies := p.Movies(model.FilterMovieInput{})
	require.NotEmpty(t, movies)
	for _, m := range movies {
		assert.NotEmpty(t, m.Slug)
		assert.Positive(t, m.Duration)
	}

	assert.NotEmpty(t, p.Theaters())
	assert.NotEmpty(t, p.Concessions())

	showtimes := p.AllShowtimes()
	require.NotEmpty(t, showtimes)
	for _, st := range showtimes {
		assert.Positive(t, st.Price.Regular)
		assert.Greater(t, st.Price.Vip, st.Price.Regular)
		assert.True(t, st.EndTime.After(st.StartTime))
	}
}

func TestProvider_Lookups(t *testing.T) {
	p := NewProvider()

	movie := p.Movies(model.FilterMovieInput{})[0]
	bySlug, err := p.MovieBySlug(movie.Slug)
	require.NoError(t, err)
	assert.Equal(t, movie.ID, bySlug.ID)

	_, err = p.MovieByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)

	st := p.AllShowtimes()[0]
	layout := p.SeatLayout(st.ID)
	assert.Equal(t, 10, layout.RowCount)
	assert.Equal(t, 12, layout.SeatsPerRow)
	assert.NotEmpty(t, layout.OccupiedSeatIds) // luôn có ghế mồi

	// Suất không tồn tại vẫn trả layout chuẩn, không ghế mồi
	empty := p.SeatLayout(999999)
	assert.Empty(t, empty.OccupiedSeatIds)
}

func TestProvider_MoviesFilterByStatus(t *testing.T) {
	p := NewProvider()

	coming := p.Movies(model.FilterMovieInput{StatusMovie: constants.MOVIE_COMING_SOON})
	for _, m := range coming {
		assert.Equal(t, constants.MOVIE_COMING_SOON, m.StatusMovie)
	}
}

func TestProvider_ExpireShowtimes(t *testing.T) {
	p := NewProvider()

	// Chưa suất nào qua giờ ở hiện tại
	assert.Zero(t, p.ExpireShowtimes(time.Now().Add(-24*time.Hour)))

	// Dời "hiện tại" ra xa thì toàn bộ suất hết hạn
	n := p.ExpireShowtimes(time.Now().AddDate(0, 0, 10))
	assert.Equal(t, len(p.AllShowtimes()), n)
	for _, st := range p.AllShowtimes() {
		assert.Equal(t, constants.SHOWTIME_EXPIRED, st.Status)
	}
}

func TestProvider_AdvanceMovieStatuses(t *testing.T) {
	p := NewProvider()

	// Một năm sau: phim sắp chiếu đã chiếu, phim đang chiếu đã kết thúc
	p.AdvanceMovieStatuses(time.Now().AddDate(1, 0, 0))

	for _, m := range p.Movies(model.FilterMovieInput{}) {
		assert.NotEqual(t, constants.MOVIE_COMING_SOON, m.StatusMovie, m.Title)
	}
}

func TestProvider_ApplyMovieUpdate(t *testing.T) {
	p := NewProvider()
	movie := p.Movies(model.FilterMovieInput{})[0]

	updated, err := p.ApplyMovieUpdate(movie.ID, func(m *model.Movie) {
		m.Rating = 9.9
	})
	require.NoError(t, err)
	assert.Equal(t, 9.9, updated.Rating)

	again, _ := p.MovieByID(movie.ID)
	assert.Equal(t, 9.9, again.Rating)

	_, err = p.ApplyMovieUpdate(9999, func(m *model.Movie) {})
	assert.ErrorIs(t, err, ErrNotFound)
}
