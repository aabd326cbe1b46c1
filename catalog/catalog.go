// Package catalog giữ dữ liệu tham chiếu của website: phim, rạp, suất chiếu,
// bắp nước và sơ đồ ghế. Dữ liệu được seed lúc khởi động; phía đặt vé chỉ đọc,
// admin chỉ sửa được metadata phim và trạng thái theo lịch.
package catalog

import (
	"errors"
	"strings"
	"sync"
	"time"

	"cinema_booking/constants"
	"cinema_booking/model"
)

var ErrNotFound = errors.New("not found")

type Provider struct {
	mu          sync.RWMutex
	movies      []model.Movie
	theaters    []model.Theater
	showtimes   []model.Showtime
	concessions []model.ConcessionItem

	layout   model.SeatLayout // cấu hình phòng chung cho mọi suất
	occupied map[uint][]string // ghế bán sẵn theo suất chiếu (dữ liệu mồi)
}

func NewProvider() *Provider {
	p := &Provider{occupied: map[uint][]string{}}
	p.seed()
	return p
}

func (p *Provider) Movies(filter model.FilterMovieInput) []model.Movie {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := []model.Movie{}
	for _, m := range p.movies {
		if filter.StatusMovie != "" && m.StatusMovie != filter.StatusMovie {
			continue
		}
		if filter.Genre != "" && !strings.Contains(strings.ToLower(m.Genre), strings.ToLower(filter.Genre)) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (p *Provider) MovieByID(id uint) (model.Movie, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, m := range p.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, ErrNotFound
}

func (p *Provider) MovieBySlug(slug string) (model.Movie, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, m := range p.movies {
		if m.Slug == slug {
			return m, nil
		}
	}
	return model.Movie{}, ErrNotFound
}

// ApplyMovieUpdate ghi metadata mới cho phim (admin), trả về bản sau khi sửa
func (p *Provider) ApplyMovieUpdate(id uint, apply func(*model.Movie)) (model.Movie, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.movies {
		if p.movies[i].ID == id {
			apply(&p.movies[i])
			return p.movies[i], nil
		}
	}
	return model.Movie{}, ErrNotFound
}

func (p *Provider) Theaters() []model.Theater {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]model.Theater, len(p.theaters))
	copy(out, p.theaters)
	return out
}

func (p *Provider) TheaterByID(id uint) (model.Theater, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, t := range p.theaters {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Theater{}, ErrNotFound
}

func (p *Provider) Showtimes(filter model.FilterShowtimeInput) []model.Showtime {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := []model.Showtime{}
	for _, st := range p.showtimes {
		if filter.MovieId > 0 && st.MovieId != filter.MovieId {
			continue
		}
		if filter.TheaterId > 0 && st.TheaterId != filter.TheaterId {
			continue
		}
		if filter.Date != "" && st.StartTime.Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, st)
	}
	return out
}

// AllShowtimes bản sao toàn bộ suất chiếu (cho validator)
func (p *Provider) AllShowtimes() []model.Showtime {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]model.Showtime, len(p.showtimes))
	copy(out, p.showtimes)
	return out
}

func (p *Provider) ShowtimeByID(id uint) (model.Showtime, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, st := range p.showtimes {
		if st.ID == id {
			return st, nil
		}
	}
	return model.Showtime{}, ErrNotFound
}

func (p *Provider) Concessions() []model.ConcessionItem {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]model.ConcessionItem, len(p.concessions))
	copy(out, p.concessions)
	return out
}

func (p *Provider) ConcessionByID(id uint) (model.ConcessionItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, item := range p.concessions {
		if item.ID == id {
			return item, nil
		}
	}
	return model.ConcessionItem{}, ErrNotFound
}

// SeatLayout cấu hình phòng + ghế bán sẵn của một suất chiếu
func (p *Provider) SeatLayout(showtimeId uint) model.SeatLayout {
	p.mu.RLock()
	defer p.mu.RUnlock()

	layout := p.layout
	seeded := p.occupied[showtimeId]
	layout.OccupiedSeatIds = make([]string, len(seeded))
	copy(layout.OccupiedSeatIds, seeded)
	return layout
}

// ExpireShowtimes chuyển suất chiếu đã qua giờ kết thúc sang EXPIRED,
// trả về số suất bị đổi. Chạy định kỳ từ scheduler.
func (p *Provider) ExpireShowtimes(now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	changed := 0
	for i := range p.showtimes {
		if p.showtimes[i].Status == constants.SHOWTIME_AVAILABLE && p.showtimes[i].EndTime.Before(now) {
			p.showtimes[i].Status = constants.SHOWTIME_EXPIRED
			changed++
		}
	}
	return changed
}

// AdvanceMovieStatuses cập nhật trạng thái phim theo ngày khởi chiếu / kết thúc
func (p *Provider) AdvanceMovieStatuses(now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	today := now.Truncate(24 * time.Hour)
	changed := 0
	for i := range p.movies {
		m := &p.movies[i]

		release := m.DateRelease.Truncate(24 * time.Hour)
		if m.StatusMovie == constants.MOVIE_COMING_SOON && !today.Before(release) {
			m.StatusMovie = constants.MOVIE_NOW_SHOWING
			changed++
		}
		if m.DateEnd != nil {
			end := m.DateEnd.Truncate(24 * time.Hour)
			if m.StatusMovie == constants.MOVIE_NOW_SHOWING && today.After(end) {
				m.StatusMovie = constants.MOVIE_ENDED
				changed++
			}
		}
	}
	return changed
}
