package catalog

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"cinema_booking/constants"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

// seed nạp dữ liệu tham chiếu. Suất chiếu được sinh cho 5 ngày tới
// nên lúc nào cũng có suất hợp lệ để đặt.
func (p *Provider) seed() {
	movies := []model.Movie{
		{
			Title: "Mắt Biếc Trở Lại", Genre: "Tâm lý, Lãng mạn",
			Director: "Trần Hữu Phúc", Cast: "Ngô Thanh Trúc, Lê Minh Khang",
			Duration: 117, Rating: 8.4,
			Description: "Chuyện tình tuổi học trò nối dài sau hai mươi năm xa cách.",
			PosterUrl:   "https://cdn.example.com/posters/mat-biec-tro-lai.jpg",
			DateRelease: daysFromNow(-14), DateEnd: utils.Ptr(daysFromNow(30)),
			StatusMovie: constants.MOVIE_NOW_SHOWING,
		},
		{
			Title: "Thành Phố Không Ngủ", Genre: "Hành động, Hình sự",
			Director: "Vũ Quốc Bảo", Cast: "Phạm Anh Tú, Đặng Thu Hà",
			Duration: 128, Rating: 7.9,
			Description: "Một đêm truy đuổi nghẹt thở giữa lòng Sài Gòn.",
			PosterUrl:   "https://cdn.example.com/posters/thanh-pho-khong-ngu.jpg",
			DateRelease: daysFromNow(-7), DateEnd: utils.Ptr(daysFromNow(45)),
			StatusMovie: constants.MOVIE_NOW_SHOWING,
		},
		{
			Title: "Hồn Ma Học Đường", Genre: "Kinh dị, Hài",
			Director: "Lý Thanh Sơn", Cast: "Trịnh Gia Hân, Hoàng Đức Thịnh",
			Duration: 102, Rating: 7.1,
			Description: "Ngôi trường cũ mở cửa trở lại cùng một vị khách không mời.",
			PosterUrl:   "https://cdn.example.com/posters/hon-ma-hoc-duong.jpg",
			DateRelease: daysFromNow(-3), DateEnd: utils.Ptr(daysFromNow(60)),
			StatusMovie: constants.MOVIE_NOW_SHOWING,
		},
		{
			Title: "Chuyến Tàu Cuối Cùng", Genre: "Khoa học viễn tưởng",
			Director: "Ngô Duy Tân", Cast: "Bùi Khánh Linh, Trần Quốc Việt",
			Duration: 141, Rating: 8.8,
			Description: "Nhân loại đặt cược vào chuyến tàu rời Trái Đất cuối cùng.",
			PosterUrl:   "https://cdn.example.com/posters/chuyen-tau-cuoi-cung.jpg",
			DateRelease: daysFromNow(10),
			StatusMovie: constants.MOVIE_COMING_SOON,
		},
		{
			Title: "Bầu Trời Của Mẹ", Genre: "Gia đình",
			Director: "Đỗ Hải Yến", Cast: "Nguyễn Lan Chi, Phan Văn Đức",
			Duration: 95, Rating: 8.0,
			Description: "Hành trình một người mẹ đơn thân nuôi giấc mơ bay cho con.",
			PosterUrl:   "https://cdn.example.com/posters/bau-troi-cua-me.jpg",
			DateRelease: daysFromNow(21),
			StatusMovie: constants.MOVIE_COMING_SOON,
		},
	}
	for i := range movies {
		movies[i].ID = uint(i + 1)
		movies[i].Slug = slug.Make(movies[i].Title)
	}
	p.movies = movies

	p.theaters = []model.Theater{
		{ID: 1, Name: "Galaxy Nguyễn Du", Slug: slug.Make("Galaxy Nguyễn Du"), Address: "116 Nguyễn Du, Quận 1", Province: "TP. Hồ Chí Minh", Hotline: "1900 2224"},
		{ID: 2, Name: "Galaxy Hà Đông", Slug: slug.Make("Galaxy Hà Đông"), Address: "Tầng 5 TTTM Mê Linh, Hà Đông", Province: "Hà Nội", Hotline: "1900 2224"},
		{ID: 3, Name: "Galaxy Đà Nẵng", Slug: slug.Make("Galaxy Đà Nẵng"), Address: "78 Lê Duẩn, Hải Châu", Province: "Đà Nẵng", Hotline: "1900 2224"},
	}

	p.concessions = []model.ConcessionItem{
		{ID: 1, Name: "Bắp rang bơ (L)", Price: 45000, ImageUrl: "https://cdn.example.com/concessions/popcorn-l.jpg"},
		{ID: 2, Name: "Bắp phô mai (L)", Price: 55000, ImageUrl: "https://cdn.example.com/concessions/popcorn-cheese.jpg"},
		{ID: 3, Name: "Coca-Cola (M)", Price: 30000, ImageUrl: "https://cdn.example.com/concessions/coke-m.jpg"},
		{ID: 4, Name: "Combo 2 nước + 1 bắp", Price: 115000, ImageUrl: "https://cdn.example.com/concessions/combo-couple.jpg"},
		{ID: 5, Name: "Khoai tây chiên", Price: 40000, ImageUrl: "https://cdn.example.com/concessions/fries.jpg"},
		{ID: 6, Name: "Nước suối", Price: 20000, ImageUrl: "https://cdn.example.com/concessions/water.jpg"},
	}

	// Phòng chiếu chuẩn: 10 hàng (A-J) x 12 ghế, hàng E-H là VIP
	p.layout = model.SeatLayout{
		RowCount:      10,
		SeatsPerRow:   12,
		VipRowIndices: []int{4, 5, 6, 7},
	}

	p.seedShowtimes()
}

// seedShowtimes sinh suất chiếu 5 ngày tới cho các phim đang chiếu
func (p *Provider) seedShowtimes() {
	slots := []struct {
		hour, minute int
		format       string
	}{
		{10, 0, "2D"},
		{14, 30, "2D"},
		{17, 15, "3D"},
		{20, 0, "IMAX"},
	}

	loc := time.FixedZone("ICT", 7*3600)
	var id uint

	for day := 0; day < 5; day++ {
		date := time.Now().In(loc).AddDate(0, 0, day)
		for _, theater := range p.theaters {
			for _, movie := range p.movies {
				if movie.StatusMovie != constants.MOVIE_NOW_SHOWING {
					continue
				}
				for _, s := range slots {
					start := time.Date(date.Year(), date.Month(), date.Day(), s.hour, s.minute, 0, 0, loc)
					if start.Before(time.Now()) {
						continue
					}
					id++
					p.showtimes = append(p.showtimes, model.Showtime{
						ID:           id,
						PublicCode:   "ST-" + utils.RandomString(6),
						MovieId:      movie.ID,
						TheaterId:    theater.ID,
						StartTime:    start,
						EndTime:      start.Add(time.Duration(movie.Duration) * time.Minute),
						Format:       s.format,
						LanguageType: "VI_SUB",
						Price:        helper.CalculateShowtimePrice(start, s.format),
						Status:       constants.SHOWTIME_AVAILABLE,
					})
					p.occupied[id] = seedOccupiedSeats(id)
				}
			}
		}
	}
}

// seedOccupiedSeats ghế bán sẵn giả lập, cố định theo id suất chiếu
func seedOccupiedSeats(showtimeId uint) []string {
	row := rune('A' + int(showtimeId)%10)
	base := int(showtimeId)%8 + 1
	return []string{
		fmt.Sprintf("%c%d", row, base),
		fmt.Sprintf("%c%d", row, base+1),
	}
}
