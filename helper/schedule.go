package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

// ShowtimeExpirer phần catalog mà scheduler suất chiếu cần
type ShowtimeExpirer interface {
	ExpireShowtimes(now time.Time) int
}

// MovieStatusAdvancer phần catalog mà scheduler phim cần
type MovieStatusAdvancer interface {
	AdvanceMovieStatuses(now time.Time) int
}

var showtimeScheduler *cron.Cron
var movieScheduler gocron.Scheduler

// StartShowtimeScheduler chạy mỗi 5 phút, chuyển suất chiếu đã qua giờ sang EXPIRED
func StartShowtimeScheduler(provider ShowtimeExpirer) {
	showtimeScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := showtimeScheduler.AddFunc("*/5 * * * *", func() {
		if n := provider.ExpireShowtimes(time.Now()); n > 0 {
			log.Printf("Đã cập nhật %d suất chiếu thành 'EXPIRED'", n)
		}
	})
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	showtimeScheduler.Start()
	log.Println("Scheduler suất chiếu đã khởi động (mỗi 5 phút)")
}

func StopShowtimeScheduler() {
	if showtimeScheduler != nil {
		showtimeScheduler.Stop()
		log.Println("Scheduler suất chiếu đã dừng")
	}
}

// StartMovieStatusScheduler chạy 00:05 ICT hằng ngày, cập nhật trạng thái phim
// theo ngày khởi chiếu / kết thúc
func StartMovieStatusScheduler(provider MovieStatusAdvancer) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Printf("Lỗi khởi tạo movie scheduler: %v", err)
		return
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			log.Println("[CRON] AdvanceMovieStatuses triggered")
			if n := provider.AdvanceMovieStatuses(time.Now()); n > 0 {
				log.Printf("Cập nhật trạng thái %d phim", n)
			}
		}),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký movie job: %v", err)
		return
	}

	s.Start()
	log.Println("Movie status scheduler started (00:05 ICT)")
}

func StopMovieStatusScheduler() {
	if movieScheduler != nil {
		_ = movieScheduler.Shutdown()
	}
}
