package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"cinema_booking/config"
)

// BookingConfirmationData dữ liệu cho template email
type BookingConfirmationData struct {
	BookingCode   string
	MovieName     string
	TheaterName   string
	Showtime      string
	Seats         string
	TotalAmount   float64
	PaymentMethod string
	DetailLink    string
}

// SendBookingConfirmationEmail gửi email xác nhận đơn đặt vé.
// Được gọi từ worker asynq, không gọi trực tiếp trong handler.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) error {
	tmplPath := "templates/booking_confirmation.html"
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("Lỗi load template email: %v", err)
		return err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("Lỗi render template email: %v", err)
		return err
	}

	host := config.Config("SMTP_HOST")
	port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
	username := config.Config("SMTP_USERNAME")
	password := config.Config("SMTP_PASSWORD")
	from := config.Config("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Xác nhận đặt vé #"+data.BookingCode)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi email: %v", err)
		return err
	}
	return nil
}
