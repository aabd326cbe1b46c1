package middleware

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cinema_booking/model"
	"cinema_booking/persist"
	"cinema_booking/store"
)

const SessionCookie = "booking_session"

// VisitorSnapshot trạng thái phiên + giỏ bắp nước ghi xuống persistence shim
type VisitorSnapshot struct {
	Session     store.SessionSnapshot   `json:"session"`
	Concessions []model.ConcessionOrder `json:"concessions"`
}

// VisitorSession cấp cookie phiên ẩn danh cho khách và gắn store của phiên
// vào Locals. Phiên mới nhưng cookie cũ → thử nạp lại snapshot từ shim
// (trường hợp server vừa restart).
func VisitorSession(hub *store.Hub, shim *persist.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionId := c.Cookies(SessionCookie)
		hadCookie := sessionId != ""
		if !hadCookie {
			sessionId = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessionId,
				HTTPOnly: true,
				SameSite: "Lax",
				Expires:  time.Now().Add(7 * 24 * time.Hour),
			})
		}

		visitor, created := hub.Visitor(sessionId)
		if created && hadCookie {
			restoreVisitor(sessionId, visitor, shim)
		}

		c.Locals("sessionId", sessionId)
		c.Locals("visitor", visitor)
		return c.Next()
	}
}

func restoreVisitor(sessionId string, visitor *store.Visitor, shim *persist.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var snap VisitorSnapshot
	err := shim.Load(ctx, persist.KeySessionPrefix+sessionId, &snap)
	if errors.Is(err, persist.ErrNotFound) {
		return
	}
	if err != nil {
		log.Printf("Lỗi nạp lại phiên %s: %v", sessionId, err)
		return
	}

	visitor.Session.Restore(snap.Session)
	visitor.Concessions.Restore(snap.Concessions)
}
