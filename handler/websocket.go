package handler

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	wsClients = make(map[uint]map[*websocket.Conn]bool)
	wsMu      sync.Mutex
)

func showtimeChannel(showtimeId uint) string {
	return fmt.Sprintf("showtime:%d", showtimeId)
}

// SeatMapSocket đẩy sơ đồ ghế realtime cho một suất chiếu. Client nhận
// snapshot ghế đã bán lúc kết nối, sau đó nhận delta mỗi khi có đơn chốt
// hoặc huỷ (publish qua redis pub/sub).
func (h *Handler) SeatMapSocket(c *websocket.Conn) {
	showtimeIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(showtimeIdStr, 10, 64)
	showtimeId := uint(id64)

	defer func() {
		wsMu.Lock()
		if wsClients[showtimeId] != nil {
			delete(wsClients[showtimeId], c)
		}
		wsMu.Unlock()
		c.Close()
	}()

	wsMu.Lock()
	if wsClients[showtimeId] == nil {
		wsClients[showtimeId] = make(map[*websocket.Conn]bool)
	}
	wsClients[showtimeId][c] = true
	wsMu.Unlock()

	// Snapshot đầu tiên
	c.WriteJSON(map[string]any{
		"showtimeId":      showtimeId,
		"occupiedSeatIds": h.occupiedFor(showtimeId),
	})

	pubsub := h.Shim.Subscribe(context.Background(), showtimeChannel(showtimeId))
	if pubsub == nil {
		// Không có redis thì chỉ còn snapshot đầu; giữ kết nối tới khi client đóng
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}
	defer pubsub.Close()

	channel := pubsub.Channel()
	for msg := range channel {
		payload := []byte(msg.Payload)

		wsMu.Lock()
		for conn := range wsClients[showtimeId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(wsClients[showtimeId], conn)
			}
		}
		wsMu.Unlock()
	}
}
