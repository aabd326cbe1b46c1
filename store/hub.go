package store

import "sync"

// Visitor các store thuộc riêng một phiên trình duyệt
type Visitor struct {
	Session     *Session
	Concessions *ConcessionLedger
}

// Hub cấp phát store theo mã phiên của khách. Mỗi Visitor chỉ được dùng
// bởi một khách, BookingLedger thì dùng chung và tự khoá.
type Hub struct {
	mu       sync.Mutex
	visitors map[string]*Visitor
}

func NewHub() *Hub {
	return &Hub{visitors: map[string]*Visitor{}}
}

// Visitor trả về store của phiên, tạo mới nếu chưa có.
// created = true khi phiên vừa được cấp (caller có thể nạp lại snapshot).
func (h *Hub) Visitor(sessionId string) (v *Visitor, created bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	v, ok := h.visitors[sessionId]
	if !ok {
		v = &Visitor{
			Session:     NewSession(),
			Concessions: NewConcessionLedger(),
		}
		h.visitors[sessionId] = v
	}
	return v, !ok
}

// Drop xoá store của phiên (khách thoát hẳn flow)
func (h *Hub) Drop(sessionId string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.visitors, sessionId)
}
