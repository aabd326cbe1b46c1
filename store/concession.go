package store

import "cinema_booking/model"

// ConcessionLedger giỏ bắp nước của một phiên đặt vé.
// Mỗi itemId chỉ có một dòng; thêm trùng sẽ cộng dồn số lượng.
type ConcessionLedger struct {
	orders []model.ConcessionOrder
}

func NewConcessionLedger() *ConcessionLedger {
	return &ConcessionLedger{orders: []model.ConcessionOrder{}}
}

// AddItem cộng dồn số lượng nếu món đã có trong giỏ, ngược lại thêm dòng mới
func (l *ConcessionLedger) AddItem(itemId uint, name string, price float64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range l.orders {
		if l.orders[i].ItemId == itemId {
			l.orders[i].Quantity += quantity
			return
		}
	}
	l.orders = append(l.orders, model.ConcessionOrder{
		ItemId:   itemId,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
}

func (l *ConcessionLedger) RemoveItem(itemId uint) {
	for i := range l.orders {
		if l.orders[i].ItemId == itemId {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return
		}
	}
}

// UpdateQuantity đặt lại số lượng; <= 0 thì xoá dòng, món chưa có thì bỏ qua
func (l *ConcessionLedger) UpdateQuantity(itemId uint, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(itemId)
		return
	}
	for i := range l.orders {
		if l.orders[i].ItemId == itemId {
			l.orders[i].Quantity = quantity
			return
		}
	}
}

// Subtotal tổng tiền bắp nước, không side effect
func (l *ConcessionLedger) Subtotal() float64 {
	total := float64(0)
	for _, o := range l.orders {
		total += o.Price * float64(o.Quantity)
	}
	return total
}

// Orders trả về bản sao danh sách dòng hàng
func (l *ConcessionLedger) Orders() []model.ConcessionOrder {
	out := make([]model.ConcessionOrder, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *ConcessionLedger) Clear() {
	l.orders = []model.ConcessionOrder{}
}

// Restore nạp lại giỏ từ snapshot đã lưu
func (l *ConcessionLedger) Restore(orders []model.ConcessionOrder) {
	l.orders = make([]model.ConcessionOrder, len(orders))
	copy(l.orders, orders)
}
