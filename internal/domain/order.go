package domain

import "time"

// Order — завершённый заказ: снимок позиций корзины на момент оформления.
// Неизменяем после создания; позиции — копии, а не живые ссылки на корзину.
type Order struct {
	ID        int64 // Монотонный, производный от времени оформления
	CreatedAt time.Time
	Items     []CartItem
	Total     int64
}

func NewOrder(id int64, createdAt time.Time, items []CartItem) *Order {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}

	return &Order{
		ID:        id,
		CreatedAt: createdAt,
		Items:     items,
		Total:     total,
	}
}
