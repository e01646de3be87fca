package converter

import "time"

// OrderModel представляет запись таблицы orders в PostgreSQL.
// Позиции заказа лежат в JSONB-колонке items.
type OrderModel struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Total     int64     `db:"total"`
	Items     []byte    `db:"items"`
}

// OrderItemJSON — одна позиция внутри JSONB items.
type OrderItemJSON struct {
	ProductID     int64    `json:"product_id"`
	Title         string   `json:"title"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Discount      string   `json:"discount,omitempty"`
	Category      []string `json:"category,omitempty"`
	Image         string   `json:"image,omitempty"`
	Quantity      int      `json:"quantity"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
