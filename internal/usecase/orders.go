package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// OrderBook ведёт историю оформленных заказов, новые — первыми.
// Источник истины держится в памяти, архив в БД пополняется по мере
// оформления и прогревается на старте.
type OrderBook struct {
	mu      sync.Mutex
	orders  []domain.Order
	lastID  int64
	cart    *Cart
	archive OrderArchive
	log     logger.Logger
	nowFn   func() time.Time
}

func NewOrderBook(cart *Cart, archive OrderArchive, log logger.Logger) *OrderBook {
	return &OrderBook{
		cart:    cart,
		archive: archive,
		log:     log,
		nowFn:   time.Now,
	}
}

// WarmLoad наполняет историю из архива. Ошибка архива не мешает запуску.
func (b *OrderBook) WarmLoad(ctx context.Context) {
	if b.archive == nil {
		return
	}

	orders, err := b.archive.Load(ctx)
	if err != nil {
		b.log.Warnf("не удалось прогреть историю заказов: %v", err)

		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.orders = orders
	for _, order := range orders {
		if order.ID > b.lastID {
			b.lastID = order.ID
		}
	}
}

// Checkout оформляет заказ из текущей корзины. Пустая корзина — ошибка,
// корзина при этом не меняется.
func (b *OrderBook) Checkout(ctx context.Context) (*domain.Order, error) {
	items := b.cart.Snapshot()
	if len(items) == 0 {
		return nil, e.ErrEmptyCart
	}

	b.mu.Lock()

	now := b.nowFn()

	id := now.UnixMilli()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id

	order := domain.NewOrder(id, now, items)
	b.orders = append([]domain.Order{*order}, b.orders...)

	b.mu.Unlock()

	b.cart.Clear()

	b.persist(ctx, order)

	return order, nil
}

// persist пишет заказ и outbox-событие в архив. Ошибка не откатывает
// заказ: состояние в памяти первично, архив догоняет.
func (b *OrderBook) persist(ctx context.Context, order *domain.Order) {
	if b.archive == nil {
		return
	}

	event, err := NewOrderPlacedEvent(order)
	if err != nil {
		b.log.Warnf("не удалось собрать событие заказа %d: %v", order.ID, err)

		return
	}

	if err := b.archive.Save(ctx, order, event); err != nil {
		b.log.Warnf("не удалось сохранить заказ %d в архив: %v", order.ID, err)
	}
}

// Orders возвращает копию истории заказов, новые — первыми.
func (b *OrderBook) Orders() []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders := make([]domain.Order, len(b.orders))
	copy(orders, b.orders)

	return orders
}
