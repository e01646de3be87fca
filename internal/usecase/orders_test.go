package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBook_CheckoutEmptyCart(t *testing.T) {
	cart := NewCart()
	book := NewOrderBook(cart, &fakeArchive{}, nopLogger{})

	order, err := book.Checkout(context.Background())

	require.ErrorIs(t, err, e.ErrEmptyCart)
	assert.Nil(t, order)
	assert.Empty(t, book.Orders())
}

func TestOrderBook_CheckoutDrainsCart(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "GPU RTX 3080", 700))
	cart.Add(product(2, "Corsair Vengeance 16GB", 80))
	cart.SetQuantity(2, 3)

	archive := &fakeArchive{}
	book := NewOrderBook(cart, archive, nopLogger{})

	order, err := book.Checkout(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(700+3*80), order.Total)
	assert.Len(t, order.Items, 2)
	assert.Empty(t, cart.Snapshot())

	orders := book.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// заказ и событие ушли в архив одной парой
	require.Len(t, archive.orders, 1)
	require.Len(t, archive.events, 1)
	assert.Equal(t, order.ID, archive.events[0].OrderID)
	assert.Equal(t, EventTypeOrderPlaced, archive.events[0].EventType)
	assert.Equal(t, EventStatusPending, archive.events[0].Status)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(archive.events[0].Payload, &payload))
	assert.EqualValues(t, order.ID, payload["order_id"])
}

func TestOrderBook_MonotonicIDs(t *testing.T) {
	cart := NewCart()
	book := NewOrderBook(cart, nil, nopLogger{})

	// замороженные часы: все оформления приходятся на один миллисекундный тик
	frozen := time.Now()
	book.nowFn = func() time.Time { return frozen }

	var ids []int64
	for i := 0; i < 3; i++ {
		cart.Add(product(int64(i+1), "item", 10))
		order, err := book.Checkout(context.Background())
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])
}

func TestOrderBook_NewestFirst(t *testing.T) {
	cart := NewCart()
	book := NewOrderBook(cart, nil, nopLogger{})

	cart.Add(product(1, "first", 10))
	first, err := book.Checkout(context.Background())
	require.NoError(t, err)

	cart.Add(product(2, "second", 20))
	second, err := book.Checkout(context.Background())
	require.NoError(t, err)

	orders := book.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderBook_ArchiveFailureKeepsOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(product(1, "GPU RTX 3080", 700))

	archive := &fakeArchive{err: context.DeadlineExceeded}
	book := NewOrderBook(cart, archive, nopLogger{})

	order, err := book.Checkout(context.Background())

	// архив недоступен, но заказ оформлен: состояние в памяти первично
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Len(t, book.Orders(), 1)
	assert.Empty(t, cart.Snapshot())
}

func TestOrderBook_WarmLoad(t *testing.T) {
	stored := []domain.Order{
		{ID: 2000, Total: 50},
		{ID: 1000, Total: 30},
	}
	archive := &fakeArchive{stored: stored}

	cart := NewCart()
	book := NewOrderBook(cart, archive, nopLogger{})
	book.WarmLoad(context.Background())

	orders := book.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2000), orders[0].ID)

	// новые ID продолжают монотонный ряд поверх прогретых
	cart.Add(product(1, "item", 10))
	order, err := book.Checkout(context.Background())
	require.NoError(t, err)
	assert.Greater(t, order.ID, int64(2000))
}
