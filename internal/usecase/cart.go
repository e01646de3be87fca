package usecase

import (
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// Cart — корзина текущей сессии. Позиции хранятся в порядке добавления,
// повторное добавление товара увеличивает количество существующей позиции.
type Cart struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add добавляет товар в корзину или увеличивает количество позиции.
func (c *Cart) Add(product domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++

			return
		}
	}

	c.items = append(c.items, domain.NewCartItem(product))
}

// Remove удаляет позицию целиком. Отсутствующий товар игнорируется.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int64) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)

			return
		}
	}
}

// SetQuantity выставляет количество позиции. Значение меньше единицы
// удаляет позицию.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		c.removeLocked(productID)

		return
	}

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity

			return
		}
	}
}

// Snapshot возвращает копию содержимого корзины.
func (c *Cart) Snapshot() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)

	return items
}

// Clear опустошает корзину и возвращает снятые позиции.
func (c *Cart) Clear() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.items
	c.items = nil

	return items
}
