package domain

// CartItem — позиция корзины: товар и его количество.
// Инвариант: Quantity >= 1, позиция с неположительным количеством удаляется.
type CartItem struct {
	Product  Product
	Quantity int
}

func NewCartItem(product Product) CartItem {
	return CartItem{
		Product:  product,
		Quantity: 1,
	}
}

// Subtotal возвращает стоимость позиции (цена × количество).
func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}
