package domain

// Product описывает товар каталога. Неизменяем после загрузки из product-service;
// владелец — кэш каталога.
type Product struct {
	ID            int64
	Title         string
	Price         int64 // Цена хранится в целых единицах валюты
	OriginalPrice *int64
	Discount      string
	Category      []string
	Specs         string
	Description   string
	Image         string
	Stock         int
	Comments      []Comment
}

// Comment — отзыв покупателя о товаре.
type Comment struct {
	ID      int64
	User    string
	Rating  int
	Date    string
	Content string
}
