package http

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// Модели ответов delivery-слоя. Снимки доменного состояния с JSON-тегами.

type ProductResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Price         int64             `json:"price"`
	OriginalPrice *int64            `json:"original_price,omitempty"`
	Discount      string            `json:"discount,omitempty"`
	Category      []string          `json:"category,omitempty"`
	Specs         string            `json:"specs,omitempty"`
	Description   string            `json:"description,omitempty"`
	Image         string            `json:"image,omitempty"`
	Stock         int               `json:"stock"`
	Comments      []CommentResponse `json:"comments,omitempty"`
}

type CommentResponse struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal int64           `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

type OrderResponse struct {
	ID        int64              `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []CartItemResponse `json:"items"`
	Total     int64              `json:"total"`
}

type HistoryEntryResponse struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
}

type NavigationResponse struct {
	Page         string           `json:"page"`
	Selected     *ProductResponse `json:"selected,omitempty"`
	InTransition bool             `json:"in_transition"`
}

type NotificationResponse struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

type SearchResponse struct {
	Query   string            `json:"query"`
	Results []ProductResponse `json:"results"`
}

// StateResponse — полный снимок витрины для клиента.
type StateResponse struct {
	Session         SessionResponse        `json:"session"`
	Navigation      NavigationResponse     `json:"navigation"`
	Cart            CartResponse           `json:"cart"`
	Orders          []OrderResponse        `json:"orders"`
	Search          SearchResponse         `json:"search"`
	SearchHistory   []HistoryEntryResponse `json:"search_history"`
	ViewHistory     []HistoryEntryResponse `json:"view_history"`
	Recommendations []ProductResponse      `json:"recommendations"`
	Viewed          []ProductResponse      `json:"viewed"`
	Notification    *NotificationResponse  `json:"notification,omitempty"`
	CatalogReady    bool                   `json:"catalog_ready"`
}

func toProductResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		Title:         p.Title,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		Category:      p.Category,
		Specs:         p.Specs,
		Description:   p.Description,
		Image:         p.Image,
		Stock:         p.Stock,
	}

	for _, c := range p.Comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:      c.ID,
			User:    c.User,
			Rating:  c.Rating,
			Date:    c.Date,
			Content: c.Content,
		})
	}

	return resp
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}

	return result
}

func toCartResponse(items []domain.CartItem) CartResponse {
	resp := CartResponse{Items: make([]CartItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
		resp.Total += item.Subtotal()
	}

	return resp
}

func toOrderResponse(order domain.Order) OrderResponse {
	items := make([]CartItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, CartItemResponse{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Items:     items,
		Total:     order.Total,
	}
}

func toArrOrderResponse(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}

	return result
}

func toArrHistoryResponse(entries []domain.HistoryEntry) []HistoryEntryResponse {
	result := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, HistoryEntryResponse{
			Text:      entry.Text,
			CreatedAt: entry.CreatedAt,
		})
	}

	return result
}
