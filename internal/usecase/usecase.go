package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// Интерфейсы оркестратора, которые потребляет delivery-слой.

type AuthUC interface {
	// Login выполняет вход. Неуспешная аутентификация намеренно тихая:
	// сессия не меняется, наружу уходит только диагностика в лог.
	Login(ctx context.Context, username, password string)
	Logout(ctx context.Context)
	Current() domain.Session
}

type CartUC interface {
	Add(product domain.Product)
	Remove(productID int64)
	SetQuantity(productID int64, quantity int)
	Snapshot() []domain.CartItem
	Clear() []domain.CartItem
}

type OrderUC interface {
	Checkout(ctx context.Context) (*domain.Order, error)
	Orders() []domain.Order
}

type CatalogUC interface {
	Products() []domain.Product
	ProductByID(id int64) (domain.Product, bool)
	Ready() bool
}

type SearchUC interface {
	Search(ctx context.Context, query string) []domain.Product
	Results() []domain.Product
	Query() string
}

type NavigationUC interface {
	ChangePage(page domain.Page, product *domain.Product) error
	ViewProductDetail(ctx context.Context, product domain.Product) error
	State() domain.NavigationState
	Viewed() []domain.Product
}

type NotificationUC interface {
	Show(text string, severity domain.Severity)
	Dismiss()
	Current() *domain.Notification
}

type HistoryUC interface {
	SearchHistory() []domain.HistoryEntry
	ViewHistory() []domain.HistoryEntry
}

type RecommendationUC interface {
	Recommendations() []domain.Product
}
