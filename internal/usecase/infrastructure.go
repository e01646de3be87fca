package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// AuthServiceInfra — клиент user-service: обмен учётных данных на bearer-токен.
type AuthServiceInfra interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// HistoryServiceInfra — клиент авторизованных операций истории user-service.
type HistoryServiceInfra interface {
	RecordSearch(ctx context.Context, token, text string) error
	RecordView(ctx context.Context, token, text string) error
	FetchSearchHistory(ctx context.Context, token string) ([]domain.HistoryEntry, error)
	FetchViewHistory(ctx context.Context, token string) ([]domain.HistoryEntry, error)
}

// ProductServiceInfra — клиент product-service.
type ProductServiceInfra interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// RecommendServiceInfra — клиент rec-service.
type RecommendServiceInfra interface {
	Recommend(ctx context.Context, token string, req *RecommendReq) (*RecommendRes, error)
}

// MessageProducer — публикация событий витрины в брокер.
type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
