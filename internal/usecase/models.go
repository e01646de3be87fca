package usecase

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

// RECOMMENDATION

// RecommendReq — запрос рекомендаций для текущего пользователя.
type RecommendReq struct {
	UserProfile string
}

// RecommendRes — ответ rec-service: строки рекомендаций и канонические
// снимки истории поиска и просмотров.
type RecommendRes struct {
	Recommendations []string
	SearchHistory   []domain.HistoryEntry
	ViewHistory     []domain.HistoryEntry
}

func NewRecommendReq(userProfile string) *RecommendReq {
	return &RecommendReq{UserProfile: userProfile}
}

func NewRecommendRes(recommendations []string, search, view []domain.HistoryEntry) *RecommendRes {
	return &RecommendRes{
		Recommendations: recommendations,
		SearchHistory:   search,
		ViewHistory:     view,
	}
}

// OUTBOX

const (
	EventTypeOrderPlaced = "order.placed"

	EventStatusPending    = "pending"
	EventStatusProcessing = "processing"
	EventStatusProcessed  = "processed"
)

// OutboxEvent — событие витрины, ожидающее публикации в брокер.
type OutboxEvent struct {
	ID        int64
	EventID   string
	EventType string
	OrderID   int64
	Payload   []byte
	Status    string
	CreatedAt time.Time
}

// WriteRawMessageReq — запрос на публикацию готового payload в брокер.
type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

type orderPlacedItem struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type orderPlacedPayload struct {
	OrderID   int64             `json:"order_id"`
	CreatedAt time.Time         `json:"created_at"`
	Total     int64             `json:"total"`
	Items     []orderPlacedItem `json:"items"`
}

// NewOrderPlacedEvent строит outbox-событие оформления заказа с JSON-payload.
func NewOrderPlacedEvent(order *domain.Order) (*OutboxEvent, error) {
	items := make([]orderPlacedItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderPlacedItem{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	payload, err := json.Marshal(orderPlacedPayload{
		OrderID:   order.ID,
		CreatedAt: order.CreatedAt,
		Total:     order.Total,
		Items:     items,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderPlaced,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    EventStatusPending,
		CreatedAt: order.CreatedAt,
	}, nil
}
