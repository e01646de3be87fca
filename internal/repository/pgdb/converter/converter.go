package converter

import (
	"encoding/json"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

type OrderConverter interface {
	ToModel(order *domain.Order) (*OrderModel, error)
	ToDomain(model *OrderModel) (*domain.Order, error)
}

type OutboxEventConverter interface {
	ToModel(event *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type orderConverter struct{}

func NewOrderConverter() OrderConverter {
	return &orderConverter{}
}

func (c *orderConverter) ToModel(order *domain.Order) (*OrderModel, error) {
	items := make([]OrderItemJSON, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemJSON{
			ProductID:     item.Product.ID,
			Title:         item.Product.Title,
			Price:         item.Product.Price,
			OriginalPrice: item.Product.OriginalPrice,
			Discount:      item.Product.Discount,
			Category:      item.Product.Category,
			Image:         item.Product.Image,
			Quantity:      item.Quantity,
		})
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	return &OrderModel{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Total:     order.Total,
		Items:     data,
	}, nil
}

func (c *orderConverter) ToDomain(model *OrderModel) (*domain.Order, error) {
	var items []OrderItemJSON
	if err := json.Unmarshal(model.Items, &items); err != nil {
		return nil, err
	}

	cartItems := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		cartItems = append(cartItems, domain.CartItem{
			Product: domain.Product{
				ID:            item.ProductID,
				Title:         item.Title,
				Price:         item.Price,
				OriginalPrice: item.OriginalPrice,
				Discount:      item.Discount,
				Category:      item.Category,
				Image:         item.Image,
			},
			Quantity: item.Quantity,
		})
	}

	return &domain.Order{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		Items:     cartItems,
		Total:     model.Total,
	}, nil
}

type outboxEventConverter struct{}

func NewOutboxEventConverter() OutboxEventConverter {
	return &outboxEventConverter{}
}

func (c *outboxEventConverter) ToModel(event *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:        event.ID,
		EventID:   event.EventID,
		EventType: event.EventType,
		OrderID:   event.OrderID,
		Payload:   event.Payload,
		Status:    event.Status,
		CreatedAt: event.CreatedAt,
	}
}

func (c *outboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:        model.ID,
		EventID:   model.EventID,
		EventType: model.EventType,
		OrderID:   model.OrderID,
		Payload:   model.Payload,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
	}
}

func (c *outboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	events := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		events = append(events, c.ToEntity(model))
	}

	return events
}
