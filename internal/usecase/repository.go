package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// SessionRepository — долговременное хранилище сессии под фиксированным ключом.
// Отсутствие записи означает анонимную сессию.
type SessionRepository interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// OrderArchive — долговременное хранилище заказов. Save записывает заказ вместе
// с outbox-событием в одной транзакции; Load возвращает заказы от новых к старым.
type OrderArchive interface {
	Save(ctx context.Context, order *domain.Order, event *OutboxEvent) error
	Load(ctx context.Context) ([]domain.Order, error)
}

// OutboxRepository — операции над outbox-событиями для воркера публикации.
type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
