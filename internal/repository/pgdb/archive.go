package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// Archive связывает заказ и его outbox-событие одной транзакцией:
// либо в БД попадают оба, либо ни одного.
type Archive struct {
	orders *OrderRepo
	outbox *OutboxEventRepo
	dbPool transaction.Transactional
}

func NewArchive(orders *OrderRepo, outbox *OutboxEventRepo, dbPool transaction.Transactional) *Archive {
	return &Archive{
		orders: orders,
		outbox: outbox,
		dbPool: dbPool,
	}
}

// Save пишет заказ и outbox-событие в одной транзакции.
func (a *Archive) Save(ctx context.Context, order *domain.Order, event *usecase.OutboxEvent) error {
	const op = "Archive.Save"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = a.orders.Create(ctx, order); err != nil {
		return e.Wrap(op, err)
	}

	if _, err = a.outbox.Create(ctx, event); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Load возвращает заказы архива от новых к старым.
func (a *Archive) Load(ctx context.Context) ([]domain.Order, error) {
	return a.orders.List(ctx)
}
