package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type OrderHandler struct {
	orderUsecase  usecase.OrderUC
	notifications usecase.NotificationUC
	navigation    usecase.NavigationUC
	logger        logger.Logger
}

func NewOrderHandler(
	orderUsecase usecase.OrderUC,
	notifications usecase.NotificationUC,
	navigation usecase.NavigationUC,
	logger logger.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderUsecase:  orderUsecase,
		notifications: notifications,
		navigation:    navigation,
		logger:        logger,
	}
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Переносит содержимое корзины в заказ и переводит витрину на историю заказов. Пустая корзина — конфликт без уведомления, корзина не меняется
//	@Tags			orders
//	@Produce		json
//	@Success		201	{object}	OrderResponse
//	@Failure		409	{object}	ErrorResponse	"Корзина пуста"
//	@Router			/checkout [post]
func (o *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUsecase.Checkout(r.Context())
	if err != nil {
		if !errors.Is(err, e.ErrEmptyCart) {
			o.logger.Warnf("checkout failed: %v", err)
		}

		WriteError(w, err)
		return
	}

	o.notifications.Show("Заказ оформлен", domain.SeveritySuccess)

	if err := o.navigation.ChangePage(domain.PageOrderHistory, nil); err != nil {
		o.logger.Warnf("checkout navigation failed: %v", err)
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(*order))
}

// listOrders
//
//	@Summary	История заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toArrOrderResponse(o.orderUsecase.Orders()))
}
