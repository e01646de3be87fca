package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Checkout(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/checkout", nil)

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order OrderResponse
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, int64(1756500000000), order.ID)
	assert.Equal(t, int64(89990), order.Total)

	require.NotNil(t, env.notifications.current)
	assert.Equal(t, "Заказ оформлен", env.notifications.current.Text)

	// после оформления витрина уходит на историю заказов
	assert.Equal(t, domain.PageOrderHistory, env.navigation.state.Page)
}

func TestOrderHandler_CheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	env.orders.err = e.ErrEmptyCart

	resp, body := env.do(t, http.MethodPost, "/checkout", nil)

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, http.StatusConflict, errResp.Code)

	// пустая корзина — тихий конфликт: без уведомления и без перехода
	assert.Nil(t, env.notifications.current)
	assert.Equal(t, domain.PageDashboard, env.navigation.state.Page)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/checkout", nil)

	resp, body := env.do(t, http.MethodGet, "/orders", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []OrderResponse
	require.NoError(t, json.Unmarshal(body, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1756500000000), orders[0].ID)
}
