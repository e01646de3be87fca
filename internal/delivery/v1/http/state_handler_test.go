package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateHandler_Snapshot(t *testing.T) {
	env := newTestEnv(t)
	env.auth.session = domain.Session{Token: "jwt-token", Username: "alice"}
	env.catalog.products = []domain.Product{testProduct(1, "GPU RTX 3080", 89990)}
	env.history.search = []domain.HistoryEntry{{Text: "видеокарта", CreatedAt: testTime()}}
	env.notifications.Show("Заказ оформлен", domain.SeveritySuccess)

	resp, body := env.do(t, http.MethodGet, "/state", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state StateResponse
	require.NoError(t, json.Unmarshal(body, &state))
	assert.True(t, state.Session.LoggedIn)
	assert.Equal(t, "alice", state.Session.Username)
	assert.Equal(t, "dashboard", state.Navigation.Page)
	assert.True(t, state.CatalogReady)
	require.Len(t, state.SearchHistory, 1)
	assert.Equal(t, "видеокарта", state.SearchHistory[0].Text)
	require.NotNil(t, state.Notification)
	assert.Equal(t, "success", state.Notification.Severity)
}

func TestStateHandler_Navigate(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/navigation", map[string]string{"page": "cart"})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav NavigationResponse
	require.NoError(t, json.Unmarshal(body, &nav))
	assert.Equal(t, "cart", nav.Page)
	assert.True(t, nav.InTransition)
}

func TestStateHandler_NavigateInvalidPage(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/navigation", map[string]string{"page": "settings"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.PageDashboard, env.navigation.state.Page)
}

func TestStateHandler_NavigateProductDetail(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products = []domain.Product{testProduct(1, "GPU RTX 3080", 89990)}

	resp, body := env.do(t, http.MethodPost, "/navigation", map[string]any{
		"page": "product-detail", "product_id": 1,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav NavigationResponse
	require.NoError(t, json.Unmarshal(body, &nav))
	assert.Equal(t, "product-detail", nav.Page)
	require.NotNil(t, nav.Selected)
	assert.Equal(t, "GPU RTX 3080", nav.Selected.Title)
	require.Len(t, env.navigation.viewed, 1)
}

func TestStateHandler_NavigateProductDetailWithoutID(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/navigation", map[string]string{"page": "product-detail"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStateHandler_ViewProduct(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products = []domain.Product{testProduct(1, "GPU RTX 3080", 89990)}

	resp, body := env.do(t, http.MethodPost, "/products/1/view", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav NavigationResponse
	require.NoError(t, json.Unmarshal(body, &nav))
	assert.Equal(t, "product-detail", nav.Page)
	require.NotNil(t, nav.Selected)
	assert.Equal(t, int64(1), nav.Selected.ID)

	require.Len(t, env.navigation.viewed, 1)
	assert.Equal(t, "GPU RTX 3080", env.navigation.viewed[0].Title)
}

func TestStateHandler_ViewUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/products/99/view", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, env.navigation.viewed)
}

func TestStateHandler_DismissNotification(t *testing.T) {
	env := newTestEnv(t)
	env.notifications.Show("Заказ оформлен", domain.SeveritySuccess)

	resp, _ := env.do(t, http.MethodPost, "/notification/dismiss", nil)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, env.notifications.current)
	assert.Equal(t, 1, env.notifications.dismissed)
}
