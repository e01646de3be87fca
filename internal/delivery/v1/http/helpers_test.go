package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeAuth struct {
	session domain.Session
	logins  []string
	logouts int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) {
	f.logins = append(f.logins, username)
	if password == "secret" {
		f.session = domain.Session{Token: "jwt-token", Username: username}
	}
}

func (f *fakeAuth) Logout(ctx context.Context) {
	f.logouts++
	f.session = domain.Session{}
}

func (f *fakeAuth) Current() domain.Session { return f.session }

type fakeCart struct {
	items []domain.CartItem
}

func (f *fakeCart) Add(product domain.Product) {
	for i := range f.items {
		if f.items[i].Product.ID == product.ID {
			f.items[i].Quantity++
			return
		}
	}
	f.items = append(f.items, domain.NewCartItem(product))
}

func (f *fakeCart) Remove(productID int64) {
	for i := range f.items {
		if f.items[i].Product.ID == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return
		}
	}
}

func (f *fakeCart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		f.Remove(productID)
		return
	}
	for i := range f.items {
		if f.items[i].Product.ID == productID {
			f.items[i].Quantity = quantity
		}
	}
}

func (f *fakeCart) Snapshot() []domain.CartItem { return f.items }

func (f *fakeCart) Clear() []domain.CartItem {
	items := f.items
	f.items = nil
	return items
}

type fakeOrders struct {
	orders []domain.Order
	err    error
}

func (f *fakeOrders) Checkout(ctx context.Context) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}

	order := domain.NewOrder(1756500000000, testTime(), []domain.CartItem{
		domain.NewCartItem(testProduct(1, "GPU RTX 3080", 89990)),
	})
	f.orders = append([]domain.Order{*order}, f.orders...)

	return order, nil
}

func (f *fakeOrders) Orders() []domain.Order { return f.orders }

type fakeCatalog struct {
	products []domain.Product
	ready    bool
}

func (f *fakeCatalog) Products() []domain.Product { return f.products }

func (f *fakeCatalog) ProductByID(id int64) (domain.Product, bool) {
	for _, p := range f.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (f *fakeCatalog) Ready() bool { return f.ready }

type fakeSearch struct {
	query   string
	results []domain.Product
}

func (f *fakeSearch) Search(ctx context.Context, query string) []domain.Product {
	f.query = query
	return f.results
}

func (f *fakeSearch) Results() []domain.Product { return f.results }
func (f *fakeSearch) Query() string             { return f.query }

type fakeNavigation struct {
	state  domain.NavigationState
	viewed []domain.Product
}

func (f *fakeNavigation) ChangePage(page domain.Page, selected *domain.Product) error {
	if !domain.ValidPage(page) {
		return e.ErrInvalidPage
	}
	f.state = domain.NavigationState{Page: page, Selected: selected, InTransition: true}
	return nil
}

func (f *fakeNavigation) ViewProductDetail(ctx context.Context, product domain.Product) error {
	f.viewed = append([]domain.Product{product}, f.viewed...)
	return f.ChangePage(domain.PageProductDetail, &product)
}

func (f *fakeNavigation) State() domain.NavigationState { return f.state }
func (f *fakeNavigation) Viewed() []domain.Product      { return f.viewed }

type fakeNotifications struct {
	current   *domain.Notification
	shown     []string
	dismissed int
}

func (f *fakeNotifications) Show(text string, severity domain.Severity) {
	f.shown = append(f.shown, text)
	f.current = &domain.Notification{Text: text, Severity: severity}
}

func (f *fakeNotifications) Dismiss() {
	f.dismissed++
	f.current = nil
}

func (f *fakeNotifications) Current() *domain.Notification { return f.current }

type fakeHistory struct {
	search []domain.HistoryEntry
	view   []domain.HistoryEntry
}

func (f *fakeHistory) SearchHistory() []domain.HistoryEntry { return f.search }
func (f *fakeHistory) ViewHistory() []domain.HistoryEntry   { return f.view }

type fakeRecommendations struct {
	products []domain.Product
}

func (f *fakeRecommendations) Recommendations() []domain.Product { return f.products }

// testEnv поднимает роутер поверх фейковых юзкейсов.
type testEnv struct {
	srv           *httptest.Server
	auth          *fakeAuth
	cart          *fakeCart
	orders        *fakeOrders
	catalog       *fakeCatalog
	search        *fakeSearch
	navigation    *fakeNavigation
	notifications *fakeNotifications
	history       *fakeHistory
	recommend     *fakeRecommendations
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:          &fakeAuth{},
		cart:          &fakeCart{},
		orders:        &fakeOrders{},
		catalog:       &fakeCatalog{ready: true},
		search:        &fakeSearch{},
		navigation:    &fakeNavigation{state: domain.NavigationState{Page: domain.PageDashboard}},
		notifications: &fakeNotifications{},
		history:       &fakeHistory{},
		recommend:     &fakeRecommendations{},
	}

	mux := chi.NewRouter()
	router := NewRouter(mux, nopLogger{})
	router.Init(UseCases{
		Auth:         env.auth,
		Cart:         env.cart,
		Orders:       env.orders,
		Catalog:      env.catalog,
		Search:       env.search,
		Navigation:   env.navigation,
		Notification: env.notifications,
		History:      env.history,
		Recommend:    env.recommend,
	})

	env.srv = httptest.NewServer(mux)
	t.Cleanup(env.srv.Close)

	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, env.srv.URL+"/api/v1"+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, payload
}

func testProduct(id int64, title string, price int64) domain.Product {
	return domain.Product{ID: id, Title: title, Price: price, Stock: 10}
}

func testTime() time.Time {
	return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
}
