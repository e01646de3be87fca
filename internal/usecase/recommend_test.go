package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mutableGen struct {
	mu sync.Mutex
	v  uint64
}

func (g *mutableGen) Generation() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.v
}

func (g *mutableGen) set(v uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.v = v
}

func loadedCatalog(t *testing.T, products ...domain.Product) *Catalog {
	t.Helper()

	catalog := NewCatalog(&fakeProductService{products: products}, nopLogger{})
	catalog.Load(context.Background())
	require.True(t, catalog.Ready())

	return catalog
}

func TestRecommender_ContainmentMatching(t *testing.T) {
	catalog := loadedCatalog(t,
		product(1, "GPU RTX 3080", 700),
		product(2, "Corsair Vengeance 16GB", 80),
	)

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes(
		[]string{
			"Лучшее предложение: gpu rtx 3080 со скидкой",
			"RTX", // название товара не содержится в строке целиком
		},
		nil, nil,
	)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})
	r.Refresh(context.Background(), domain.Session{Token: "t", Username: "user"}, 1)

	matched := r.Recommendations()
	require.Len(t, matched, 1)
	assert.Equal(t, int64(1), matched[0].ID)
}

func TestRecommender_DeduplicatesMatches(t *testing.T) {
	catalog := loadedCatalog(t, product(1, "GPU RTX 3080", 700))

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes(
		[]string{"gpu rtx 3080 сегодня", "ещё раз GPU RTX 3080"},
		nil, nil,
	)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)

	assert.Len(t, r.Recommendations(), 1)
}

func TestRecommender_MatchesInCatalogOrder(t *testing.T) {
	catalog := loadedCatalog(t,
		product(1, "GPU RTX 3080", 700),
		product(2, "Corsair Vengeance 16GB", 80),
		product(3, "Asus ROG Strix Z690", 400),
	)

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	// строки приходят в обратном порядке каталога
	service := &fakeRecService{res: NewRecommendRes(
		[]string{"asus rog strix z690 в наличии", "скидка на gpu rtx 3080"},
		nil, nil,
	)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)

	matched := r.Recommendations()
	require.Len(t, matched, 2)
	assert.Equal(t, int64(1), matched[0].ID)
	assert.Equal(t, int64(3), matched[1].ID)
}

func TestRecommender_FailedRefreshClearsSet(t *testing.T) {
	catalog := loadedCatalog(t, product(1, "GPU RTX 3080", 700))

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes(
		[]string{"gpu rtx 3080"},
		nil, nil,
	)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)
	require.Len(t, r.Recommendations(), 1)

	history.Apply(1, []domain.HistoryEntry{{Text: "rtx"}}, nil)

	service.mu.Lock()
	service.err = errors.New("rec-service недоступен")
	service.mu.Unlock()

	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)

	// набор опустошён, зеркала историй не тронуты
	assert.Empty(t, r.Recommendations())
	assert.Len(t, history.SearchHistory(), 1)
}

func TestRecommender_FailedRefreshAtStaleGenerationKeepsSet(t *testing.T) {
	catalog := loadedCatalog(t, product(1, "GPU RTX 3080", 700))

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes([]string{"gpu rtx 3080"}, nil, nil)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)
	require.Len(t, r.Recommendations(), 1)

	service.mu.Lock()
	service.err = errors.New("rec-service недоступен")
	service.mu.Unlock()

	// ошибка пришла по запросу прошлого поколения — текущий набор не трогаем
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 0)

	assert.Len(t, r.Recommendations(), 1)
}

func TestRecommender_DeferredUntilCatalogLoads(t *testing.T) {
	productService := &fakeProductService{products: []domain.Product{
		product(1, "GPU RTX 3080", 700),
	}}
	catalog := NewCatalog(productService, nopLogger{})

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes([]string{"gpu rtx 3080"}, nil, nil)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})

	// рекомендации пришли раньше каталога: сопоставление откладывается
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)
	assert.Empty(t, r.Recommendations())

	catalog.Load(context.Background())
	r.OnCatalogLoaded()

	matched := r.Recommendations()
	require.Len(t, matched, 1)
	assert.Equal(t, int64(1), matched[0].ID)
}

func TestRecommender_StaleGenerationDropped(t *testing.T) {
	catalog := loadedCatalog(t, product(1, "GPU RTX 3080", 700))

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes(
		[]string{"gpu rtx 3080"},
		[]domain.HistoryEntry{{Text: "старый поиск"}},
		nil,
	)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})

	// сессия успела смениться, пока ответ был в полёте
	gens.set(2)
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)

	assert.Empty(t, r.Recommendations())
	assert.Empty(t, history.SearchHistory())
}

func TestRecommender_AppliesHistorySnapshots(t *testing.T) {
	catalog := loadedCatalog(t, product(1, "GPU RTX 3080", 700))

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes(
		nil,
		[]domain.HistoryEntry{{Text: "rtx"}},
		[]domain.HistoryEntry{{Text: "GPU RTX 3080"}},
	)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)

	require.Len(t, history.SearchHistory(), 1)
	assert.Equal(t, "rtx", history.SearchHistory()[0].Text)
	require.Len(t, history.ViewHistory(), 1)
}

func TestRecommender_LogoutClears(t *testing.T) {
	catalog := loadedCatalog(t, product(1, "GPU RTX 3080", 700))

	gens := &mutableGen{v: 1}
	history := NewHistory(&fakeHistoryService{}, gens, nopLogger{})
	service := &fakeRecService{res: NewRecommendRes([]string{"gpu rtx 3080"}, nil, nil)}

	r := NewRecommender(service, catalog, history, gens, nopLogger{})
	r.Refresh(context.Background(), domain.Session{Token: "t"}, 1)
	require.Len(t, r.Recommendations(), 1)

	gens.set(2)
	r.OnSessionChange(context.Background(), domain.Session{}, 2)

	assert.Empty(t, r.Recommendations())
}
