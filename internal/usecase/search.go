package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
)

const searchResultsLimit = 10

// Searcher выполняет поиск по витрине. Выдача — первые товары каталога,
// ранжирование остаётся на стороне product-service; запрос при этом
// записывается в историю поиска пользователя.
type Searcher struct {
	mu      sync.Mutex
	query   string
	results []domain.Product

	catalog  *Catalog
	history  *History
	sessions sessionSource
}

func NewSearcher(catalog *Catalog, history *History, sessions sessionSource) *Searcher {
	return &Searcher{
		catalog:  catalog,
		history:  history,
		sessions: sessions,
	}
}

// Search запоминает запрос, формирует выдачу и пишет запрос в историю.
func (s *Searcher) Search(ctx context.Context, query string) []domain.Product {
	products := s.catalog.Products()
	if len(products) > searchResultsLimit {
		products = products[:searchResultsLimit]
	}

	s.mu.Lock()
	s.query = query
	s.results = products
	s.mu.Unlock()

	// Запись в историю переживает завершение вызвавшего запроса.
	go s.history.RecordSearch(context.WithoutCancel(ctx), s.sessions.Current(), query)

	results := make([]domain.Product, len(products))
	copy(results, products)

	return results
}

// Results возвращает копию последней выдачи.
func (s *Searcher) Results() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]domain.Product, len(s.results))
	copy(results, s.results)

	return results
}

// Query возвращает последний поисковый запрос.
func (s *Searcher) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query
}
