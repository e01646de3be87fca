package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// Recommender тянет рекомендации из rec-service и сопоставляет их с
// каталогом. Строка рекомендации считается попаданием в товар, если
// название товара содержится в ней как подстрока без учёта регистра.
type Recommender struct {
	mu      sync.Mutex
	raw     []string
	matched []domain.Product

	service RecommendServiceInfra
	catalog *Catalog
	history *History
	gens    generationSource
	log     logger.Logger
}

func NewRecommender(service RecommendServiceInfra, catalog *Catalog, history *History, gens generationSource, log logger.Logger) *Recommender {
	return &Recommender{
		service: service,
		catalog: catalog,
		history: history,
		gens:    gens,
		log:     log,
	}
}

// OnSessionChange — хук смены сессии: при входе тянет рекомендации,
// при выходе очищает их.
func (r *Recommender) OnSessionChange(ctx context.Context, session domain.Session, gen uint64) {
	if !session.Present() {
		r.mu.Lock()
		defer r.mu.Unlock()

		if gen != r.gens.Generation() {
			return
		}

		r.raw = nil
		r.matched = nil

		return
	}

	r.Refresh(ctx, session, gen)
}

// Refresh запрашивает рекомендации для сессии. Ответ, пришедший при
// другом поколении, отбрасывается вместе со снимками историй.
// Неудачный запрос опустошает набор рекомендаций; зеркала историй при
// этом не трогаются.
func (r *Recommender) Refresh(ctx context.Context, session domain.Session, gen uint64) {
	res, err := r.service.Recommend(ctx, session.Token, NewRecommendReq(session.Username))
	if err != nil {
		r.log.Warnf("не удалось получить рекомендации: %v", err)

		r.mu.Lock()
		defer r.mu.Unlock()

		if gen != r.gens.Generation() {
			return
		}

		r.raw = nil
		r.matched = nil

		return
	}

	r.mu.Lock()

	if gen != r.gens.Generation() {
		r.mu.Unlock()

		return
	}

	r.raw = res.Recommendations
	r.resolveLocked()

	r.mu.Unlock()

	r.history.Apply(gen, res.SearchHistory, res.ViewHistory)
}

// OnCatalogLoaded пересопоставляет уже полученные рекомендации, когда
// каталог наконец загрузился.
func (r *Recommender) OnCatalogLoaded() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resolveLocked()
}

// resolveLocked сопоставляет сырые строки с каталогом; порядок выдачи —
// порядок каталога. Пока каталог не загружен, сопоставление
// откладывается, сырые строки сохраняются.
func (r *Recommender) resolveLocked() {
	if !r.catalog.Ready() {
		return
	}

	needles := make([]string, 0, len(r.raw))
	for _, rec := range r.raw {
		needles = append(needles, strings.ToLower(strings.TrimSpace(rec)))
	}

	matched := make([]domain.Product, 0, len(needles))
	for _, p := range r.catalog.Products() {
		title := strings.ToLower(strings.TrimSpace(p.Title))

		for _, needle := range needles {
			if strings.Contains(needle, title) {
				matched = append(matched, p)

				break
			}
		}
	}

	r.matched = matched
}

// Recommendations возвращает копию сопоставленных с каталогом товаров.
func (r *Recommender) Recommendations() []domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]domain.Product, len(r.matched))
	copy(products, r.matched)

	return products
}
