package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	catalogRetryBase = 500 * time.Millisecond
	catalogRetryMax  = 15 * time.Second
)

// Catalog — кэш каталога товаров. Каталог загружается один раз на
// старте с повторами; после загрузки будит подписчиков, отложивших
// работу до появления товаров.
type Catalog struct {
	mu       sync.Mutex
	products []domain.Product
	byID     map[int64]int
	ready    bool
	onLoaded []func()

	service ProductServiceInfra
	log     logger.Logger
}

func NewCatalog(service ProductServiceInfra, log logger.Logger) *Catalog {
	return &Catalog{
		byID:    make(map[int64]int),
		service: service,
		log:     log,
	}
}

// OnLoaded регистрирует подписчика загрузки каталога. Вызывать до Load.
func (c *Catalog) OnLoaded(fn func()) {
	c.onLoaded = append(c.onLoaded, fn)
}

// Load тянет каталог из product-service с экспоненциальными повторами
// до успеха или отмены контекста.
func (c *Catalog) Load(ctx context.Context) {
	for attempt := 0; ; attempt++ {
		products, err := c.service.ListProducts(ctx)
		if err == nil {
			c.apply(products)

			return
		}

		delay := jitter.ExponentialBackoff(catalogRetryBase, catalogRetryMax, attempt, jitter.DefaultJitter)
		c.log.Warnf("не удалось загрузить каталог, повтор через %s: %v", delay, err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func (c *Catalog) apply(products []domain.Product) {
	c.mu.Lock()

	c.products = products
	c.byID = make(map[int64]int, len(products))
	for i := range products {
		c.byID[products[i].ID] = i
	}
	c.ready = true

	hooks := c.onLoaded

	c.mu.Unlock()

	c.log.Infof("каталог загружен: %d товаров", len(products))

	for _, fn := range hooks {
		go fn()
	}
}

// Products возвращает копию каталога.
func (c *Catalog) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	products := make([]domain.Product, len(c.products))
	copy(products, c.products)

	return products
}

// ProductByID ищет товар по идентификатору.
func (c *Catalog) ProductByID(id int64) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}

	return c.products[i], true
}

// Ready сообщает, загружен ли каталог.
func (c *Catalog) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ready
}
