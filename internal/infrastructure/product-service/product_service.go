package product_service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductService — клиент каталога product-service.
type ProductService struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewProductService(cfg *cfg.BackendCfg, logger logger.Logger) *ProductService {
	return &ProductService{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// productModel терпимо описывает товар каталога: разные датасеты
// product-service называют поля по-разному (title/name, category
// строкой или массивом, цена целым или дробным числом).
type productModel struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Name          string          `json:"name"`
	Price         json.Number     `json:"price"`
	OriginalPrice json.Number     `json:"original_price"`
	Discount      string          `json:"discount"`
	Category      json.RawMessage `json:"category"`
	Specs         string          `json:"specs"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Stock         int             `json:"stock"`
	Comments      []commentModel  `json:"comments"`
}

type commentModel struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// ListProducts возвращает весь каталог.
func (p *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductService.ListProducts"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/products", nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var models []productModel
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(models) == 0 {
		return nil, e.Wrap(op, e.ErrCatalogEmpty)
	}

	products := make([]domain.Product, 0, len(models))
	for _, model := range models {
		products = append(products, p.toDomain(model))
	}

	return products, nil
}

func (p *ProductService) toDomain(model productModel) domain.Product {
	title := model.Title
	if title == "" {
		title = model.Name
	}

	product := domain.Product{
		ID:          model.ID,
		Title:       title,
		Price:       parsePrice(model.Price),
		Discount:    model.Discount,
		Category:    parseCategory(model.Category),
		Specs:       model.Specs,
		Description: model.Description,
		Image:       model.Image,
		Stock:       model.Stock,
	}

	if model.OriginalPrice != "" {
		original := parsePrice(model.OriginalPrice)
		product.OriginalPrice = &original
	}

	for _, c := range model.Comments {
		product.Comments = append(product.Comments, domain.Comment{
			ID:      c.ID,
			User:    c.User,
			Rating:  c.Rating,
			Date:    c.Date,
			Content: c.Content,
		})
	}

	return product
}

// parsePrice нормализует цену в целые единицы валюты: сервис может
// отдать и целое, и дробное число.
func parsePrice(value json.Number) int64 {
	if value == "" {
		return 0
	}

	d, err := decimal.NewFromString(value.String())
	if err != nil {
		return 0
	}

	return d.Round(0).IntPart()
}

// parseCategory принимает категорию и строкой, и массивом строк.
func parseCategory(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}

	return nil
}
