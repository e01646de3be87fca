package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase   usecase.CatalogUC
	searchUsecase    usecase.SearchUC
	recommendUsecase usecase.RecommendationUC
	logger           logger.Logger
}

func NewCatalogHandler(
	catalogUsecase usecase.CatalogUC,
	searchUsecase usecase.SearchUC,
	recommendUsecase usecase.RecommendationUC,
	logger logger.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase:   catalogUsecase,
		searchUsecase:    searchUsecase,
		recommendUsecase: recommendUsecase,
		logger:           logger,
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

// listProducts
//
//	@Summary	Каталог товаров
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toArrProductResponse(c.catalogUsecase.Products()))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int	true	"Идентификатор товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, ok := c.catalogUsecase.ProductByID(id)
	if !ok {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// search
//
//	@Summary		Поиск по витрине
//	@Description	Запрос попадает в историю поиска пользователя
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			query	body		searchRequest	true	"Поисковый запрос"
//	@Success		200		{object}	SearchResponse
//	@Router			/search [post]
func (c *CatalogHandler) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.Query == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	results := c.searchUsecase.Search(r.Context(), req.Query)

	WriteSuccess(w, http.StatusOK, SearchResponse{
		Query:   req.Query,
		Results: toArrProductResponse(results),
	})
}

// recommendations
//
//	@Summary	Рекомендации, сопоставленные с каталогом
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/recommendations [get]
func (c *CatalogHandler) recommendations(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toArrProductResponse(c.recommendUsecase.Recommendations()))
}
