package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase    usecase.CartUC
	catalogUsecase usecase.CatalogUC
	notifications  usecase.NotificationUC
	logger         logger.Logger
}

func NewCartHandler(
	cartUsecase usecase.CartUC,
	catalogUsecase usecase.CatalogUC,
	notifications usecase.NotificationUC,
	logger logger.Logger,
) *CartHandler {
	return &CartHandler{
		cartUsecase:    cartUsecase,
		catalogUsecase: catalogUsecase,
		notifications:  notifications,
		logger:         logger,
	}
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// getCart
//
//	@Summary	Содержимое корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCartResponse(c.cartUsecase.Snapshot()))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Повторное добавление увеличивает количество позиции
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		addCartItemRequest	true	"Идентификатор товара"
//	@Success		200		{object}	CartResponse
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	product, ok := c.catalogUsecase.ProductByID(req.ProductID)
	if !ok {
		c.logger.Warnf("%d %s: product_id=%d", http.StatusNotFound, e.ErrProductNotFound.Error(), req.ProductID)
		WriteError(w, e.ErrProductNotFound)
		return
	}

	c.cartUsecase.Add(product)
	c.notifications.Show(product.Title+" добавлен в корзину", domain.SeveritySuccess)

	WriteSuccess(w, http.StatusOK, toCartResponse(c.cartUsecase.Snapshot()))
}

// removeItem
//
//	@Summary		Удаление позиции из корзины
//	@Description	Удаление существующей позиции сопровождается info-уведомлением
//	@Tags			cart
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	CartResponse
//	@Router			/cart/items/{id} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	c.notifyRemoval(id)
	c.cartUsecase.Remove(id)

	WriteSuccess(w, http.StatusOK, toCartResponse(c.cartUsecase.Snapshot()))
}

// setQuantity
//
//	@Summary		Количество позиции
//	@Description	Количество меньше единицы удаляет позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int					true	"Идентификатор товара"
//	@Param			quantity	body		setQuantityRequest	true	"Новое количество"
//	@Success		200			{object}	CartResponse
//	@Router			/cart/items/{id} [put]
func (c *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req setQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	// Количество меньше единицы — то же удаление, с тем же уведомлением.
	if req.Quantity < 1 {
		c.notifyRemoval(id)
	}

	c.cartUsecase.SetQuantity(id, req.Quantity)

	WriteSuccess(w, http.StatusOK, toCartResponse(c.cartUsecase.Snapshot()))
}

// notifyRemoval показывает info-уведомление об удалении позиции, если
// товар действительно лежал в корзине.
func (c *CartHandler) notifyRemoval(productID int64) {
	for _, item := range c.cartUsecase.Snapshot() {
		if item.Product.ID == productID {
			c.notifications.Show(item.Product.Title+" удалён из корзины", domain.SeverityInfo)
			return
		}
	}
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return id, nil
}
