package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// StateHandler отдаёт полный снимок витрины и принимает команды
// навигации и уведомлений.
type StateHandler struct {
	authUsecase       usecase.AuthUC
	cartUsecase       usecase.CartUC
	orderUsecase      usecase.OrderUC
	catalogUsecase    usecase.CatalogUC
	searchUsecase     usecase.SearchUC
	navigationUsecase usecase.NavigationUC
	notifications     usecase.NotificationUC
	historyUsecase    usecase.HistoryUC
	recommendUsecase  usecase.RecommendationUC
	logger            logger.Logger
}

func NewStateHandler(
	authUsecase usecase.AuthUC,
	cartUsecase usecase.CartUC,
	orderUsecase usecase.OrderUC,
	catalogUsecase usecase.CatalogUC,
	searchUsecase usecase.SearchUC,
	navigationUsecase usecase.NavigationUC,
	notifications usecase.NotificationUC,
	historyUsecase usecase.HistoryUC,
	recommendUsecase usecase.RecommendationUC,
	logger logger.Logger,
) *StateHandler {
	return &StateHandler{
		authUsecase:       authUsecase,
		cartUsecase:       cartUsecase,
		orderUsecase:      orderUsecase,
		catalogUsecase:    catalogUsecase,
		searchUsecase:     searchUsecase,
		navigationUsecase: navigationUsecase,
		notifications:     notifications,
		historyUsecase:    historyUsecase,
		recommendUsecase:  recommendUsecase,
		logger:            logger,
	}
}

type navigationRequest struct {
	Page      string `json:"page"`
	ProductID *int64 `json:"product_id,omitempty"`
}

// getState
//
//	@Summary	Снимок состояния витрины
//	@Tags		state
//	@Produce	json
//	@Success	200	{object}	StateResponse
//	@Router		/state [get]
func (s *StateHandler) getState(w http.ResponseWriter, r *http.Request) {
	session := s.authUsecase.Current()
	navState := s.navigationUsecase.State()

	resp := StateResponse{
		Session: SessionResponse{
			LoggedIn: session.Present(),
			Username: session.Username,
		},
		Navigation: NavigationResponse{
			Page:         string(navState.Page),
			InTransition: navState.InTransition,
		},
		Cart:   toCartResponse(s.cartUsecase.Snapshot()),
		Orders: toArrOrderResponse(s.orderUsecase.Orders()),
		Search: SearchResponse{
			Query:   s.searchUsecase.Query(),
			Results: toArrProductResponse(s.searchUsecase.Results()),
		},
		SearchHistory:   toArrHistoryResponse(s.historyUsecase.SearchHistory()),
		ViewHistory:     toArrHistoryResponse(s.historyUsecase.ViewHistory()),
		Recommendations: toArrProductResponse(s.recommendUsecase.Recommendations()),
		Viewed:          toArrProductResponse(s.navigationUsecase.Viewed()),
		CatalogReady:    s.catalogUsecase.Ready(),
	}

	if navState.Selected != nil {
		selected := toProductResponse(*navState.Selected)
		resp.Navigation.Selected = &selected
	}

	if notification := s.notifications.Current(); notification != nil {
		resp.Notification = &NotificationResponse{
			Text:     notification.Text,
			Severity: string(notification.Severity),
		}
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// navigate
//
//	@Summary		Переход между страницами
//	@Description	Переход на карточку товара требует product_id и записывает просмотр в историю
//	@Tags			state
//	@Accept			json
//	@Produce		json
//	@Param			target	body		navigationRequest	true	"Целевая страница"
//	@Success		200		{object}	NavigationResponse
//	@Failure		400		{object}	ErrorResponse	"Неизвестная страница"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/navigation [post]
func (s *StateHandler) navigate(w http.ResponseWriter, r *http.Request) {
	var req navigationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	page := domain.Page(req.Page)

	var err error
	if page == domain.PageProductDetail {
		if req.ProductID == nil {
			WriteError(w, e.ErrMissingFields)
			return
		}

		product, ok := s.catalogUsecase.ProductByID(*req.ProductID)
		if !ok {
			WriteError(w, e.ErrProductNotFound)
			return
		}

		err = s.navigationUsecase.ViewProductDetail(r.Context(), product)
	} else {
		err = s.navigationUsecase.ChangePage(page, nil)
	}

	if err != nil {
		s.logger.Warnf("%d navigation failed: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	navState := s.navigationUsecase.State()
	resp := NavigationResponse{
		Page:         string(navState.Page),
		InTransition: navState.InTransition,
	}
	if navState.Selected != nil {
		selected := toProductResponse(*navState.Selected)
		resp.Selected = &selected
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// viewProduct
//
//	@Summary		Просмотр карточки товара
//	@Description	Добавляет товар к недавно просмотренным, пишет просмотр в историю и переводит витрину на карточку
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	NavigationResponse
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id}/view [post]
func (s *StateHandler) viewProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, ok := s.catalogUsecase.ProductByID(id)
	if !ok {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	if err := s.navigationUsecase.ViewProductDetail(r.Context(), product); err != nil {
		WriteError(w, err)
		return
	}

	navState := s.navigationUsecase.State()
	resp := NavigationResponse{
		Page:         string(navState.Page),
		InTransition: navState.InTransition,
	}
	if navState.Selected != nil {
		selected := toProductResponse(*navState.Selected)
		resp.Selected = &selected
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// dismissNotification
//
//	@Summary	Скрытие текущего уведомления
//	@Tags		state
//	@Success	204
//	@Router		/notification/dismiss [post]
func (s *StateHandler) dismissNotification(w http.ResponseWriter, r *http.Request) {
	s.notifications.Dismiss()

	w.WriteHeader(http.StatusNoContent)
}
