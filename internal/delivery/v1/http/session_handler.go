package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type SessionHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewSessionHandler(authUsecase usecase.AuthUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{authUsecase: authUsecase, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login
//
//	@Summary		Вход пользователя
//	@Description	Обменивает учётные данные на сессию. Неуспешный вход не раскрывается: ответ всегда 204
//	@Tags			session
//	@Accept			json
//	@Param			credentials	body	loginRequest	true	"Учётные данные"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/session/login [post]
func (s *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if req.Username == "" || req.Password == "" {
		s.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrMissingFields.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	s.authUsecase.Login(r.Context(), req.Username, req.Password)

	w.WriteHeader(http.StatusNoContent)
}

// logout
//
//	@Summary	Выход пользователя
//	@Tags		session
//	@Success	204
//	@Router		/session [delete]
func (s *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	s.authUsecase.Logout(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
