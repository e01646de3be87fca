package user_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// UserService — клиент user-service: аутентификация и история пользователя.
type UserService struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewUserService(cfg *cfg.BackendCfg, logger logger.Logger) *UserService {
	return &UserService{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type historyItemModel struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// Login обменивает учётные данные на bearer-токен.
// Запрос form-urlencoded, как того требует OAuth2-форма user-service.
func (u *UserService) Login(ctx context.Context, username, password string) (string, error) {
	const op = "UserService.Login"

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/login",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", e.Wrap(op, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, e.ErrLoginFailed))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", e.Wrap(op, err)
	}

	if token.AccessToken == "" {
		return "", e.Wrap(op, e.ErrLoginFailed)
	}

	return token.AccessToken, nil
}

// RecordSearch пишет поисковый запрос в историю пользователя.
func (u *UserService) RecordSearch(ctx context.Context, token, text string) error {
	return u.record(ctx, token, "/me/history/search", text)
}

// RecordView пишет просмотр товара в историю пользователя.
func (u *UserService) RecordView(ctx context.Context, token, text string) error {
	return u.record(ctx, token, "/me/history/view", text)
}

func (u *UserService) record(ctx context.Context, token, path, text string) error {
	const op = "UserService.record"

	body, err := json.Marshal(historyItemModel{Text: text})
	if err != nil {
		return e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := u.client.Do(req)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return e.Wrap(op, fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode))
	}

	return nil
}

// FetchSearchHistory возвращает историю поиска, свежие записи первыми.
func (u *UserService) FetchSearchHistory(ctx context.Context, token string) ([]domain.HistoryEntry, error) {
	return u.fetchHistory(ctx, token, "/me/history/search")
}

// FetchViewHistory возвращает историю просмотров, свежие записи первыми.
func (u *UserService) FetchViewHistory(ctx context.Context, token string) ([]domain.HistoryEntry, error) {
	return u.fetchHistory(ctx, token, "/me/history/view")
}

func (u *UserService) fetchHistory(ctx context.Context, token, path string) ([]domain.HistoryEntry, error) {
	const op = "UserService.fetchHistory"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+path, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode))
	}

	var models []historyItemModel
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, e.Wrap(op, err)
	}

	entries := make([]domain.HistoryEntry, 0, len(models))
	for _, model := range models {
		entries = append(entries, domain.HistoryEntry{
			Text:      model.Text,
			CreatedAt: parseHistoryTime(model.CreatedAt),
		})
	}

	return entries, nil
}

// parseHistoryTime разбирает created_at истории. Сервис отдаёт ISO-время,
// иногда без зоны; неразборчивое значение превращается в нулевое время.
func parseHistoryTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Time{}
}
