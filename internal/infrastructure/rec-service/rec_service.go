package rec_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// RecService — клиент rec-service. Вместе с рекомендациями сервис
// возвращает канонические снимки историй пользователя.
type RecService struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewRecService(cfg *cfg.BackendCfg, logger logger.Logger) *RecService {
	return &RecService{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type recRequestModel struct {
	UserProfile string `json:"user_profile"`
}

type historyItemModel struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type recResponseModel struct {
	Recommendations []string           `json:"recommendations"`
	SearchHistory   []historyItemModel `json:"search_history"`
	ViewHistory     []historyItemModel `json:"view_history"`
}

// Recommend запрашивает рекомендации для профиля пользователя.
func (r *RecService) Recommend(ctx context.Context, token string, req *usecase.RecommendReq) (*usecase.RecommendRes, error) {
	const op = "RecService.Recommend"

	body, err := json.Marshal(recRequestModel{UserProfile: req.UserProfile})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var model recResponseModel
	if err := json.NewDecoder(resp.Body).Decode(&model); err != nil {
		return nil, e.Wrap(op, err)
	}

	return usecase.NewRecommendRes(
		model.Recommendations,
		toEntries(model.SearchHistory),
		toEntries(model.ViewHistory),
	), nil
}

func toEntries(models []historyItemModel) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, 0, len(models))
	for _, model := range models {
		entries = append(entries, domain.HistoryEntry{
			Text:      model.Text,
			CreatedAt: parseHistoryTime(model.CreatedAt),
		})
	}

	return entries
}

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
