package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type generationSource interface {
	Generation() uint64
}

// History зеркалит серверную историю поиска и просмотров пользователя.
// Каждая загрузка помечается поколением сессии, с которым её начали;
// ответ, пришедший уже при другом поколении, отбрасывается.
type History struct {
	mu     sync.Mutex
	search []domain.HistoryEntry
	view   []domain.HistoryEntry

	service HistoryServiceInfra
	gens    generationSource
	log     logger.Logger
}

func NewHistory(service HistoryServiceInfra, gens generationSource, log logger.Logger) *History {
	return &History{
		service: service,
		gens:    gens,
		log:     log,
	}
}

// OnSessionChange — хук смены сессии: при входе тянет обе истории,
// при выходе очищает локальные зеркала.
func (h *History) OnSessionChange(ctx context.Context, session domain.Session, gen uint64) {
	if !session.Present() {
		h.apply(gen, nil, nil)

		return
	}

	h.refreshSearch(ctx, session.Token, gen)
	h.refreshView(ctx, session.Token, gen)
}

// refreshSearch перечитывает историю поиска. Неудачная загрузка
// опустошает зеркало: прошлые записи не должны пережить ошибку.
func (h *History) refreshSearch(ctx context.Context, token string, gen uint64) {
	entries, err := h.service.FetchSearchHistory(ctx, token)
	if err != nil {
		h.log.Warnf("не удалось загрузить историю поиска: %v", err)
		entries = nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if gen != h.gens.Generation() {
		return
	}

	h.search = entries
}

// refreshView перечитывает историю просмотров, деградируя к пустому
// списку так же, как refreshSearch.
func (h *History) refreshView(ctx context.Context, token string, gen uint64) {
	entries, err := h.service.FetchViewHistory(ctx, token)
	if err != nil {
		h.log.Warnf("не удалось загрузить историю просмотров: %v", err)
		entries = nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if gen != h.gens.Generation() {
		return
	}

	h.view = entries
}

// RecordSearch отправляет поисковый запрос в историю и перечитывает её.
// Без сессии запись не ведётся.
func (h *History) RecordSearch(ctx context.Context, session domain.Session, query string) {
	if !session.Present() {
		return
	}

	gen := h.gens.Generation()

	if err := h.service.RecordSearch(ctx, session.Token, query); err != nil {
		h.log.Warnf("не удалось записать поиск в историю: %v", err)

		return
	}

	h.refreshSearch(ctx, session.Token, gen)
}

// RecordView отправляет просмотр товара в историю и перечитывает её.
func (h *History) RecordView(ctx context.Context, session domain.Session, title string) {
	if !session.Present() {
		return
	}

	gen := h.gens.Generation()

	if err := h.service.RecordView(ctx, session.Token, title); err != nil {
		h.log.Warnf("не удалось записать просмотр в историю: %v", err)

		return
	}

	h.refreshView(ctx, session.Token, gen)
}

// Apply принимает канонические снимки историй, пришедшие вместе с
// рекомендациями. Снимок чужого поколения отбрасывается.
func (h *History) Apply(gen uint64, search, view []domain.HistoryEntry) {
	h.apply(gen, search, view)
}

func (h *History) apply(gen uint64, search, view []domain.HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if gen != h.gens.Generation() {
		return
	}

	h.search = search
	h.view = view
}

// SearchHistory возвращает копию зеркала истории поиска.
func (h *History) SearchHistory() []domain.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]domain.HistoryEntry, len(h.search))
	copy(entries, h.search)

	return entries
}

// ViewHistory возвращает копию зеркала истории просмотров.
func (h *History) ViewHistory() []domain.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]domain.HistoryEntry, len(h.view))
	copy(entries, h.view)

	return entries
}
