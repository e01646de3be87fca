package domain

import "time"

// HistoryEntry — запись истории поиска или просмотров пользователя.
type HistoryEntry struct {
	Text      string
	CreatedAt time.Time
}
