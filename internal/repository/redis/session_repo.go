package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// sessionKey — единственный ключ сессии: витрина обслуживает одного
// пользователя за раз, как и её браузерный предшественник.
const sessionKey = "storefront:session"

type SessionRepo struct {
	client *clients.RedisClient
	conv   converter.SessionConverter
	logger logger.Logger
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client: client,
		conv:   conv,
		logger: logger,
	}
}

// Save пишет сессию под фиксированным ключом без TTL: сессия живёт до
// явного выхода пользователя.
func (s *SessionRepo) Save(ctx context.Context, session domain.Session) error {
	data, err := json.Marshal(s.conv.ToRedisModel(session))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, sessionKey, data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Load читает сохранённую сессию. Отсутствие ключа — e.ErrSessionNotFound.
func (s *SessionRepo) Load(ctx context.Context) (domain.Session, error) {
	data, err := s.client.Client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return domain.Session{}, e.ErrSessionNotFound
		}

		return domain.Session{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		s.logger.Warnf("повреждённая сессия в Redis, удаляю: %v", err)

		if delErr := s.client.Client.Del(ctx, sessionKey).Err(); delErr != nil {
			s.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}

		return domain.Session{}, e.ErrSessionNotFound
	}

	return s.conv.ToDomain(&model), nil
}

// Clear удаляет сохранённую сессию.
func (s *SessionRepo) Clear(ctx context.Context) error {
	if err := s.client.Client.Del(ctx, sessionKey).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
