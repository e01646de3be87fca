package converter

import "github.com/DRSN-tech/storefront/internal/domain"

type SessionConverter interface {
	ToRedisModel(session domain.Session) *SessionRedisModel
	ToDomain(model *SessionRedisModel) domain.Session
}

type sessionConverter struct{}

func NewSessionConverter() SessionConverter {
	return &sessionConverter{}
}

func (c *sessionConverter) ToRedisModel(session domain.Session) *SessionRedisModel {
	return &SessionRedisModel{
		Token:    session.Token,
		Username: session.Username,
	}
}

func (c *sessionConverter) ToDomain(model *SessionRedisModel) domain.Session {
	return domain.Session{
		Token:    model.Token,
		Username: model.Username,
	}
}
