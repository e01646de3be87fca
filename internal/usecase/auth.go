package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// SessionHook вызывается при каждой смене сессии: вход, выход,
// восстановление. gen — поколение сессии на момент вызова.
type SessionHook func(ctx context.Context, session domain.Session, gen uint64)

// Auth владеет сессией пользователя и её поколением. Поколение растёт
// при каждой смене сессии; ответы фоновых загрузок, начатых при старом
// поколении, отбрасываются получателями.
type Auth struct {
	mu      sync.Mutex
	session domain.Session
	gen     uint64
	hooks   []SessionHook
	service AuthServiceInfra
	repo    SessionRepository
	log     logger.Logger
}

func NewAuth(service AuthServiceInfra, repo SessionRepository, log logger.Logger) *Auth {
	return &Auth{
		service: service,
		repo:    repo,
		log:     log,
	}
}

// OnChange регистрирует хук смены сессии. Вызывать до начала работы.
func (a *Auth) OnChange(hook SessionHook) {
	a.hooks = append(a.hooks, hook)
}

// Login выполняет вход через user-service. Неудачный вход не меняет
// состояние: текущая сессия и поколение остаются прежними.
func (a *Auth) Login(ctx context.Context, username, password string) {
	token, err := a.service.Login(ctx, username, password)
	if err != nil {
		a.log.Warnf("вход пользователя %q не удался: %v", username, err)

		return
	}

	session := domain.Session{
		Token:    token,
		Username: username,
	}

	a.apply(ctx, session)

	if err := a.repo.Save(ctx, session); err != nil {
		a.log.Warnf("не удалось сохранить сессию: %v", err)
	}
}

// Logout завершает сессию и удаляет её из хранилища.
func (a *Auth) Logout(ctx context.Context) {
	a.apply(ctx, domain.Session{})

	if err := a.repo.Clear(ctx); err != nil {
		a.log.Warnf("не удалось удалить сессию из хранилища: %v", err)
	}
}

// Restore поднимает сессию из хранилища на старте. Отсутствие или
// порча сохранённой сессии — не ошибка запуска.
func (a *Auth) Restore(ctx context.Context) {
	session, err := a.repo.Load(ctx)
	if err != nil {
		a.log.Debugf("сохранённая сессия не восстановлена: %v", err)

		return
	}

	if !session.Present() {
		return
	}

	a.apply(ctx, session)
}

// apply меняет сессию, двигает поколение и будит хуки.
// Хуки получают контекст, отвязанный от отмены: загрузки историй и
// рекомендаций переживают завершение HTTP-запроса, который их вызвал.
func (a *Auth) apply(ctx context.Context, session domain.Session) {
	a.mu.Lock()

	a.session = session
	a.gen++
	gen := a.gen

	a.mu.Unlock()

	hookCtx := context.WithoutCancel(ctx)
	for _, hook := range a.hooks {
		go hook(hookCtx, session, gen)
	}
}

// Current возвращает текущую сессию.
func (a *Auth) Current() domain.Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.session
}

// Generation возвращает текущее поколение сессии.
func (a *Auth) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.gen
}
