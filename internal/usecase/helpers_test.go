package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeArchive struct {
	mu     sync.Mutex
	orders []domain.Order
	events []*OutboxEvent
	stored []domain.Order
	err    error
}

func (f *fakeArchive) Save(ctx context.Context, order *domain.Order, event *OutboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.orders = append(f.orders, *order)
	f.events = append(f.events, event)

	return nil
}

func (f *fakeArchive) Load(ctx context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return f.stored, nil
}

type fakeSessionRepo struct {
	mu      sync.Mutex
	session *domain.Session
	saveErr error
	loadErr error
}

func (f *fakeSessionRepo) Save(ctx context.Context, session domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = &session

	return nil
}

func (f *fakeSessionRepo) Load(ctx context.Context) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return domain.Session{}, f.loadErr
	}
	if f.session == nil {
		return domain.Session{}, nil
	}

	return *f.session, nil
}

func (f *fakeSessionRepo) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.session = nil

	return nil
}

// fakeAuthService отдаёт токен или ошибку, по желанию блокируясь до release.
type fakeAuthService struct {
	token   string
	err     error
	release chan struct{}
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return "", f.err
	}

	return f.token, nil
}

type fakeHistoryService struct {
	mu        sync.Mutex
	search    []domain.HistoryEntry
	view      []domain.HistoryEntry
	recorded  []string
	searchErr error
	viewErr   error
	recordCtx context.Context
	block     chan struct{}
}

func (f *fakeHistoryService) RecordSearch(ctx context.Context, token, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.recordCtx = ctx
	f.recorded = append(f.recorded, "search:"+text)
	f.search = append([]domain.HistoryEntry{{Text: text}}, f.search...)

	return nil
}

func (f *fakeHistoryService) RecordView(ctx context.Context, token, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.recordCtx = ctx
	f.recorded = append(f.recorded, "view:"+text)
	f.view = append([]domain.HistoryEntry{{Text: text}}, f.view...)

	return nil
}

func (f *fakeHistoryService) FetchSearchHistory(ctx context.Context, token string) ([]domain.HistoryEntry, error) {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.searchErr != nil {
		return nil, f.searchErr
	}

	return append([]domain.HistoryEntry(nil), f.search...), nil
}

func (f *fakeHistoryService) FetchViewHistory(ctx context.Context, token string) ([]domain.HistoryEntry, error) {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.viewErr != nil {
		return nil, f.viewErr
	}

	return append([]domain.HistoryEntry(nil), f.view...), nil
}

func (f *fakeHistoryService) recordedCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.recorded...)
}

func (f *fakeHistoryService) lastRecordCtx() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.recordCtx
}

type fakeProductService struct {
	mu       sync.Mutex
	products []domain.Product
	errs     int
	calls    int
}

func (f *fakeProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.errs > 0 {
		f.errs--
		return nil, context.DeadlineExceeded
	}

	return append([]domain.Product(nil), f.products...), nil
}

type fakeRecService struct {
	mu    sync.Mutex
	res   *RecommendRes
	err   error
	block chan struct{}
	calls int
}

func (f *fakeRecService) Recommend(ctx context.Context, token string, req *RecommendReq) (*RecommendRes, error) {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.res, nil
}

type staticGen uint64

func (g staticGen) Generation() uint64 { return uint64(g) }
