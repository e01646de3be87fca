package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/sched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	session domain.Session
}

func (f *fakeSessions) Current() domain.Session { return f.session }

func newTestNavigator(timers sched.Scheduler) (*Navigator, *fakeHistoryService) {
	service := &fakeHistoryService{}
	history := NewHistory(service, staticGen(0), nopLogger{})
	sessions := &fakeSessions{session: domain.Session{Token: "t", Username: "user"}}

	return NewNavigator(timers, history, sessions, 300*time.Millisecond), service
}

func TestNavigator_TransitionSettles(t *testing.T) {
	timers := sched.NewManual()
	nav, _ := newTestNavigator(timers)

	require.NoError(t, nav.ChangePage(domain.PageCart, nil))

	state := nav.State()
	assert.Equal(t, domain.PageCart, state.Page)
	assert.True(t, state.InTransition)

	timers.Advance(300 * time.Millisecond)

	assert.False(t, nav.State().InTransition)
}

func TestNavigator_InvalidPage(t *testing.T) {
	timers := sched.NewManual()
	nav, _ := newTestNavigator(timers)

	err := nav.ChangePage(domain.Page("checkout-wizard"), nil)

	require.ErrorIs(t, err, e.ErrInvalidPage)
	assert.Equal(t, domain.PageDashboard, nav.State().Page)
	assert.False(t, nav.State().InTransition)
}

func TestNavigator_LastWriterWins(t *testing.T) {
	timers := sched.NewManual()
	nav, _ := newTestNavigator(timers)

	require.NoError(t, nav.ChangePage(domain.PageCart, nil))
	timers.Advance(200 * time.Millisecond)

	// второй переход до завершения первого: его таймер и решает
	require.NoError(t, nav.ChangePage(domain.PageOrderHistory, nil))

	timers.Advance(100 * time.Millisecond)
	state := nav.State()
	assert.Equal(t, domain.PageOrderHistory, state.Page)
	assert.True(t, state.InTransition, "таймер первого перехода не должен завершать второй")

	timers.Advance(200 * time.Millisecond)
	assert.False(t, nav.State().InTransition)
}

func TestNavigator_ViewProductDetail(t *testing.T) {
	timers := sched.NewManual()
	nav, service := newTestNavigator(timers)

	p := product(7, "Asus ROG Strix Z690", 400)
	require.NoError(t, nav.ViewProductDetail(context.Background(), p))

	state := nav.State()
	assert.Equal(t, domain.PageProductDetail, state.Page)
	require.NotNil(t, state.Selected)
	assert.Equal(t, int64(7), state.Selected.ID)

	require.Eventually(t, func() bool {
		calls := service.recordedCalls()
		return len(calls) == 1 && calls[0] == "view:Asus ROG Strix Z690"
	}, time.Second, 10*time.Millisecond)
}

func TestNavigator_PageChangeKeepsSelection(t *testing.T) {
	timers := sched.NewManual()
	nav, _ := newTestNavigator(timers)

	require.NoError(t, nav.ViewProductDetail(context.Background(), product(7, "Asus ROG Strix Z690", 400)))
	// переход без товара не трогает выбранный
	require.NoError(t, nav.ChangePage(domain.PageCart, nil))

	state := nav.State()
	assert.Equal(t, domain.PageCart, state.Page)
	require.NotNil(t, state.Selected)
	assert.Equal(t, int64(7), state.Selected.ID)
}

func TestNavigator_ViewRecordOutlivesCaller(t *testing.T) {
	timers := sched.NewManual()
	nav, service := newTestNavigator(timers)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, nav.ViewProductDetail(ctx, product(7, "Asus ROG Strix Z690", 400)))
	cancel()

	require.Eventually(t, func() bool {
		return service.lastRecordCtx() != nil
	}, time.Second, 10*time.Millisecond)

	assert.NoError(t, service.lastRecordCtx().Err())
}

func TestNavigator_ViewedKeepsFourNewestFirst(t *testing.T) {
	timers := sched.NewManual()
	nav, _ := newTestNavigator(timers)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, nav.ViewProductDetail(context.Background(), product(i, "item", 10)))
	}

	viewed := nav.Viewed()
	require.Len(t, viewed, 4)
	assert.Equal(t, int64(5), viewed[0].ID)
	assert.Equal(t, int64(2), viewed[3].ID)
}

func TestNavigator_RepeatViewKeepsOrder(t *testing.T) {
	timers := sched.NewManual()
	nav, _ := newTestNavigator(timers)

	require.NoError(t, nav.ViewProductDetail(context.Background(), product(1, "a", 10)))
	require.NoError(t, nav.ViewProductDetail(context.Background(), product(2, "b", 10)))
	// повторный просмотр не перетасовывает список
	require.NoError(t, nav.ViewProductDetail(context.Background(), product(1, "a", 10)))

	viewed := nav.Viewed()
	require.Len(t, viewed, 2)
	assert.Equal(t, int64(2), viewed[0].ID)
	assert.Equal(t, int64(1), viewed[1].ID)
}
