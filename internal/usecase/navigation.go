package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/sched"
)

const (
	// DefaultTransitionDuration — длительность перехода между страницами.
	DefaultTransitionDuration = 300 * time.Millisecond

	maxViewedProducts = 4
)

type sessionSource interface {
	Current() domain.Session
}

// Navigator — навигация витрины. Переход держит флаг InTransition на
// время анимации; при наложении переходов побеждает последний, его
// таймер и определяет момент завершения.
type Navigator struct {
	mu     sync.Mutex
	state  domain.NavigationState
	viewed []domain.Product
	seq    uint64
	task   sched.Task

	sch        sched.Scheduler
	history    *History
	sessions   sessionSource
	transition time.Duration
}

func NewNavigator(sch sched.Scheduler, history *History, sessions sessionSource, transition time.Duration) *Navigator {
	if transition <= 0 {
		transition = DefaultTransitionDuration
	}

	return &Navigator{
		state:      domain.NavigationState{Page: domain.PageDashboard},
		sch:        sch,
		history:    history,
		sessions:   sessions,
		transition: transition,
	}
}

// ChangePage переводит витрину на страницу. Неизвестная страница —
// ошибка, состояние не меняется. Переход без товара сохраняет прежний
// выбранный товар.
func (n *Navigator) ChangePage(page domain.Page, selected *domain.Product) error {
	if !domain.ValidPage(page) {
		return e.ErrInvalidPage
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	seq := n.seq

	if n.task != nil {
		n.task.Cancel()
	}

	if selected == nil {
		selected = n.state.Selected
	}

	n.state = domain.NavigationState{
		Page:         page,
		Selected:     selected,
		InTransition: true,
	}

	n.task = n.sch.Schedule(n.transition, func() {
		n.settle(seq)
	})

	return nil
}

// settle завершает переход. Таймер, переживший более новый переход,
// ничего не меняет.
func (n *Navigator) settle(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if seq != n.seq {
		return
	}

	n.state.InTransition = false
	n.task = nil
}

// ViewProductDetail открывает карточку товара, добавляет его к недавно
// просмотренным и пишет просмотр в историю.
func (n *Navigator) ViewProductDetail(ctx context.Context, product domain.Product) error {
	if err := n.ChangePage(domain.PageProductDetail, &product); err != nil {
		return err
	}

	n.remember(product)

	// Запись в историю переживает завершение вызвавшего запроса.
	go n.history.RecordView(context.WithoutCancel(ctx), n.sessions.Current(), product.Title)

	return nil
}

// remember держит до четырёх недавно просмотренных товаров, новые —
// первыми. Повторный просмотр порядок не меняет.
func (n *Navigator) remember(product domain.Product) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, p := range n.viewed {
		if p.ID == product.ID {
			return
		}
	}

	n.viewed = append([]domain.Product{product}, n.viewed...)
	if len(n.viewed) > maxViewedProducts {
		n.viewed = n.viewed[:maxViewedProducts]
	}
}

// State возвращает копию состояния навигации.
func (n *Navigator) State() domain.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()

	state := n.state
	if n.state.Selected != nil {
		selected := *n.state.Selected
		state.Selected = &selected
	}

	return state
}

// Viewed возвращает копию списка недавно просмотренных товаров.
func (n *Navigator) Viewed() []domain.Product {
	n.mu.Lock()
	defer n.mu.Unlock()

	viewed := make([]domain.Product, len(n.viewed))
	copy(viewed, n.viewed)

	return viewed
}
