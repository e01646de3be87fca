package usecase

import (
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/sched"
)

// DefaultNotificationTTL — время жизни видимого уведомления.
const DefaultNotificationTTL = 3 * time.Second

// Notifier хранит не более одного видимого уведомления.
// Новое уведомление вытесняет предыдущее и перезапускает таймер скрытия.
type Notifier struct {
	mu      sync.Mutex
	current *domain.Notification
	seq     uint64
	task    sched.Task
	ttl     time.Duration
	sch     sched.Scheduler
}

func NewNotifier(sch sched.Scheduler, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}

	return &Notifier{
		ttl: ttl,
		sch: sch,
	}
}

// Show показывает уведомление, заменяя текущее.
func (n *Notifier) Show(text string, severity domain.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	seq := n.seq

	if n.task != nil {
		n.task.Cancel()
	}

	n.current = &domain.Notification{
		Text:     text,
		Severity: severity,
		Visible:  true,
	}

	n.task = n.sch.Schedule(n.ttl, func() {
		n.expire(seq)
	})
}

// expire скрывает уведомление по таймеру. Отставший таймер, чей seq уже
// не совпадает с текущим, ничего не меняет.
func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if seq != n.seq {
		return
	}

	n.current = nil
	n.task = nil
}

// Dismiss скрывает текущее уведомление до истечения таймера.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++

	if n.task != nil {
		n.task.Cancel()
		n.task = nil
	}

	n.current = nil
}

// Current возвращает копию видимого уведомления или nil.
func (n *Notifier) Current() *domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}

	cp := *n.current

	return &cp
}
