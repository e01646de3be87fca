// Package sched предоставляет абстракцию отменяемых отложенных задач поверх таймеров,
// чтобы таймеры навигации и уведомлений можно было детерминированно продвигать в тестах.
package sched

import (
	"sort"
	"sync"
	"time"
)

// Task — запланированная задача, которую можно отменить до срабатывания.
type Task interface {
	// Cancel отменяет задачу. Возвращает false, если задача уже сработала
	// или была отменена ранее.
	Cancel() bool
}

// Scheduler планирует одноразовое выполнение функции через заданный интервал.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() bool {
	return t.timer.Stop()
}

type timerScheduler struct{}

// NewTimerScheduler возвращает планировщик поверх time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(d, fn)}
}

// Manual — планировщик с ручным временем для тестов: задачи срабатывают
// только при явном вызове Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextSeq int
	pending []*manualTask
}

type manualTask struct {
	owner    *Manual
	deadline time.Duration
	seq      int
	fn       func()
	done     bool
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}

// NewManual создает ручной планировщик.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTask{
		owner:    m,
		deadline: m.now + d,
		seq:      m.nextSeq,
		fn:       fn,
	}
	m.nextSeq++
	m.pending = append(m.pending, t)
	return t
}

// Advance продвигает время на d и выполняет все задачи, чей срок наступил,
// в порядке их сроков (при равенстве — в порядке постановки).
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d

	var due []*manualTask
	remaining := m.pending[:0]
	for _, t := range m.pending {
		if !t.done && t.deadline <= m.now {
			t.done = true
			due = append(due, t)
			continue
		}
		if !t.done {
			remaining = append(remaining, t)
		}
	}
	m.pending = remaining

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	m.mu.Unlock()

	// Задачи выполняются вне мьютекса: они могут планировать новые.
	for _, t := range due {
		t.fn()
	}
}

// Pending возвращает число ещё не сработавших задач.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.pending {
		if !t.done {
			n++
		}
	}
	return n
}
