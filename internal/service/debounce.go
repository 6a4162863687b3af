package service

import (
	"sync"
	"time"
)

// Debouncer коалесцирует шквал событий в один вызов: fn выполняется,
// только когда после последнего Trigger прошёл тихий квант d.
// Новый Trigger в пределах кванта отменяет отложенный вызов и
// перезапускает таймер; выполняется всегда последняя функция.
//
// Используется потребителем поискового ввода: пересчёт фильтра не
// должен происходить на каждое нажатие клавиши.
type Debouncer struct {
	d time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer создаёт дебаунсер с квантом d.
func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger планирует вызов fn через квант тишины.
func (db *Debouncer) Trigger(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, fn)
}

// SearchDebouncer создаёт дебаунсер с квантом из конфига сервиса.
// Каждый интерактивный потребитель (поле поиска) держит свой экземпляр.
func (s *Service) SearchDebouncer() *Debouncer {
	return NewDebouncer(s.cfg.Debounce.Interval)
}

// Stop отменяет отложенный вызов, если он есть.
func (db *Debouncer) Stop() {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
