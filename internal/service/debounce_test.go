package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nandeesh88/go-content-dashboard/internal/config"
)

// Покрытие:
//  - шквал Trigger в пределах кванта -> ровно один вызов (последней функции);
//  - Stop отменяет отложенный вызов;
//  - после тихого кванта дебаунсер можно использовать повторно.
//
// Тесты завязаны на реальные таймеры, кванты выбраны с большим запасом.

func TestDebouncer_CoalescesBurst(t *testing.T) {
	t.Parallel()

	db := NewDebouncer(50 * time.Millisecond)

	var calls int32
	var last atomic.Value

	for _, q := range []string{"q", "qu", "qua", "quan"} {
		q := q
		db.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			last.Store(q)
		})
		time.Sleep(10 * time.Millisecond) // новое нажатие внутри кванта
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 10*time.Millisecond, "шквал должен схлопнуться в один вызов")

	// Выждем ещё квант: лишних срабатываний быть не должно.
	time.Sleep(100 * time.Millisecond)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	require.Equal(t, "quan", last.Load(), "выполняется последняя из функций")
}

func TestSearchDebouncer_UsesConfiguredQuantum(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Limits:   config.LimitsConfig{Default: 10, Max: 100},
		Debounce: config.DebounceConfig{Interval: 20 * time.Millisecond},
	}
	svc := New(nil, nil, nil, nil, cfg)

	db := svc.SearchDebouncer()
	require.NotNil(t, db)

	var calls int32
	db.Trigger(func() { atomic.AddInt32(&calls, 1) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	t.Parallel()

	db := NewDebouncer(30 * time.Millisecond)

	var calls int32
	db.Trigger(func() { atomic.AddInt32(&calls, 1) })
	db.Stop()

	time.Sleep(100 * time.Millisecond)
	require.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestDebouncer_ReusableAfterQuiet(t *testing.T) {
	t.Parallel()

	db := NewDebouncer(20 * time.Millisecond)

	var calls int32
	db.Trigger(func() { atomic.AddInt32(&calls, 1) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)

	db.Trigger(func() { atomic.AddInt32(&calls, 1) })

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 2
	}, time.Second, 5*time.Millisecond)
}
