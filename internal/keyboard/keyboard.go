// Package keyboard поставляет низкоуровневые события нажатия и отпускания
// клавиш через глобальный хук.
package keyboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	hook "github.com/robotn/gohook"
)

// EventType - тип события клавиши.
type EventType int

const (
	Down EventType = iota
	Up
)

func (t EventType) String() string {
	if t == Up {
		return "up"
	}
	return "down"
}

// Event - одно физическое нажатие или отпускание.
type Event struct {
	Name string
	Type EventType
	When time.Time
}

var (
	// ErrRunning возвращается при повторном Start.
	ErrRunning = errors.New("keyboard: source already running")
	// ErrUnavailable - хук не удалось установить.
	ErrUnavailable = errors.New("keyboard: global hook unavailable")
)

// Source подписывается на глобальный хук и переводит его события в Event.
type Source struct {
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	// подменяются в тестах
	start func() chan hook.Event
	end   func()
}

// New создаёт источник событий.
func New() *Source {
	return &Source{
		start: hook.Start,
		end:   hook.End,
	}
}

// Start устанавливает хук и возвращает канал событий. Канал закрывается
// после Stop или отмены ctx.
func (s *Source) Start(ctx context.Context) (<-chan Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, ErrRunning
	}

	raw := s.start()
	if raw == nil {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Event, 64)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.pump(ctx, raw, out)
	log.Debug("Глобальный хук клавиатуры установлен")
	return out, nil
}

// Stop снимает хук и дожидается закрытия канала событий.
func (s *Source) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		log.Warn("Таймаут остановки хука клавиатуры")
	}
}

func (s *Source) pump(ctx context.Context, raw chan hook.Event, out chan<- Event) {
	defer func() {
		s.end()
		close(out)
		s.mu.Lock()
		s.running = false
		close(s.done)
		s.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-raw:
			if !ok {
				return
			}
			e, ok := translate(ev)
			if !ok {
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}

// translate переводит событие хука. KeyHold у gohook - это физическое
// нажатие (в том числе автоповтор), KeyDown - напечатанный символ,
// он пропускается.
func translate(ev hook.Event) (Event, bool) {
	var typ EventType
	switch ev.Kind {
	case hook.KeyHold:
		typ = Down
	case hook.KeyUp:
		typ = Up
	default:
		return Event{}, false
	}

	when := ev.When
	if when.IsZero() {
		when = time.Now()
	}

	return Event{
		Name: KeyName(ev.Keycode, ev.Keychar),
		Type: typ,
		When: when,
	}, true
}
