// Package trigger распознаёт двойное нажатие одной клавиши в потоке
// сырых событий клавиатуры.
package trigger

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"

	"fixmytypo/internal/keyboard"
)

const (
	// DefaultKey - клавиша-триггер по умолчанию.
	DefaultKey = "caps lock"
	// DefaultWindow - максимальный интервал между двумя нажатиями.
	DefaultWindow = 350 * time.Millisecond
)

// Detector - автомат {Up, Down} для одной клавиши.
//
// Повторные Down без Up (автоповтор удерживаемой клавиши) игнорируются и
// не сдвигают время последнего нажатия.
type Detector struct {
	mu          sync.Mutex
	key         string
	window      time.Duration
	down        bool
	lastTrigger time.Time
}

// New создаёт детектор для клавиши key. Пустые значения заменяются
// значениями по умолчанию.
func New(key string, window time.Duration) *Detector {
	d := &Detector{}
	d.configure(key, window)
	return d
}

// SetKey меняет клавишу-триггер и окно двойного нажатия. Состояние
// автомата сбрасывается.
func (d *Detector) SetKey(key string, window time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.configure(key, window)
	d.down = false
	d.lastTrigger = time.Time{}
}

func (d *Detector) configure(key string, window time.Duration) {
	name := Normalize(key)
	if name == "" {
		if strings.TrimSpace(key) != "" {
			log.Warn("Неизвестное имя клавиши-триггера, используется клавиша по умолчанию", "key", key, "default", DefaultKey)
		}
		name = Normalize(DefaultKey)
	}
	key = name
	if window <= 0 {
		window = DefaultWindow
	}
	d.key = key
	d.window = window
}

// Key возвращает нормализованное имя клавиши-триггера.
func (d *Detector) Key() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.key
}

// Feed обрабатывает одно событие и возвращает true, если зафиксировано
// двойное нажатие.
func (d *Detector) Feed(ev keyboard.Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if Normalize(ev.Name) != d.key {
		return false
	}

	switch ev.Type {
	case keyboard.Down:
		if d.down {
			return false
		}
		d.down = true
		now := ev.When
		if now.IsZero() {
			now = time.Now()
		}
		activate := !d.lastTrigger.IsZero() && now.Sub(d.lastTrigger) < d.window
		d.lastTrigger = now
		return activate
	case keyboard.Up:
		d.down = false
	}
	return false
}

// Run читает события до закрытия канала или отмены ctx и вызывает
// onActivate на текущей горутине.
func (d *Detector) Run(ctx context.Context, events <-chan keyboard.Event, onActivate func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if d.Feed(ev) {
				log.Debug("Двойное нажатие", "key", ev.Name)
				if onActivate != nil {
					onActivate()
				}
			}
		}
	}
}

// Normalize приводит имя клавиши к виду для сравнения: регистр свёрнут,
// '_', '-' и пробельные последовательности заменены одним пробелом.
// Имя только из '_' и '-' ("-", "_") - это сама клавиша, оно остаётся как есть.
func Normalize(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return strings.Join(strings.Fields(name), "")
	}
	return cases.Fold().String(strings.Join(fields, " "))
}
