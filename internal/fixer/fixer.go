// Package fixer заменяет выделенный текст его версией в другой раскладке
// через буфер обмена.
//
// Срабатывание: снимок буфера, захват выделения (несколько стратегий по
// очереди), конвертация, запись результата в буфер, вставка и
// восстановление исходного содержимого буфера. Любая ошибка или паника
// превращается в Outcome{Kind: Failed}, флаг выполнения снимается на
// любом пути выхода.
package fixer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"fixmytypo/internal/clipboard"
	"fixmytypo/internal/convert"
	"fixmytypo/internal/input"
)

// Timing - задержки срабатывания.
type Timing struct {
	// Debounce - минимальный интервал между принятыми срабатываниями.
	Debounce time.Duration
	// CopySettle - пауза после отправки сочетания копирования.
	CopySettle time.Duration
	// PastePrepare - пауза между записью в буфер и вставкой.
	PastePrepare time.Duration
	// PasteSettle - пауза после вставки перед восстановлением буфера.
	PasteSettle time.Duration
	// Finish - пауза перед снятием флага выполнения.
	Finish time.Duration
}

// DefaultTiming возвращает задержки по умолчанию.
func DefaultTiming() Timing {
	return Timing{
		Debounce:     500 * time.Millisecond,
		CopySettle:   120 * time.Millisecond,
		PastePrepare: 20 * time.Millisecond,
		PasteSettle:  80 * time.Millisecond,
		Finish:       60 * time.Millisecond,
	}
}

// Flag - флаг включения. *atomic.Bool подходит.
type Flag interface {
	Load() bool
}

// Options - зависимости Fixer.
type Options struct {
	Clipboard clipboard.Clipboard
	Sender    input.Sender
	// Enabled - флаг включения, nil означает "всегда включено".
	Enabled Flag
	// Convert - функция конвертации, по умолчанию convert.Convert.
	Convert func(string) string
	Timing  Timing
	// Strategies - стратегии захвата по порядку. По умолчанию
	// DefaultStrategies(Timing.CopySettle).
	Strategies []CaptureStrategy

	// OnStart вызывается, когда срабатывание прошло проверки и начинает
	// работу, на горутине Activate.
	OnStart func()

	Now   func() time.Time
	Sleep func(time.Duration)
}

// Fixer выполняет срабатывания. Activate безопасен для вызова из
// нескольких горутин: одновременно выполняется не больше одного.
type Fixer struct {
	clip    clipboard.Clipboard
	sender  input.Sender
	enabled Flag
	convert func(string) string
	onStart func()
	now     func() time.Time
	sleep   func(time.Duration)

	running atomic.Bool

	mu             sync.Mutex
	lastRun        time.Time
	timing         Timing
	strategies     []CaptureStrategy
	customStrategy bool
}

// New создаёт Fixer.
func New(opts Options) *Fixer {
	f := &Fixer{
		clip:           opts.Clipboard,
		sender:         opts.Sender,
		enabled:        opts.Enabled,
		convert:        opts.Convert,
		onStart:        opts.OnStart,
		now:            opts.Now,
		sleep:          opts.Sleep,
		timing:         opts.Timing,
		strategies:     opts.Strategies,
		customStrategy: len(opts.Strategies) > 0,
	}
	if f.convert == nil {
		f.convert = convert.Convert
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.sleep == nil {
		f.sleep = time.Sleep
	}
	if f.timing == (Timing{}) {
		f.timing = DefaultTiming()
	}
	if !f.customStrategy {
		f.strategies = DefaultStrategies(f.timing.CopySettle)
	}
	return f
}

// SetTiming меняет задержки. Применяется со следующего срабатывания.
func (f *Fixer) SetTiming(t Timing) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.timing = t
	if !f.customStrategy {
		f.strategies = DefaultStrategies(t.CopySettle)
	}
}

// Timing возвращает текущие задержки.
func (f *Fixer) Timing() Timing {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.timing
}

// Running сообщает, выполняется ли сейчас срабатывание.
func (f *Fixer) Running() bool {
	return f.running.Load()
}

// Activate выполняет одно срабатывание. Проверки по порядку: флаг
// включения, отсутствие текущего выполнения, интервал с прошлого
// срабатывания. Время срабатывания фиксируется до начала работы.
func (f *Fixer) Activate() (out Outcome) {
	if f.enabled != nil && !f.enabled.Load() {
		return aborted(Disabled)
	}

	if !f.running.CompareAndSwap(false, true) {
		return aborted(Busy)
	}
	defer f.running.Store(false)

	f.mu.Lock()
	now := f.now()
	if !f.lastRun.IsZero() && now.Sub(f.lastRun) < f.timing.Debounce {
		f.mu.Unlock()
		return aborted(Debounced)
	}
	f.lastRun = now
	timing := f.timing
	strategies := f.strategies
	f.mu.Unlock()

	var snap snapshot
	defer func() {
		if r := recover(); r != nil {
			// копирование или запись результата могли изменить буфер
			if snap.taken {
				f.restore(snap.text)
			}
			out = failed(fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()

	if f.onStart != nil {
		f.onStart()
	}
	return f.run(timing, strategies, &snap)
}

// snapshot - исходное содержимое буфера обмена текущего срабатывания.
type snapshot struct {
	text  string
	taken bool
}

func (f *Fixer) run(timing Timing, strategies []CaptureStrategy, snap *snapshot) Outcome {
	original, err := f.clip.Text()
	if err != nil {
		return failed(fmt.Errorf("snapshot clipboard: %w", err))
	}
	snap.text, snap.taken = original, true

	selected, ok, err := f.capture(original, strategies)
	if err != nil {
		return failed(err)
	}
	if !ok {
		return aborted(NoSelection)
	}

	fixed := f.convert(selected)
	if fixed == selected {
		// Копирование уже положило выделение в буфер - возвращаем снимок.
		if err := f.clip.SetText(original); err != nil {
			return Outcome{Kind: Failed, Err: fmt.Errorf("restore clipboard: %w", err), Selected: selected, Fixed: fixed}
		}
		return Outcome{Kind: Aborted, Reason: NoChange, Selected: selected, Fixed: fixed}
	}

	if err := f.replace(original, fixed, timing); err != nil {
		return Outcome{Kind: Failed, Err: err, Selected: selected, Fixed: fixed}
	}

	f.sleep(timing.Finish)
	return Outcome{Kind: Success, Selected: selected, Fixed: fixed}
}

func (f *Fixer) capture(original string, strategies []CaptureStrategy) (string, bool, error) {
	env := Env{Clipboard: f.clip, Sender: f.sender, Sleep: f.sleep}
	for i, s := range strategies {
		text, ok, err := s.Capture(env, original)
		if err != nil {
			return "", false, err
		}
		if ok {
			log.Debug("Выделение получено", "strategy", i, "runes", len([]rune(text)))
			return text, true, nil
		}
	}
	return "", false, nil
}

// replace вставляет fixed через буфер и возвращает в буфер original.
// После первой записи в буфер ошибка любого шага сопровождается попыткой
// восстановить original.
func (f *Fixer) replace(original, fixed string, timing Timing) error {
	if err := f.clip.SetText(fixed); err != nil {
		f.restore(original)
		return fmt.Errorf("write converted text: %w", err)
	}
	f.sleep(timing.PastePrepare)

	if err := f.sender.Send(input.Paste); err != nil {
		f.restore(original)
		return fmt.Errorf("paste: %w", err)
	}
	f.sleep(timing.PasteSettle)

	if err := f.clip.SetText(original); err != nil {
		return fmt.Errorf("restore clipboard: %w", err)
	}
	return nil
}

func (f *Fixer) restore(original string) {
	if err := f.clip.SetText(original); err != nil {
		log.Warn("Не удалось восстановить буфер обмена", "err", err)
	}
}
