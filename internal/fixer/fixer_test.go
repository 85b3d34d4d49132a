package fixer

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmytypo/internal/input"
)

// fakeClipboard - буфер обмена в памяти с историей записей.
type fakeClipboard struct {
	mu      sync.Mutex
	text    string
	writes  []string
	readErr error
	// writeErrAt - номер записи (с 1), которая завершится ошибкой.
	writeErrAt int
}

func (c *fakeClipboard) Text() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil {
		return "", c.readErr
	}
	return c.text, nil
}

func (c *fakeClipboard) SetText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, text)
	if c.writeErrAt == len(c.writes) {
		return errors.New("clipboard locked")
	}
	c.text = text
	return nil
}

func (c *fakeClipboard) get() (string, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, append([]string(nil), c.writes...)
}

// fakeApp имитирует активное приложение: на копирование кладёт выделение
// в буфер, на вставку запоминает содержимое буфера.
type fakeApp struct {
	mu        sync.Mutex
	clip      *fakeClipboard
	selection string
	// copyWorks - какие сочетания копирования приложение поддерживает.
	copyWorks map[input.Combo]bool
	sent      []input.Combo
	pasted    []string
	sendErr   map[input.Combo]error
	panicOn   *input.Combo
}

func newFakeApp(clip *fakeClipboard, selection string) *fakeApp {
	return &fakeApp{
		clip:      clip,
		selection: selection,
		copyWorks: map[input.Combo]bool{input.Copy: true, input.CopyAlt: true},
		sendErr:   map[input.Combo]error{},
	}
}

func (a *fakeApp) Send(c input.Combo) error {
	a.mu.Lock()
	a.sent = append(a.sent, c)
	err := a.sendErr[c]
	panicOn := a.panicOn
	a.mu.Unlock()

	if panicOn != nil && *panicOn == c {
		panic("synthetic input crashed")
	}
	if err != nil {
		return err
	}

	switch c {
	case input.Copy, input.CopyAlt:
		if a.copyWorks[c] && a.selection != "" {
			_ = a.clip.SetText(a.selection)
		}
	case input.Paste:
		text, _ := a.clip.Text()
		a.mu.Lock()
		a.pasted = append(a.pasted, text)
		a.mu.Unlock()
	}
	return nil
}

func (a *fakeApp) sentCombos() []input.Combo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]input.Combo(nil), a.sent...)
}

func (a *fakeApp) pastes() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.pasted...)
}

// fakeClock - ручные часы; sleep только записывает паузы.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
}

type fixture struct {
	clip    *fakeClipboard
	app     *fakeApp
	clock   *fakeClock
	enabled *atomic.Bool
	fixer   *Fixer
}

func newFixture(clipText, selection string) *fixture {
	clip := &fakeClipboard{text: clipText}
	app := newFakeApp(clip, selection)
	clock := newFakeClock()
	enabled := &atomic.Bool{}
	enabled.Store(true)

	f := New(Options{
		Clipboard: clip,
		Sender:    app,
		Enabled:   enabled,
		Now:       clock.Now,
		Sleep:     clock.Sleep,
	})
	return &fixture{clip: clip, app: app, clock: clock, enabled: enabled, fixer: f}
}

func TestActivateReplacesSelection(t *testing.T) {
	fx := newFixture("original clipboard", "יקךךם")

	out := fx.fixer.Activate()

	require.Equal(t, Success, out.Kind, out.String())
	assert.Equal(t, "יקךךם", out.Selected)
	assert.Equal(t, "hello", out.Fixed)

	assert.Equal(t, []string{"hello"}, fx.app.pastes())
	assert.Equal(t, []input.Combo{input.Copy, input.Paste}, fx.app.sentCombos())

	text, writes := fx.clip.get()
	assert.Equal(t, "original clipboard", text)
	// копирование приложением, запись результата, восстановление
	assert.Equal(t, []string{"יקךךם", "hello", "original clipboard"}, writes)

	assert.Equal(t, []time.Duration{
		120 * time.Millisecond,
		20 * time.Millisecond,
		80 * time.Millisecond,
		60 * time.Millisecond,
	}, fx.clock.sleeps)
	assert.False(t, fx.fixer.Running())
}

func TestActivateEnglishToHebrew(t *testing.T) {
	fx := newFixture("", "vbho ug,")

	out := fx.fixer.Activate()

	require.Equal(t, Success, out.Kind, out.String())
	assert.Equal(t, []string{"הנים ועת"}, fx.app.pastes())
	text, _ := fx.clip.get()
	assert.Equal(t, "", text)
}

func TestActivateNothingSelected(t *testing.T) {
	fx := newFixture("keep me", "")

	out := fx.fixer.Activate()

	assert.Equal(t, Aborted, out.Kind)
	assert.Equal(t, NoSelection, out.Reason)

	text, writes := fx.clip.get()
	assert.Equal(t, "keep me", text)
	assert.Empty(t, writes, "clipboard must not be written")
	assert.Empty(t, fx.app.pastes())
	assert.Equal(t, []input.Combo{input.Copy, input.CopyAlt}, fx.app.sentCombos())
}

func TestActivateSelectionEqualsClipboard(t *testing.T) {
	fx := newFixture("same", "same")

	out := fx.fixer.Activate()

	assert.Equal(t, NoSelection, out.Reason)
	_, writes := fx.clip.get()
	assert.Equal(t, []string{"same", "same"}, writes, "only the application's own copies")
	assert.Empty(t, fx.app.pastes())
}

func TestActivateFallsBackToSecondStrategy(t *testing.T) {
	fx := newFixture("orig", "יקךךם")
	fx.app.copyWorks[input.Copy] = false

	out := fx.fixer.Activate()

	require.Equal(t, Success, out.Kind, out.String())
	assert.Equal(t, []input.Combo{input.Copy, input.CopyAlt, input.Paste}, fx.app.sentCombos())
	assert.Equal(t, []string{"hello"}, fx.app.pastes())
	text, _ := fx.clip.get()
	assert.Equal(t, "orig", text)
}

func TestActivateNoChange(t *testing.T) {
	fx := newFixture("orig", "2024-01-01")

	out := fx.fixer.Activate()

	assert.Equal(t, Aborted, out.Kind)
	assert.Equal(t, NoChange, out.Reason)
	assert.Empty(t, fx.app.pastes())
	text, _ := fx.clip.get()
	assert.Equal(t, "orig", text)
}

func TestActivateDebounce(t *testing.T) {
	fx := newFixture("orig", "יקךךם")

	first := fx.fixer.Activate()
	fx.clock.Advance(100 * time.Millisecond)
	second := fx.fixer.Activate()

	assert.Equal(t, Success, first.Kind)
	assert.Equal(t, Aborted, second.Kind)
	assert.Equal(t, Debounced, second.Reason)
	assert.Len(t, fx.app.pastes(), 1, "body must run exactly once")

	fx.clock.Advance(400 * time.Millisecond)
	third := fx.fixer.Activate()
	assert.Equal(t, Success, third.Kind, third.String())
	assert.Len(t, fx.app.pastes(), 2)
}

func TestActivateDisabled(t *testing.T) {
	fx := newFixture("orig", "יקךךם")
	fx.enabled.Store(false)

	out := fx.fixer.Activate()

	assert.Equal(t, Disabled, out.Reason)
	assert.Empty(t, fx.app.sentCombos())

	// выключенное срабатывание не сдвигает debounce
	fx.enabled.Store(true)
	assert.Equal(t, Success, fx.fixer.Activate().Kind)
}

func TestActivateBusy(t *testing.T) {
	clip := &fakeClipboard{text: "orig"}
	app := newFakeApp(clip, "יקךךם")

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	f := New(Options{
		Clipboard: clip,
		Sender:    app,
		Sleep: func(time.Duration) {
			once.Do(func() {
				close(entered)
				<-release
			})
		},
	})

	done := make(chan Outcome)
	go func() { done <- f.Activate() }()

	<-entered
	assert.True(t, f.Running())
	second := f.Activate()
	assert.Equal(t, Busy, second.Reason)

	close(release)
	first := <-done
	assert.Equal(t, Success, first.Kind, first.String())
	assert.False(t, f.Running())
	assert.Len(t, app.pastes(), 1)
}

func TestActivateConcurrentEntryPoints(t *testing.T) {
	fx := newFixture("orig", "יקךךם")

	var wg sync.WaitGroup
	results := make([]Outcome, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = fx.fixer.Activate()
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, r := range results {
		if r.Kind == Success {
			successes++
		} else {
			assert.Contains(t, []Reason{Busy, Debounced}, r.Reason)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, fx.app.pastes(), 1)
}

func TestActivateClipboardReadFailure(t *testing.T) {
	fx := newFixture("orig", "יקךךם")
	fx.clip.readErr = errors.New("clipboard busy")

	out := fx.fixer.Activate()

	assert.Equal(t, Failed, out.Kind)
	assert.ErrorContains(t, out.Err, "clipboard busy")
	assert.Empty(t, fx.app.sentCombos())
	assert.False(t, fx.fixer.Running())
}

func TestActivateCopyFailure(t *testing.T) {
	fx := newFixture("orig", "יקךךם")
	fx.app.sendErr[input.Copy] = errors.New("no uinput")

	out := fx.fixer.Activate()

	assert.Equal(t, Failed, out.Kind)
	assert.ErrorContains(t, out.Err, "no uinput")
	_, writes := fx.clip.get()
	assert.Empty(t, writes)
	assert.False(t, fx.fixer.Running())
}

func TestActivatePasteFailureRestoresClipboard(t *testing.T) {
	fx := newFixture("orig", "יקךךם")
	fx.app.sendErr[input.Paste] = errors.New("window closed")

	out := fx.fixer.Activate()

	assert.Equal(t, Failed, out.Kind)
	assert.Equal(t, "hello", out.Fixed)
	text, _ := fx.clip.get()
	assert.Equal(t, "orig", text)
	assert.False(t, fx.fixer.Running())
}

func TestActivateWriteFailure(t *testing.T) {
	fx := newFixture("orig", "יקךךם")
	// 1 - копирование приложением, 2 - запись результата
	fx.clip.writeErrAt = 2

	out := fx.fixer.Activate()

	assert.Equal(t, Failed, out.Kind)
	assert.Empty(t, fx.app.pastes())
	text, _ := fx.clip.get()
	assert.Equal(t, "orig", text)
}

func TestActivatePanicContained(t *testing.T) {
	fx := newFixture("orig", "יקךךם")
	paste := input.Paste
	fx.app.panicOn = &paste

	var out Outcome
	require.NotPanics(t, func() { out = fx.fixer.Activate() })

	assert.Equal(t, Failed, out.Kind)
	assert.ErrorIs(t, out.Err, ErrPanic)
	assert.False(t, fx.fixer.Running())

	// результат уже был записан в буфер - исходный текст возвращён
	text, writes := fx.clip.get()
	assert.Equal(t, "orig", text)
	assert.Equal(t, []string{"יקךךם", "hello", "orig"}, writes)

	// следующее срабатывание после debounce снова работает
	fx.app.panicOn = nil
	fx.clock.Advance(time.Second)
	assert.Equal(t, Success, fx.fixer.Activate().Kind)
}

func TestActivatePanicInConvertRestoresClipboard(t *testing.T) {
	clip := &fakeClipboard{text: "orig"}
	clock := newFakeClock()

	f := New(Options{
		Clipboard: clip,
		Sender:    newFakeApp(clip, "יקךךם"),
		Convert:   func(string) string { panic("bad table") },
		Now:       clock.Now,
		Sleep:     clock.Sleep,
	})

	out := f.Activate()

	assert.Equal(t, Failed, out.Kind)
	assert.ErrorIs(t, out.Err, ErrPanic)
	text, writes := clip.get()
	assert.Equal(t, "orig", text, "selection copied by the application must not stay in the clipboard")
	assert.Equal(t, []string{"יקךךם", "orig"}, writes)
}

func TestActivatePanicBeforeSnapshotLeavesClipboard(t *testing.T) {
	clip := &fakeClipboard{text: "orig"}
	clock := newFakeClock()

	f := New(Options{
		Clipboard: clip,
		Sender:    newFakeApp(clip, "יקךךם"),
		OnStart:   func() { panic("listener crashed") },
		Now:       clock.Now,
		Sleep:     clock.Sleep,
	})

	out := f.Activate()

	assert.ErrorIs(t, out.Err, ErrPanic)
	_, writes := clip.get()
	assert.Empty(t, writes)
}

func TestOnStartOnlyForAcceptedActivations(t *testing.T) {
	clip := &fakeClipboard{text: "orig"}
	clock := newFakeClock()
	enabled := &atomic.Bool{}
	var started atomic.Int32

	f := New(Options{
		Clipboard: clip,
		Sender:    newFakeApp(clip, "יקךךם"),
		Enabled:   enabled,
		OnStart:   func() { started.Add(1) },
		Now:       clock.Now,
		Sleep:     clock.Sleep,
	})

	assert.Equal(t, Disabled, f.Activate().Reason)
	assert.Equal(t, int32(0), started.Load())

	enabled.Store(true)
	require.Equal(t, Success, f.Activate().Kind)
	assert.Equal(t, int32(1), started.Load())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, Debounced, f.Activate().Reason)
	assert.Equal(t, int32(1), started.Load())
}

func TestCustomConvertAndStrategies(t *testing.T) {
	clip := &fakeClipboard{text: "orig"}
	clock := newFakeClock()

	f := New(Options{
		Clipboard: clip,
		Sender:    newFakeApp(clip, ""),
		Convert:   func(s string) string { return s + "!" },
		Strategies: []CaptureStrategy{
			strategyFunc(func(Env, string) (string, bool, error) { return "", false, nil }),
			strategyFunc(func(Env, string) (string, bool, error) { return "picked", true, nil }),
		},
		Now:   clock.Now,
		Sleep: clock.Sleep,
	})

	out := f.Activate()
	require.Equal(t, Success, out.Kind, out.String())
	assert.Equal(t, "picked", out.Selected)
	assert.Equal(t, "picked!", out.Fixed)
}

func TestSetTiming(t *testing.T) {
	fx := newFixture("orig", "יקךךם")

	timing := DefaultTiming()
	timing.Debounce = 50 * time.Millisecond
	timing.CopySettle = 10 * time.Millisecond
	fx.fixer.SetTiming(timing)
	assert.Equal(t, timing, fx.fixer.Timing())

	require.Equal(t, Success, fx.fixer.Activate().Kind)
	assert.Equal(t, 10*time.Millisecond, fx.clock.sleeps[0])

	fx.clock.Advance(60 * time.Millisecond)
	assert.Equal(t, Success, fx.fixer.Activate().Kind)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", Outcome{Kind: Success}.String())
	assert.Equal(t, "aborted: no selection", aborted(NoSelection).String())
	assert.Equal(t, "failed: boom", failed(errors.New("boom")).String())
}

type strategyFunc func(Env, string) (string, bool, error)

func (s strategyFunc) Capture(env Env, original string) (string, bool, error) {
	return s(env, original)
}
