// Package status provides the small ON/OFF window shown while the app runs.
package status

import (
	"strings"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fixmytypo/internal/i18n"
)

// Callbacks are invoked from the window's event loop.
// OnToggle returns the new enabled state.
type Callbacks struct {
	OnToggle func() bool
	OnQuit   func()
}

// Window is the status window.
type Window struct {
	callbacks Callbacks
	theme     *material.Theme

	mu         sync.Mutex
	window     *app.Window
	running    bool
	stopCh     chan struct{}
	doneCh     chan struct{}
	enabled    bool
	triggerKey string
	status     string

	toggleBtn widget.Clickable
	exitBtn   widget.Clickable
}

// New creates a status window. It is not shown until Show is called.
func New(callbacks Callbacks, enabled bool, triggerKey string) *Window {
	w := &Window{
		callbacks:  callbacks,
		theme:      material.NewTheme(),
		enabled:    enabled,
		triggerKey: triggerKey,
	}
	w.status = defaultStatus(enabled)
	return w
}

// Show displays the window. Calling Show on a visible window is a no-op.
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop(w.stopCh, w.doneCh)
}

// Hide closes the window.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// SetEnabled updates the toggle button.
func (w *Window) SetEnabled(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.enabled = enabled
	w.status = defaultStatus(enabled)
}

// SetTriggerKey updates the hint line.
func (w *Window) SetTriggerKey(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.triggerKey = key
}

// SetStatus updates the status line.
func (w *Window) SetStatus(status string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
}

type snapshot struct {
	enabled bool
	hint    string
	status  string
}

func (w *Window) snapshot() snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return snapshot{
		enabled: w.enabled,
		hint:    Hint(w.triggerKey),
		status:  w.status,
	}
}

func (w *Window) runEventLoop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	win := new(app.Window)
	win.Option(
		app.Title(i18n.T("app_name")),
		app.Size(unit.Dp(320), unit.Dp(220)),
		app.MinSize(unit.Dp(320), unit.Dp(220)),
		app.MaxSize(unit.Dp(320), unit.Dp(220)),
	)
	w.mu.Lock()
	w.window = win
	w.mu.Unlock()

	var ops op.Ops

	// Invalidation goroutine
	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				win.Perform(system.ActionClose)
				return
			case <-ticker.C:
				win.Invalidate()
			}
		}
	}()

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			w.destroyed(stopCh)
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.handleEvents(gtx)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// destroyed handles the window being closed by the user: the app keeps
// running in the tray.
func (w *Window) destroyed(stopCh chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopCh == stopCh {
		close(stopCh)
		w.stopCh = nil
		w.running = false
	}
	w.window = nil
}

func (w *Window) handleEvents(gtx layout.Context) {
	if w.toggleBtn.Clicked(gtx) && w.callbacks.OnToggle != nil {
		w.SetEnabled(w.callbacks.OnToggle())
	}
	// OnQuit closes this window and waits for the loop to finish
	if w.exitBtn.Clicked(gtx) && w.callbacks.OnQuit != nil {
		go w.callbacks.OnQuit()
	}
}

// Hint returns the instruction line for the given trigger key,
// e.g. "Double-Caps Lock to convert".
func Hint(triggerKey string) string {
	return i18n.Tf("window_hint", DisplayKey(triggerKey))
}

// DisplayKey title-cases a key name for display: "caps lock" -> "Caps Lock".
func DisplayKey(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return cases.Title(language.English).String(name)
}

func defaultStatus(enabled bool) string {
	if enabled {
		return i18n.T("window_ready")
	}
	return i18n.T("window_paused")
}
