// Package tray предоставляет системный трей с меню.
package tray

import (
	"sync"

	"github.com/getlantern/systray"

	"fixmytypo/embedded"
	"fixmytypo/internal/i18n"
)

// State представляет состояние приложения для отображения в трее.
type State int

const (
	StateOn State = iota
	StateOff
	StateBusy
)

// view возвращает иконку и ключ подписи для состояния.
func (s State) view() ([]byte, string) {
	switch s {
	case StateOff:
		return embedded.IconOff, "tray_off"
	case StateBusy:
		return embedded.IconBusy, "tray_busy"
	default:
		return embedded.IconOn, "tray_on"
	}
}

// Callbacks содержит обработчики событий меню.
// Toggle-обработчики возвращают новое значение флажка.
type Callbacks struct {
	OnEnabledToggle       func() bool
	OnNotificationsToggle func() bool
	OnTriggerClick        func()
	OnShowWindow          func()
	OnQuit                func()
}

// Options - начальное состояние флажков меню.
type Options struct {
	Enabled       bool
	Notifications bool
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	opts      Options

	mu    sync.Mutex
	state State

	status     *systray.MenuItem
	enabledOn  *systray.MenuItem
	notifyOn   *systray.MenuItem
	triggerBtn *systray.MenuItem
	windowBtn  *systray.MenuItem
	quitBtn    *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks, opts Options) *Tray {
	state := StateOn
	if !opts.Enabled {
		state = StateOff
	}
	return &Tray{
		callbacks: callbacks,
		opts:      opts,
		state:     state,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	t.mu.Lock()
	icon, title := t.state.view()
	t.mu.Unlock()

	systray.SetIcon(icon)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(i18n.T(title), "")
	t.status.Disable()

	systray.AddSeparator()

	t.enabledOn = systray.AddMenuItemCheckbox(i18n.T("tray_enabled"), i18n.T("tray_enabled_hint"), t.opts.Enabled)
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.opts.Notifications)
	t.triggerBtn = systray.AddMenuItem(i18n.T("tray_trigger"), i18n.T("tray_trigger_hint"))
	t.windowBtn = systray.AddMenuItem(i18n.T("tray_show_window"), "")

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.enabledOn.ClickedCh:
			if t.callbacks.OnEnabledToggle != nil {
				t.SetEnabled(t.callbacks.OnEnabledToggle())
			}

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				setChecked(t.notifyOn, t.callbacks.OnNotificationsToggle())
			}

		// Диалог блокирует, не задерживаем остальные пункты меню
		case <-t.triggerBtn.ClickedCh:
			if t.callbacks.OnTriggerClick != nil {
				go t.callbacks.OnTriggerClick()
			}

		case <-t.windowBtn.ClickedCh:
			if t.callbacks.OnShowWindow != nil {
				t.callbacks.OnShowWindow()
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
			return
		}
	}
}

func setChecked(item *systray.MenuItem, checked bool) {
	if item == nil {
		return
	}
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// SetEnabled синхронизирует флажок "Включено" и иконку, когда флаг
// переключили не из меню (например, кнопкой в окне).
func (t *Tray) SetEnabled(enabled bool) {
	setChecked(t.enabledOn, enabled)
	if enabled {
		t.SetState(StateOn)
	} else {
		t.SetState(StateOff)
	}
}

// SetState устанавливает состояние приложения и обновляет иконку.
func (t *Tray) SetState(state State) {
	t.mu.Lock()
	t.state = state
	t.mu.Unlock()

	if t.status == nil {
		return // трей ещё не готов, onReady применит состояние
	}
	icon, title := state.view()
	systray.SetIcon(icon)
	systray.SetTooltip(i18n.T("app_name") + " - " + i18n.T(title))
	t.status.SetTitle(i18n.T(title))
}

// State возвращает текущее состояние.
func (t *Tray) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}
