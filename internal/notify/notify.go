// Package notify предоставляет системные уведомления.
package notify

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"

	"fixmytypo/internal/i18n"
)

const (
	appName  = "FixMyTypo"
	maxRunes = 100
)

// send подменяется в тестах.
var send = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled atomic.Bool
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	n := &Notifier{}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// IsEnabled возвращает true если уведомления включены.
func (n *Notifier) IsEnabled() bool {
	return n.enabled.Load()
}

// Ready показывает уведомление о запуске.
func (n *Notifier) Ready() {
	n.notify("", i18n.T("notify_ready"))
}

// Toggled показывает уведомление о включении или выключении конвертации.
func (n *Notifier) Toggled(on bool) {
	if on {
		n.notify("", i18n.T("notify_enabled"))
		return
	}
	n.notify("", i18n.T("notify_disabled"))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), truncate(msg))
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled.Load() {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = send(appName+": "+title, message)
	} else {
		_ = send(appName, message)
	}
}

// truncate обрезает по рунам: в тексте может быть иврит.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes]) + "..."
}
