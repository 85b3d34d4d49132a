// Package dialog предоставляет GUI диалоги для настройки приложения.
package dialog

import (
	"github.com/ncruces/zenity"

	"fixmytypo/internal/i18n"
)

// ErrCanceled возвращается, если пользователь закрыл диалог.
var ErrCanceled = zenity.ErrCanceled

// SelectTriggerKey открывает диалог выбора клавиши двойного нажатия.
// Возвращает выбранное имя клавиши или ErrCanceled.
func SelectTriggerKey(current string, candidates []string) (string, error) {
	selected, err := zenity.List(
		i18n.T("dialog_trigger_prompt"),
		triggerOptions(current, candidates),
		zenity.Title(i18n.T("dialog_trigger_title")),
		zenity.DefaultItems(current),
		zenity.DisallowEmpty(),
	)
	if err != nil {
		return current, err // Пользователь отменил
	}
	if selected == "" {
		return current, ErrCanceled
	}
	return selected, nil
}

// triggerOptions ставит текущую клавишу первой, если её нет в списке
// (например, задана в config.json).
func triggerOptions(current string, candidates []string) []string {
	for _, c := range candidates {
		if c == current {
			return candidates
		}
	}
	if current == "" {
		return candidates
	}
	return append([]string{current}, candidates...)
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	_ = zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	_ = zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
}
