// Package clipboard предоставляет текстовый доступ к системному буферу обмена.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard читает и записывает текст буфера обмена.
type Clipboard interface {
	// Text возвращает текущий текст буфера.
	Text() (string, error)
	// SetText заменяет содержимое буфера текстом.
	SetText(text string) error
}

// System - буфер обмена ОС (xclip/xsel/wl-clipboard на Linux,
// pbcopy на macOS, WinAPI на Windows).
type System struct{}

// New создаёт системный буфер обмена. Возвращает ошибку, если на
// платформе нет доступной утилиты буфера.
func New() (*System, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("clipboard: no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return &System{}, nil
}

// Text возвращает текущий текст буфера.
func (System) Text() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

// SetText заменяет содержимое буфера текстом.
func (System) SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
