package fixer

import (
	"fmt"
	"time"

	"fixmytypo/internal/clipboard"
	"fixmytypo/internal/input"
)

// Env - сервисы, доступные стратегии захвата.
type Env struct {
	Clipboard clipboard.Clipboard
	Sender    input.Sender
	Sleep     func(time.Duration)
}

// CaptureStrategy пытается получить выделенный текст. ok == false без
// ошибки означает, что выделения нет или приложение не отдало его.
type CaptureStrategy interface {
	Capture(env Env, original string) (text string, ok bool, err error)
}

// ComboCapture отправляет сочетание копирования и читает буфер после
// паузы. Текст принят, если он не пуст и отличается от original.
type ComboCapture struct {
	Combo  input.Combo
	Settle time.Duration
}

// Capture реализует CaptureStrategy.
func (c ComboCapture) Capture(env Env, original string) (string, bool, error) {
	if err := env.Sender.Send(c.Combo); err != nil {
		return "", false, fmt.Errorf("capture %s: %w", c.Combo, err)
	}
	env.Sleep(c.Settle)

	text, err := env.Clipboard.Text()
	if err != nil {
		return "", false, fmt.Errorf("capture %s: %w", c.Combo, err)
	}
	if text == "" || text == original {
		return "", false, nil
	}
	return text, true, nil
}

// DefaultStrategies - Ctrl+C, затем Ctrl+Insert.
func DefaultStrategies(settle time.Duration) []CaptureStrategy {
	return []CaptureStrategy{
		ComboCapture{Combo: input.Copy, Settle: settle},
		ComboCapture{Combo: input.CopyAlt, Settle: settle},
	}
}
