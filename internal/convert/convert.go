// Package convert переводит текст, набранный не в той раскладке.
package convert

import (
	"strings"

	"fixmytypo/internal/layout"
)

// Decision - результат подсчёта совпадений, определяющий направление.
type Decision struct {
	// EnglishHits - число символов, являющихся ключами таблицы en→he.
	EnglishHits int
	// HebrewHits - число символов, являющихся ключами таблицы he→en.
	HebrewHits int
	// Direction - выбранная таблица.
	Direction layout.Map
}

// Engine выполняет конвертацию по таблице раскладок.
type Engine struct {
	table *layout.Table
}

// New создаёт Engine. nil означает таблицу по умолчанию.
func New(table *layout.Table) *Engine {
	if table == nil {
		table = layout.Default()
	}
	return &Engine{table: table}
}

var defaultEngine = New(nil)

// Convert конвертирует text движком по умолчанию.
func Convert(text string) string {
	return defaultEngine.Convert(text)
}

// Decide считает совпадения с обеими таблицами и выбирает направление.
// При равенстве выигрывает en→he: нейтральный текст (цифры, пунктуация)
// всегда даёт ничью.
func (e *Engine) Decide(text string) Decision {
	var d Decision
	for _, r := range text {
		if e.table.Has(layout.ToHebrew, r) {
			d.EnglishHits++
		}
		if e.table.Has(layout.ToEnglish, r) {
			d.HebrewHits++
		}
	}
	d.Direction = layout.ToHebrew
	if d.EnglishHits < d.HebrewHits {
		d.Direction = layout.ToEnglish
	}
	return d
}

// Convert применяет выбранную таблицу к каждому символу. Символы, которых
// нет в таблице, остаются без изменений. Число символов не меняется.
func (e *Engine) Convert(text string) string {
	return e.Apply(e.Decide(text).Direction, text)
}

// Apply применяет таблицу m к каждому символу text.
func (e *Engine) Apply(m layout.Map, text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if to, ok := e.table.Lookup(m, r); ok {
			b.WriteRune(to)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
