package fixer

import (
	"errors"
	"fmt"
)

// ErrPanic оборачивает панику, перехваченную внутри Activate.
var ErrPanic = errors.New("fixer: panic during replacement")

// Kind - итог одного срабатывания.
type Kind int

const (
	// Success - текст заменён, буфер обмена восстановлен.
	Success Kind = iota
	// Aborted - срабатывание отброшено без побочных эффектов.
	Aborted
	// Failed - ошибка ввода-вывода, срабатывание прервано.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Aborted:
		return "aborted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Reason - причина Aborted.
type Reason int

const (
	ReasonNone Reason = iota
	// Disabled - конвертация выключена пользователем.
	Disabled
	// Busy - предыдущее срабатывание ещё выполняется.
	Busy
	// Debounced - слишком рано после предыдущего срабатывания.
	Debounced
	// NoSelection - ни одна стратегия не получила выделенный текст.
	NoSelection
	// NoChange - конвертация не изменила текст.
	NoChange
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case Disabled:
		return "disabled"
	case Busy:
		return "busy"
	case Debounced:
		return "debounced"
	case NoSelection:
		return "no selection"
	case NoChange:
		return "no change"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Outcome - результат Activate.
type Outcome struct {
	Kind   Kind
	Reason Reason
	Err    error

	// Selected и Fixed заполнены, если выделение было получено.
	Selected string
	Fixed    string
}

func (o Outcome) String() string {
	switch o.Kind {
	case Aborted:
		return "aborted: " + o.Reason.String()
	case Failed:
		return fmt.Sprintf("failed: %v", o.Err)
	default:
		return o.Kind.String()
	}
}

func aborted(r Reason) Outcome {
	return Outcome{Kind: Aborted, Reason: r}
}

func failed(err error) Outcome {
	return Outcome{Kind: Failed, Err: err}
}
