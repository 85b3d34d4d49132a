// Package input отправляет в активное окно синтетические сочетания клавиш
// (копирование, вставка).
package input

import (
	"errors"
	"strings"
)

// ErrUnsupported возвращается, если на платформе нет способа отправить
// сочетание клавиш.
var ErrUnsupported = errors.New("input: sending key combinations is not supported")

// Key - основная клавиша сочетания.
type Key int

const (
	KeyC Key = iota
	KeyV
	KeyInsert
)

var keyNames = map[Key]string{
	KeyC:      "c",
	KeyV:      "v",
	KeyInsert: "Insert",
}

// Combo - сочетание модификаторов и одной клавиши.
type Combo struct {
	Ctrl  bool
	Shift bool
	Key   Key
}

// Стандартные сочетания буфера обмена.
var (
	Copy    = Combo{Ctrl: true, Key: KeyC}
	CopyAlt = Combo{Ctrl: true, Key: KeyInsert}
	Paste   = Combo{Ctrl: true, Key: KeyV}
)

// String возвращает сочетание в формате xdotool ("ctrl+c").
func (c Combo) String() string {
	parts := make([]string, 0, 3)
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	parts = append(parts, keyNames[c.Key])
	return strings.Join(parts, "+")
}

// Sender отправляет сочетание клавиш в активное окно.
type Sender interface {
	// Send нажимает и отпускает сочетание.
	Send(c Combo) error
}

// New создаёт платформо-специфичный Sender.
func New() (Sender, error) {
	return newSender()
}

// xdotoolArgs - аргументы `xdotool key` для сочетания.
func xdotoolArgs(c Combo) []string {
	return []string{"key", "--clearmodifiers", c.String()}
}

// wtypeArgs - аргументы wtype: модификаторы зажимаются -M и отпускаются -m.
func wtypeArgs(c Combo) []string {
	var mods []string
	if c.Ctrl {
		mods = append(mods, "ctrl")
	}
	if c.Shift {
		mods = append(mods, "shift")
	}

	args := make([]string, 0, len(mods)*4+2)
	for _, m := range mods {
		args = append(args, "-M", m)
	}
	args = append(args, "-k", keyNames[c.Key])
	for i := len(mods) - 1; i >= 0; i-- {
		args = append(args, "-m", mods[i])
	}
	return args
}
