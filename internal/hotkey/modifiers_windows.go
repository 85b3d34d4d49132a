//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"fixmytypo/internal/config"
)

var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCtrl:  hotkey.ModCtrl,
	config.ModShift: hotkey.ModShift,
	config.ModAlt:   hotkey.ModAlt,
	config.ModSuper: hotkey.ModWin,
}

var modifierLabels = map[config.Modifier]string{
	config.ModCtrl:  "Ctrl",
	config.ModShift: "Shift",
	config.ModAlt:   "Alt",
	config.ModSuper: "Win",
}

const labelSeparator = "+"
