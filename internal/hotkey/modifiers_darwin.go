//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"fixmytypo/internal/config"
)

var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCtrl:  hotkey.ModCtrl,
	config.ModShift: hotkey.ModShift,
	config.ModAlt:   hotkey.ModOption,
	config.ModSuper: hotkey.ModCmd,
}

// Символы как в меню macOS.
var modifierLabels = map[config.Modifier]string{
	config.ModCtrl:  "⌃",
	config.ModShift: "⇧",
	config.ModAlt:   "⌥",
	config.ModSuper: "⌘",
}

const labelSeparator = ""
