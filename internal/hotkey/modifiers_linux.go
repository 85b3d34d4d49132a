//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"fixmytypo/internal/config"
)

// На X11 Alt и Super - это Mod1 и Mod4.
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCtrl:  hotkey.ModCtrl,
	config.ModShift: hotkey.ModShift,
	config.ModAlt:   hotkey.Mod1,
	config.ModSuper: hotkey.Mod4,
}

var modifierLabels = map[config.Modifier]string{
	config.ModCtrl:  "Ctrl",
	config.ModShift: "Shift",
	config.ModAlt:   "Alt",
	config.ModSuper: "Super",
}

const labelSeparator = "+"
