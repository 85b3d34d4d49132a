package keyboard

import (
	"fmt"
	"sort"
	"unicode"
)

// keyNames - виртуальные коды libuiohook (поле Keycode у gohook),
// одинаковые на всех платформах.
var keyNames = map[uint16]string{
	0x0001: "esc",
	0x000E: "backspace",
	0x000F: "tab",
	0x001C: "enter",
	0x0029: "`",
	0x0039: "space",
	0x003A: "caps lock",
	0x0045: "num lock",
	0x0046: "scroll lock",
	0x0E45: "pause",
	0x0E37: "print screen",

	0x002A: "shift",
	0x0036: "right shift",
	0x001D: "ctrl",
	0x0E1D: "right ctrl",
	0x0038: "alt",
	0x0E38: "right alt",
	0x0E5B: "left windows",
	0x0E5C: "right windows",
	0x0E5D: "menu",

	0x0E52: "insert",
	0x0E53: "delete",
	0x0E47: "home",
	0x0E4F: "end",
	0x0E49: "page up",
	0x0E51: "page down",

	0x003B: "f1",
	0x003C: "f2",
	0x003D: "f3",
	0x003E: "f4",
	0x003F: "f5",
	0x0040: "f6",
	0x0041: "f7",
	0x0042: "f8",
	0x0043: "f9",
	0x0044: "f10",
	0x0057: "f11",
	0x0058: "f12",
}

// KeyName возвращает имя клавиши по коду. Для неизвестных кодов
// используется напечатанный символ, если он есть.
func KeyName(code uint16, char rune) string {
	if name, ok := keyNames[code]; ok {
		return name
	}
	if char != 0 && char < 0xFFFF && unicode.IsGraphic(char) {
		return string(unicode.ToLower(char))
	}
	return fmt.Sprintf("keycode %#04x", code)
}

// TriggerCandidates - клавиши, которые разумно использовать как триггер
// двойного нажатия.
func TriggerCandidates() []string {
	names := []string{
		"caps lock", "scroll lock", "pause", "insert",
		"right ctrl", "right alt", "right shift", "menu",
	}
	fkeys := make([]string, 0, 12)
	for code, name := range keyNames {
		if (code >= 0x003B && code <= 0x0044) || code == 0x0057 || code == 0x0058 {
			fkeys = append(fkeys, name)
		}
	}
	sort.Slice(fkeys, func(i, j int) bool {
		if len(fkeys[i]) != len(fkeys[j]) {
			return len(fkeys[i]) < len(fkeys[j])
		}
		return fkeys[i] < fkeys[j]
	})
	return append(names, fkeys...)
}
