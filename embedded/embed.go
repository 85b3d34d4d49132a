// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconOn - конвертация включена (зелёная).
//
//go:embed icon_on.png
var IconOn []byte

// IconOff - конвертация выключена (красная).
//
//go:embed icon_off.png
var IconOff []byte

// IconBusy - идёт конвертация (оранжевая).
//
//go:embed icon_busy.png
var IconBusy []byte
