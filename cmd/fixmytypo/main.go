// FixMyTypo - исправляет текст, набранный не в той раскладке
// (иврит/английский).
//
// Работает в системном трее. Выделите текст и дважды нажмите Caps Lock:
// выделение будет заменено версией в другой раскладке.
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"fixmytypo/internal/app"
	"fixmytypo/internal/config"
	"fixmytypo/internal/dialog"
	"fixmytypo/internal/hotkey"
	"fixmytypo/internal/i18n"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.TimeOnly)
	log.SetReportCaller(true)
	log.Info("FixMyTypo запускается", "version", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	cfg := config.New()
	if lvl, err := log.ParseLevel(cfg.LogLevel()); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warn("Неизвестный уровень логирования", "level", cfg.LogLevel())
	}

	application, err := app.New(cfg)
	if err != nil {
		fatal(err)
	}

	if err := application.Run(); err != nil {
		application.Close()
		fatal(err)
	}
}

func fatal(err error) {
	log.Error("Ошибка инициализации", "err", err)
	dialog.ShowError(i18n.T("app_name"), i18n.T("error_startup")+"\n\n"+err.Error())
	os.Exit(1)
}
