// Package app связывает компоненты приложения: хук клавиатуры, детектор
// двойного нажатия, горячую клавишу, Fixer, трей и окно состояния.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"fixmytypo/internal/clipboard"
	"fixmytypo/internal/config"
	"fixmytypo/internal/convert"
	"fixmytypo/internal/dialog"
	"fixmytypo/internal/fixer"
	"fixmytypo/internal/hotkey"
	"fixmytypo/internal/i18n"
	"fixmytypo/internal/input"
	"fixmytypo/internal/keyboard"
	"fixmytypo/internal/notify"
	"fixmytypo/internal/status"
	"fixmytypo/internal/tray"
	"fixmytypo/internal/trigger"
)

// App представляет главное приложение.
type App struct {
	config   *config.Config
	enabled  atomic.Bool
	engine   *convert.Engine
	fixer    *fixer.Fixer
	keyboard *keyboard.Source
	detector *trigger.Detector
	hotkey   *hotkey.Handler
	notifier *notify.Notifier
	tray     *tray.Tray
	window   *status.Window

	mu        sync.Mutex
	cancel    context.CancelFunc
	watcher   *config.Watcher
	closeOnce sync.Once
}

// New создаёт приложение. Ошибка означает, что на этой системе нельзя
// работать с буфером обмена или отправлять нажатия.
func New(cfg *config.Config) (*App, error) {
	// Инициализируем язык интерфейса из конфига
	i18n.SetLanguage(i18n.Language(cfg.UILanguage()))

	clip, err := clipboard.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("error_clipboard"), err)
	}

	sender, err := input.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("error_input"), err)
	}

	timing := cfg.Timing()

	a := &App{
		config:   cfg,
		engine:   convert.New(nil),
		keyboard: keyboard.New(),
		detector: trigger.New(cfg.TriggerKey(), timing.ActivationWindow()),
		notifier: notify.New(cfg.NotificationsEnabled()),
	}
	a.enabled.Store(true)

	a.fixer = fixer.New(fixer.Options{
		Clipboard: clip,
		Sender:    sender,
		Enabled:   &a.enabled,
		Convert:   a.engine.Convert,
		Timing:    fixerTiming(timing),
		OnStart: func() {
			a.tray.SetState(tray.StateBusy)
		},
	})

	a.hotkey = hotkey.New(func() { a.activate("hotkey") })

	a.tray = tray.New(tray.Callbacks{
		OnEnabledToggle: a.toggle,
		OnNotificationsToggle: func() bool {
			enabled := a.config.ToggleNotifications()
			a.notifier.SetEnabled(enabled)
			return enabled
		},
		OnTriggerClick: a.selectTriggerKey,
		OnShowWindow: func() {
			a.window.Show()
		},
		OnQuit: a.Close,
	}, tray.Options{
		Enabled:       true,
		Notifications: cfg.NotificationsEnabled(),
	})

	a.window = status.New(status.Callbacks{
		OnToggle: a.toggle,
		OnQuit: func() {
			a.Close()
			a.tray.Quit()
		},
	}, true, cfg.TriggerKey())

	cfg.OnChange(a.applyConfig)

	return a, nil
}

// Run устанавливает хук клавиатуры и запускает трей. Блокирует до выхода.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())

	events, err := a.keyboard.Start(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("%s: %w", i18n.T("error_keyboard"), err)
	}

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	// Хук не должен ждать конвертацию: она сама шлёт нажатия
	go a.detector.Run(ctx, events, func() {
		go a.activate("double-press")
	})

	if a.config.Path() != "" {
		w, err := a.config.Watch()
		if err != nil {
			log.Warn("Наблюдение за конфигурацией недоступно", "err", err)
		} else {
			a.mu.Lock()
			a.watcher = w
			a.mu.Unlock()
		}
	}

	log.Info("Приложение запущено", "trigger", a.detector.Key(), "hotkey", hotkey.Describe(a.config.Hotkey()))

	a.tray.Run(func() {
		// Регистрируем горячую клавишу после инициализации трея
		if err := a.hotkey.Register(a.config.Hotkey()); err != nil {
			log.Error("Ошибка регистрации горячей клавиши", "err", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}

		if a.config.ShowWindow() {
			a.window.Show()
		}
		a.notifier.Ready()
	})
	return nil
}

// activate выполняет одно срабатывание и показывает его результат.
// Иконка "занято" ставится из OnStart Fixer, только когда работа началась.
func (a *App) activate(source string) {
	out := a.fixer.Activate()
	a.report(source, out)

	if startedWork(out) {
		a.tray.SetState(trayState(a.enabled.Load()))
	}
}

func (a *App) report(source string, out fixer.Outcome) {
	switch out.Kind {
	case fixer.Success:
		log.Info("Текст исправлен", "source", source,
			"direction", a.engine.Decide(out.Selected).Direction, "runes", len([]rune(out.Fixed)))
	case fixer.Aborted:
		log.Debug("Срабатывание пропущено", "source", source, "reason", out.Reason)
	case fixer.Failed:
		log.Error("Ошибка конвертации", "source", source, "err", out.Err)
		a.notifier.Error(i18n.T("error_convert") + ": " + out.Err.Error())
	}

	if text, ok := statusText(out, a.engine); ok {
		a.window.SetStatus(text)
	}
}

// toggle переключает флаг включения и возвращает новое значение.
func (a *App) toggle() bool {
	a.mu.Lock()
	on := !a.enabled.Load()
	a.enabled.Store(on)
	a.mu.Unlock()

	log.Info("Конвертация переключена", "enabled", on)
	a.tray.SetEnabled(on)
	a.window.SetEnabled(on)
	a.notifier.Toggled(on)
	return on
}

// selectTriggerKey показывает диалог выбора клавиши-триггера.
func (a *App) selectTriggerKey() {
	key, err := dialog.SelectTriggerKey(a.config.TriggerKey(), keyboard.TriggerCandidates())
	if err != nil {
		if !errors.Is(err, dialog.ErrCanceled) {
			log.Warn("Диалог выбора клавиши", "err", err)
		}
		return
	}
	a.config.SetTriggerKey(key)
}

// applyConfig применяет конфигурацию после перечитывания файла или смены
// клавиши-триггера.
func (a *App) applyConfig() {
	timing := a.config.Timing()
	key := a.config.TriggerKey()

	if lvl, err := log.ParseLevel(a.config.LogLevel()); err == nil {
		log.SetLevel(lvl)
	}
	i18n.SetLanguage(i18n.Language(a.config.UILanguage()))

	a.detector.SetKey(key, timing.ActivationWindow())
	a.fixer.SetTiming(fixerTiming(timing))
	a.notifier.SetEnabled(a.config.NotificationsEnabled())
	a.window.SetTriggerKey(key)

	hk := a.config.Hotkey()
	if hk.String() != a.hotkey.Current().String() {
		if err := a.hotkey.Register(hk); err != nil {
			log.Error("Ошибка регистрации горячей клавиши", "err", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}
	}

	log.Info("Настройки применены", "trigger", key, "hotkey", hotkey.Describe(hk))
}

// Close освобождает ресурсы приложения. Повторные вызовы ничего не делают.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.mu.Lock()
		cancel := a.cancel
		watcher := a.watcher
		a.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		a.keyboard.Stop()

		if err := a.hotkey.Unregister(); err != nil {
			log.Warn("Ошибка отмены горячей клавиши", "err", err)
		}
		if watcher != nil {
			watcher.Close()
		}
		a.window.Hide()
		log.Info("Приложение остановлено")
	})
}

// fixerTiming переводит задержки из конфигурации в задержки Fixer.
func fixerTiming(t config.Timing) fixer.Timing {
	return fixer.Timing{
		Debounce:     t.DebounceWindow(),
		CopySettle:   t.CopySettle(),
		PastePrepare: t.PastePrepare(),
		PasteSettle:  t.PasteSettle(),
		Finish:       t.FinishDelay(),
	}
}

// statusText возвращает строку для окна состояния. false - строку менять
// не нужно (срабатывание отброшено до начала работы).
func statusText(out fixer.Outcome, engine *convert.Engine) (string, bool) {
	switch out.Kind {
	case fixer.Success:
		return i18n.Tf("window_converted", engine.Decide(out.Selected).Direction), true
	case fixer.Failed:
		return i18n.T("window_failed"), true
	}
	switch out.Reason {
	case fixer.NoSelection, fixer.NoChange:
		return i18n.T("window_skipped"), true
	}
	return "", false
}

// startedWork сообщает, прошло ли срабатывание проверки Fixer (и,
// значит, выставило иконку "занято").
func startedWork(out fixer.Outcome) bool {
	if out.Kind != fixer.Aborted {
		return true
	}
	switch out.Reason {
	case fixer.Disabled, fixer.Busy, fixer.Debounced:
		return false
	}
	return true
}

func trayState(enabled bool) tray.State {
	if enabled {
		return tray.StateOn
	}
	return tray.StateOff
}
