// Package hotkey регистрирует глобальное сочетание клавиш - второй способ
// запустить конвертацию, помимо двойного нажатия.
package hotkey

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"fixmytypo/internal/config"
)

// ErrUnknownKey возвращается для клавиши, которой нет в keyMap.
var ErrUnknownKey = errors.New("hotkey: unknown key")

// repeatGuard отсекает keydown от автоповтора удерживаемого сочетания.
const repeatGuard = 300 * time.Millisecond

// Handler обрабатывает события горячей клавиши.
type Handler struct {
	mu         sync.Mutex
	hk         *hotkey.Hotkey
	onActivate func()
	current    config.HotkeyConfig
	stopCh     chan struct{}
}

// New создаёт обработчик горячей клавиши.
func New(onActivate func()) *Handler {
	return &Handler{onActivate: onActivate}
}

// Register регистрирует сочетание, снимая предыдущее. Пустое сочетание
// только снимает текущую регистрацию.
func (h *Handler) Register(cfg config.HotkeyConfig) error {
	if err := h.Unregister(); err != nil {
		log.Warn("Ошибка отмены горячей клавиши", "err", err)
	}

	if !cfg.Enabled() {
		return nil
	}

	mods, key, err := resolve(cfg)
	if err != nil {
		return err
	}

	log.Info("Регистрация горячей клавиши", "hotkey", Describe(cfg))

	h.mu.Lock()
	defer h.mu.Unlock()

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", cfg, err)
	}

	h.hk = hk
	h.current = cfg
	h.stopCh = make(chan struct{})
	go h.listen(hk, h.stopCh)
	return nil
}

// resolve переводит конфигурацию в значения golang.design/x/hotkey.
func resolve(cfg config.HotkeyConfig) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := keyMap[cfg.Key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownKey, cfg.Key)
	}

	mods := make([]hotkey.Modifier, 0, len(cfg.Modifiers))
	for _, m := range cfg.Modifiers {
		mod, ok := modifierMap[m]
		if !ok {
			log.Warn("Неизвестный модификатор пропущен", "modifier", m)
			continue
		}
		mods = append(mods, mod)
	}
	return mods, key, nil
}

func (h *Handler) listen(hk *hotkey.Hotkey, stopCh chan struct{}) {
	var lastKeydown time.Time

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < repeatGuard {
				continue
			}
			lastKeydown = now
			if h.onActivate != nil {
				h.onActivate()
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
		}
	}
}

// Unregister отменяет регистрацию горячей клавиши.
func (h *Handler) Unregister() error {
	h.mu.Lock()
	stopCh := h.stopCh
	hk := h.hk
	h.stopCh = nil
	h.hk = nil
	h.current = config.HotkeyConfig{}
	h.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	if hk == nil {
		return nil
	}

	// Unregister может зависнуть на некоторых X11 серверах
	done := make(chan error, 1)
	go func() {
		done <- hk.Unregister()
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(500 * time.Millisecond):
		log.Warn("Таймаут отмены горячей клавиши")
		return nil
	}
}

// Current возвращает текущую зарегистрированную горячую клавишу.
func (h *Handler) Current() config.HotkeyConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// Describe возвращает сочетание в принятой на платформе записи:
// "Ctrl+Shift+L" на Linux и Windows, "⌃⇧L" на macOS.
func Describe(cfg config.HotkeyConfig) string {
	if !cfg.Enabled() {
		return ""
	}
	parts := make([]string, 0, len(cfg.Modifiers)+1)
	for _, m := range cfg.Modifiers {
		if label, ok := modifierLabels[m]; ok {
			parts = append(parts, label)
		}
	}
	parts = append(parts, keyLabel(cfg.Key))
	return strings.Join(parts, labelSeparator)
}

func keyLabel(k config.Key) string {
	switch k {
	case config.KeySpace:
		return "Space"
	case config.KeyReturn:
		return "Return"
	case config.KeyTab:
		return "Tab"
	}
	return strings.ToUpper(string(k))
}

// modifierMap, modifierLabels и labelSeparator определены в
// modifiers_<os>.go.

// keyMap маппинг config.Key -> hotkey.Key
var keyMap = map[config.Key]hotkey.Key{
	config.KeySpace:  hotkey.KeySpace,
	config.KeyReturn: hotkey.KeyReturn,
	config.KeyTab:    hotkey.KeyTab,
	config.KeyA:      hotkey.KeyA,
	config.KeyB:      hotkey.KeyB,
	config.KeyC:      hotkey.KeyC,
	config.KeyD:      hotkey.KeyD,
	config.KeyE:      hotkey.KeyE,
	config.KeyF:      hotkey.KeyF,
	config.KeyG:      hotkey.KeyG,
	config.KeyH:      hotkey.KeyH,
	config.KeyI:      hotkey.KeyI,
	config.KeyJ:      hotkey.KeyJ,
	config.KeyK:      hotkey.KeyK,
	config.KeyL:      hotkey.KeyL,
	config.KeyM:      hotkey.KeyM,
	config.KeyN:      hotkey.KeyN,
	config.KeyO:      hotkey.KeyO,
	config.KeyP:      hotkey.KeyP,
	config.KeyQ:      hotkey.KeyQ,
	config.KeyR:      hotkey.KeyR,
	config.KeyS:      hotkey.KeyS,
	config.KeyT:      hotkey.KeyT,
	config.KeyU:      hotkey.KeyU,
	config.KeyV:      hotkey.KeyV,
	config.KeyW:      hotkey.KeyW,
	config.KeyX:      hotkey.KeyX,
	config.KeyY:      hotkey.KeyY,
	config.KeyZ:      hotkey.KeyZ,
	config.KeyF1:     hotkey.KeyF1,
	config.KeyF2:     hotkey.KeyF2,
	config.KeyF3:     hotkey.KeyF3,
	config.KeyF4:     hotkey.KeyF4,
	config.KeyF5:     hotkey.KeyF5,
	config.KeyF6:     hotkey.KeyF6,
	config.KeyF7:     hotkey.KeyF7,
	config.KeyF8:     hotkey.KeyF8,
	config.KeyF9:     hotkey.KeyF9,
	config.KeyF10:    hotkey.KeyF10,
	config.KeyF11:    hotkey.KeyF11,
	config.KeyF12:    hotkey.KeyF12,
}
