// Package config предоставляет конфигурацию приложения из файла config.json.
//
// Файл только читается: настройки, изменённые во время работы (включение,
// уведомления, клавиша-триггер из меню), не сохраняются между запусками.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid возвращается для файла, который не удалось разобрать.
var ErrInvalid = errors.New("config: invalid file")

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу сочетания.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// HotkeyConfig - дополнительное сочетание, запускающее конвертацию.
// Пустой Key отключает его.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// Enabled сообщает, задано ли сочетание.
func (h HotkeyConfig) Enabled() bool {
	return h.Key != ""
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	if !h.Enabled() {
		return ""
	}
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		parts = append(parts, string(m))
	}
	parts = append(parts, string(h.Key))
	return strings.Join(parts, "+")
}

// Timing - задержки в миллисекундах, как в файле.
type Timing struct {
	ActivationWindowMs int `json:"activation_window_ms"`
	DebounceWindowMs   int `json:"debounce_window_ms"`
	CopySettleMs       int `json:"copy_settle_ms"`
	PastePrepareMs     int `json:"paste_prepare_ms"`
	PasteSettleMs      int `json:"paste_settle_ms"`
	FinishDelayMs      int `json:"finish_delay_ms"`
}

// ActivationWindow - окно двойного нажатия.
func (t Timing) ActivationWindow() time.Duration { return ms(t.ActivationWindowMs) }

// DebounceWindow - минимальный интервал между срабатываниями.
func (t Timing) DebounceWindow() time.Duration { return ms(t.DebounceWindowMs) }

// CopySettle - пауза после копирования.
func (t Timing) CopySettle() time.Duration { return ms(t.CopySettleMs) }

// PastePrepare - пауза перед вставкой.
func (t Timing) PastePrepare() time.Duration { return ms(t.PastePrepareMs) }

// PasteSettle - пауза после вставки.
func (t Timing) PasteSettle() time.Duration { return ms(t.PasteSettleMs) }

// FinishDelay - пауза в конце срабатывания.
func (t Timing) FinishDelay() time.Duration { return ms(t.FinishDelayMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// configData структура для сериализации.
type configData struct {
	TriggerKey    string       `json:"trigger_key"`
	Hotkey        HotkeyConfig `json:"hotkey"`
	UILanguage    string       `json:"ui_language,omitempty"`
	Notifications *bool        `json:"notifications,omitempty"`
	ShowWindow    *bool        `json:"show_window,omitempty"`
	LogLevel      string       `json:"log_level,omitempty"`
	Timing
}

// Config хранит настройки приложения.
type Config struct {
	mu            sync.RWMutex
	triggerKey    string
	hotkey        HotkeyConfig
	timing        Timing
	uiLanguage    string
	notifications bool
	showWindow    bool
	logLevel      string
	configPath    string
	onChange      []func()
}

// New создаёт конфигурацию, загружая config.json рядом с бинарником или
// используя настройки по умолчанию.
func New() *Config {
	c := defaults()

	// Определяем путь к файлу конфигурации рядом с бинарником
	execPath, err := os.Executable()
	if err == nil {
		// Резолвим симлинки
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			c.configPath = filepath.Join(filepath.Dir(execPath), "config.json")
		}
	}

	if err := c.load(); err != nil {
		log.Warn("Конфигурация не загружена, используются значения по умолчанию", "path", c.configPath, "err", err)
	}
	return c
}

// Load создаёт конфигурацию из указанного файла. Отсутствующий файл не
// является ошибкой.
func Load(path string) (*Config, error) {
	c := defaults()
	c.configPath = path
	if err := c.load(); err != nil {
		return c, err
	}
	return c, nil
}

func defaults() *Config {
	return &Config{
		triggerKey:    DefaultTriggerKey,
		timing:        DefaultTiming(),
		uiLanguage:    "en",
		notifications: false,
		showWindow:    true,
		logLevel:      "info",
	}
}

// load загружает конфигурацию из файла.
func (c *Config) load() error {
	if c.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Файл не существует, используем defaults
		}
		return err
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, c.configPath, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(cfg)
	return nil
}

// apply переносит значения из файла поверх defaults. Вызывается под mu.
func (c *Config) apply(cfg configData) {
	d := defaults()

	c.triggerKey = d.triggerKey
	if strings.TrimSpace(cfg.TriggerKey) != "" {
		c.triggerKey = cfg.TriggerKey
	}
	c.hotkey = cfg.Hotkey
	c.timing = validateTiming(cfg.Timing)

	c.uiLanguage = d.uiLanguage
	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.notifications = d.notifications
	if cfg.Notifications != nil {
		c.notifications = *cfg.Notifications
	}
	c.showWindow = d.showWindow
	if cfg.ShowWindow != nil {
		c.showWindow = *cfg.ShowWindow
	}
	c.logLevel = d.logLevel
	if cfg.LogLevel != "" {
		c.logLevel = cfg.LogLevel
	}
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configPath
}

// TriggerKey возвращает имя клавиши двойного нажатия.
func (c *Config) TriggerKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.triggerKey
}

// SetTriggerKey меняет клавишу-триггер до конца сеанса.
func (c *Config) SetTriggerKey(key string) {
	c.mu.Lock()
	c.triggerKey = key
	callbacks := append([]func(){}, c.onChange...)
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Hotkey возвращает дополнительное сочетание.
func (c *Config) Hotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// Timing возвращает задержки.
func (c *Config) Timing() Timing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timing
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// ToggleNotifications переключает уведомления до конца сеанса.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	return c.notifications
}

// ShowWindow возвращает true если окно состояния показывается при запуске.
func (c *Config) ShowWindow() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.showWindow
}

// LogLevel возвращает уровень логирования.
func (c *Config) LogLevel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logLevel
}

// OnChange добавляет callback, вызываемый после перечитывания файла или
// смены клавиши-триггера.
func (c *Config) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

// Reload перечитывает файл и вызывает callbacks OnChange.
func (c *Config) Reload() error {
	if err := c.load(); err != nil {
		return err
	}

	c.mu.RLock()
	callbacks := append([]func(){}, c.onChange...)
	c.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
	return nil
}

// AvailableModifiers возвращает список доступных модификаторов.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}

// AvailableKeys возвращает список доступных клавиш.
func AvailableKeys() []Key {
	return []Key{
		KeySpace, KeyReturn, KeyTab,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}
