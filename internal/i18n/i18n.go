// Package i18n provides internationalization support.
package i18n

import (
	"fmt"
	"sync"
)

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	HE Language = "he"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":    "FixMyTypo",
		"app_tooltip": "FixMyTypo - Hebrew/English layout fixer",

		// Tray menu
		"tray_on":                 "Active",
		"tray_off":                "Paused",
		"tray_busy":               "Converting...",
		"tray_enabled":            "Enabled",
		"tray_enabled_hint":       "Convert text on double press",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_trigger":            "Trigger key...",
		"tray_trigger_hint":       "Key to double press",
		"tray_show_window":        "Show window",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Notifications
		"notify_enabled":  "Enabled",
		"notify_disabled": "Disabled",
		"notify_error":    "Error",
		"notify_ready":    "FixMyTypo is ready",

		// Status window
		"window_hint":      "Double-%s to convert",
		"window_on":        "ON",
		"window_off":       "OFF",
		"window_ready":     "Select text and double press",
		"window_paused":    "Paused",
		"window_converted": "Converted (%s)",
		"window_skipped":   "Nothing to convert",
		"window_failed":    "Conversion failed",
		"window_exit":      "Exit",

		// Dialogs
		"dialog_trigger_title":  "Trigger key",
		"dialog_trigger_prompt": "Choose the key to double press:",

		// Errors
		"error_startup":         "Could not start",
		"error_keyboard":        "Could not listen to the keyboard",
		"error_clipboard":       "Clipboard is not available",
		"error_input":           "Could not send key presses",
		"error_hotkey_register": "Could not register hotkey",
		"error_convert":         "Conversion failed",
	},

	HE: {
		// App
		"app_name":    "FixMyTypo",
		"app_tooltip": "FixMyTypo - תיקון פריסת מקלדת עברית/אנגלית",

		// Tray menu
		"tray_on":                 "פעיל",
		"tray_off":                "מושהה",
		"tray_busy":               "ממיר...",
		"tray_enabled":            "מופעל",
		"tray_enabled_hint":       "המרת טקסט בלחיצה כפולה",
		"tray_notifications":      "התראות",
		"tray_notifications_hint": "הצגת התראות",
		"tray_trigger":            "מקש הפעלה...",
		"tray_trigger_hint":       "המקש ללחיצה כפולה",
		"tray_show_window":        "הצג חלון",
		"tray_quit":               "יציאה",
		"tray_quit_hint":          "סגירת היישום",

		// Notifications
		"notify_enabled":  "מופעל",
		"notify_disabled": "מושבת",
		"notify_error":    "שגיאה",
		"notify_ready":    "FixMyTypo מוכן",

		// Status window
		"window_hint":      "לחיצה כפולה על %s להמרה",
		"window_on":        "פועל",
		"window_off":       "כבוי",
		"window_ready":     "סמנו טקסט ולחצו פעמיים",
		"window_paused":    "מושהה",
		"window_converted": "הומר (%s)",
		"window_skipped":   "אין מה להמיר",
		"window_failed":    "ההמרה נכשלה",
		"window_exit":      "יציאה",

		// Dialogs
		"dialog_trigger_title":  "מקש הפעלה",
		"dialog_trigger_prompt": "בחרו את המקש ללחיצה כפולה:",

		// Errors
		"error_startup":         "ההפעלה נכשלה",
		"error_keyboard":        "אין גישה למקלדת",
		"error_clipboard":       "הלוח אינו זמין",
		"error_input":           "לא ניתן לשלוח הקשות",
		"error_hotkey_register": "לא ניתן לרשום קיצור מקלדת",
		"error_convert":         "ההמרה נכשלה",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to English, then to the key itself
	if s, ok := translations[EN][key]; ok {
		return s
	}
	return key
}

// Tf formats the translation for the given key.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	if _, ok := translations[lang]; !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// IsRTL reports whether the current language is written right to left.
func IsRTL() bool {
	return GetLanguage() == HE
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, HE}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case EN:
		return "English"
	case HE:
		return "עברית"
	default:
		return string(lang)
	}
}
