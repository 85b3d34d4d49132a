package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fixmytypo/internal/i18n"
)

func TestDisplayKey(t *testing.T) {
	assert.Equal(t, "Caps Lock", DisplayKey("caps lock"))
	assert.Equal(t, "Right Ctrl", DisplayKey(" right ctrl "))
	assert.Equal(t, "F9", DisplayKey("f9"))
	assert.Equal(t, "", DisplayKey(""))
}

func TestHint(t *testing.T) {
	i18n.SetLanguage(i18n.EN)
	assert.Equal(t, "Double-Caps Lock to convert", Hint("caps lock"))
}

func TestToggleStyle(t *testing.T) {
	i18n.SetLanguage(i18n.EN)

	label, bg := toggleStyle(true)
	assert.Equal(t, "ON", label)
	assert.Equal(t, colorOn, bg)

	label, bg = toggleStyle(false)
	assert.Equal(t, "OFF", label)
	assert.Equal(t, colorOff, bg)
}

func TestWindowState(t *testing.T) {
	i18n.SetLanguage(i18n.EN)

	w := New(Callbacks{}, true, "caps lock")
	assert.False(t, w.IsVisible())

	s := w.snapshot()
	assert.True(t, s.enabled)
	assert.Equal(t, "Double-Caps Lock to convert", s.hint)
	assert.Equal(t, "Select text and double press", s.status)

	w.SetEnabled(false)
	w.SetTriggerKey("scroll lock")
	s = w.snapshot()
	assert.False(t, s.enabled)
	assert.Equal(t, "Paused", s.status)
	assert.Equal(t, "Double-Scroll Lock to convert", s.hint)

	w.SetStatus("Converted (en→he)")
	assert.Equal(t, "Converted (en→he)", w.snapshot().status)

	// Hide on a window that was never shown is a no-op
	w.Hide()
}
