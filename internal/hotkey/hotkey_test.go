package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"

	"fixmytypo/internal/config"
)

func TestResolve(t *testing.T) {
	mods, key, err := resolve(config.HotkeyConfig{
		Modifiers: []config.Modifier{config.ModCtrl, config.ModShift},
		Key:       config.KeyL,
	})
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyL, key)
	assert.Equal(t, []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, mods)
}

func TestResolveUnknownKey(t *testing.T) {
	_, _, err := resolve(config.HotkeyConfig{Key: "pause"})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestResolveSkipsUnknownModifier(t *testing.T) {
	mods, _, err := resolve(config.HotkeyConfig{
		Modifiers: []config.Modifier{"hyper", config.ModCtrl},
		Key:       config.KeyF9,
	})
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Modifier{hotkey.ModCtrl}, mods)
}

func TestMapsCoverConfig(t *testing.T) {
	for _, k := range config.AvailableKeys() {
		_, ok := keyMap[k]
		assert.True(t, ok, "key %q", k)
	}
	for _, m := range config.AvailableModifiers() {
		_, ok := modifierMap[m]
		assert.True(t, ok, "modifier %q", m)
	}
}

func TestRegisterDisabled(t *testing.T) {
	h := New(func() {})
	require.NoError(t, h.Register(config.HotkeyConfig{}))
	assert.False(t, h.Current().Enabled())
	require.NoError(t, h.Unregister())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "", Describe(config.HotkeyConfig{}))
	assert.Equal(t, "F9", Describe(config.HotkeyConfig{Key: config.KeyF9}))

	cfg := config.HotkeyConfig{
		Modifiers: []config.Modifier{config.ModCtrl, config.ModShift},
		Key:       config.KeySpace,
	}
	want := modifierLabels[config.ModCtrl] + labelSeparator +
		modifierLabels[config.ModShift] + labelSeparator + "Space"
	assert.Equal(t, want, Describe(cfg))
}

func TestLabelsCoverModifiers(t *testing.T) {
	for _, m := range config.AvailableModifiers() {
		assert.NotEmpty(t, modifierLabels[m], "modifier %q", m)
	}
}
