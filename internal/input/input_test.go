package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComboString(t *testing.T) {
	assert.Equal(t, "ctrl+c", Copy.String())
	assert.Equal(t, "ctrl+Insert", CopyAlt.String())
	assert.Equal(t, "ctrl+v", Paste.String())
	assert.Equal(t, "ctrl+shift+v", Combo{Ctrl: true, Shift: true, Key: KeyV}.String())
	assert.Equal(t, "c", Combo{Key: KeyC}.String())
}

func TestXdotoolArgs(t *testing.T) {
	assert.Equal(t, []string{"key", "--clearmodifiers", "ctrl+Insert"}, xdotoolArgs(CopyAlt))
}

func TestWtypeArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-M", "ctrl", "-k", "v", "-m", "ctrl"},
		wtypeArgs(Paste))

	assert.Equal(t,
		[]string{"-M", "ctrl", "-M", "shift", "-k", "c", "-m", "shift", "-m", "ctrl"},
		wtypeArgs(Combo{Ctrl: true, Shift: true, Key: KeyC}))

	assert.Equal(t, []string{"-k", "Insert"}, wtypeArgs(Combo{Key: KeyInsert}))
}
