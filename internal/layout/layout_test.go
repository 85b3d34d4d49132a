package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLetters(t *testing.T) {
	tbl := New()

	tests := []struct {
		m    Map
		in   rune
		want rune
	}{
		{ToHebrew, 'a', 'ש'},
		{ToHebrew, 'A', 'ש'},
		{ToHebrew, 'z', 'ז'},
		{ToHebrew, 'q', '/'},
		{ToHebrew, 'w', '\''},
		{ToEnglish, 'ש', 'a'},
		{ToEnglish, 'ף', ';'},
		{ToEnglish, '/', 'q'},
		{ToEnglish, '.', '/'},
	}

	for _, tt := range tests {
		got, ok := tbl.Lookup(tt.m, tt.in)
		require.True(t, ok, "%s %q", tt.m, tt.in)
		assert.Equal(t, tt.want, got, "%s %q", tt.m, tt.in)
	}
}

func TestLookupAbsent(t *testing.T) {
	tbl := New()

	_, ok := tbl.Lookup(ToHebrew, 'ש')
	assert.False(t, ok)

	_, ok = tbl.Lookup(ToEnglish, 'a')
	assert.False(t, ok)

	_, ok = tbl.Lookup(ToEnglish, '!')
	assert.False(t, ok, "shifted digits exist only in the English table")

	assert.False(t, tbl.Has(ToHebrew, ' '))
	assert.False(t, tbl.Has(ToEnglish, ' '))
}

func TestShiftVariantsShareTarget(t *testing.T) {
	tbl := New()

	semi, _ := tbl.Lookup(ToHebrew, ';')
	colon, _ := tbl.Lookup(ToHebrew, ':')
	assert.Equal(t, 'ף', semi)
	assert.Equal(t, semi, colon)

	// Обратно 'ף' возвращается только в ';'.
	back, ok := tbl.Lookup(ToEnglish, 'ף')
	require.True(t, ok)
	assert.Equal(t, ';', back)
}

func TestUnshiftedLettersInvert(t *testing.T) {
	tbl := New()

	for r := 'a'; r <= 'z'; r++ {
		he, ok := tbl.Lookup(ToHebrew, r)
		require.True(t, ok, "%q", r)
		en, ok := tbl.Lookup(ToEnglish, he)
		require.True(t, ok, "%q -> %q", r, he)
		assert.Equal(t, r, en)
	}
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, len(enToHe), Default().Len(ToHebrew))
	assert.Equal(t, len(heToEn), Default().Len(ToEnglish))
}

func TestMapString(t *testing.T) {
	assert.Equal(t, "en→he", ToHebrew.String())
	assert.Equal(t, "he→en", ToEnglish.String())
	assert.Equal(t, "unknown", Map(7).String())
}
