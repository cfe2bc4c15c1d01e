package glyph

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinGlyphs(t *testing.T) {
	b := NewBuiltin()
	for _, k := range Kinds {
		h, err := b.Glyph(k)
		require.NoError(t, err, k.String())
		assert.False(t, h.IsBlank(), k.String())
		assert.Equal(t, k, h.Kind())
		want := float64(builtinGlyphs[k].w) / float64(builtinGlyphs[k].h)
		assert.InDelta(t, want, h.Aspect(), 1e-9, k.String())

		again, _ := b.Glyph(k)
		assert.Same(t, h, again, "builtin glyphs are drawn once")
	}
	_, err := b.Glyph(kindCount)
	assert.True(t, errors.Is(err, ErrAssetMissing))
}

func TestBlank(t *testing.T) {
	h := Blank(Sharp)
	assert.True(t, h.IsBlank())
	assert.Nil(t, h.Image())
	assert.Equal(t, 0.0, h.Aspect())
	assert.Equal(t, Sharp, h.Kind())

	var nilHandle *Handle
	assert.True(t, nilHandle.IsBlank())
	assert.Equal(t, "", nilHandle.Path())
}

func TestDirMissing(t *testing.T) {
	_, err := Dir(t.TempDir()).Glyph(NoteHead)
	assert.True(t, errors.Is(err, ErrAssetMissing))
}

func TestExportRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "glyphs")
	b := NewBuiltin()
	src, err := b.Export(dir)
	require.NoError(t, err)

	for _, k := range Kinds {
		h, err := src.Glyph(k)
		require.NoError(t, err, k.String())
		assert.Equal(t, filepath.Join(dir, k.File()), h.Path())
		orig, _ := b.Glyph(k)
		assert.Equal(t, h.Path(), orig.Path())
		assert.InDelta(t, orig.Aspect(), h.Aspect(), 1e-9)
	}
}

func TestFallback(t *testing.T) {
	src := Fallback{Dir(t.TempDir()), NewBuiltin()}
	h, err := src.Glyph(Flat)
	require.NoError(t, err)
	assert.False(t, h.IsBlank())

	_, err = Fallback{Dir(t.TempDir())}.Glyph(Flat)
	assert.True(t, errors.Is(err, ErrAssetMissing))

	_, err = Fallback{}.Glyph(Flat)
	assert.True(t, errors.Is(err, ErrAssetMissing))
}

func TestKindFile(t *testing.T) {
	assert.Equal(t, "treble_clef.png", TrebleClef.File())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
