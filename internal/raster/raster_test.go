package raster

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/minikomi/staffnote/internal/glyph"
	"github.com/minikomi/staffnote/internal/scene"
	"github.com/minikomi/staffnote/internal/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const width, height = 400, 250

func frame(t *testing.T, midi int) []scene.Command {
	t.Helper()
	s, err := scene.New(staff.DefaultConfig(), glyph.NewBuiltin())
	require.NoError(t, err)
	if midi >= 0 {
		require.NoError(t, s.SetNote(midi))
	}
	cmds, err := s.Frame(staff.RectFromSize(width, height))
	require.NoError(t, err)
	return cmds
}

func dark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r>>8 < 128 && g>>8 < 128 && b>>8 < 128
}

func TestRenderEmptyStaff(t *testing.T) {
	img, err := Render(frame(t, -1), width, height, DefaultTheme(), "")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, width, height), img.Bounds())

	// bottom staff line at y=175, top at y=75
	assert.True(t, dark(img, 390, 175))
	assert.True(t, dark(img, 390, 75))
	assert.False(t, dark(img, 390, 20))
	assert.False(t, dark(img, 200, 162))
}

func TestRenderNoteHead(t *testing.T) {
	// F sits in the first space, centred at y=162.5
	img, err := Render(frame(t, 65), width, height, DefaultTheme(), "")
	require.NoError(t, err)
	assert.True(t, dark(img, 200, 162))
	assert.False(t, dark(img, 390, 162))
}

func TestRenderBlankGlyphs(t *testing.T) {
	s, err := scene.New(staff.DefaultConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, s.SetNote(65))
	cmds, err := s.Frame(staff.RectFromSize(width, height))
	require.NoError(t, err)

	img, err := Render(cmds, width, height, DefaultTheme(), "")
	require.NoError(t, err)
	assert.False(t, dark(img, 200, 162))
	assert.True(t, dark(img, 200, 175))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, frame(t, 60), width, height, DefaultTheme(), "C3"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, width, img.Bounds().Dx())
	// ledger line for middle C
	assert.True(t, dark(img, 200, 200))
}

func TestNewCanvasRejectsBadSize(t *testing.T) {
	_, err := NewCanvas(0, 10, DefaultTheme())
	assert.Error(t, err)

	theme := DefaultTheme()
	theme.Font = "/nonexistent/font.ttf"
	_, err = NewCanvas(10, 10, theme)
	assert.Error(t, err)
}
