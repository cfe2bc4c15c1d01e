package glyph

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// Builtin draws a plain rendition of every glyph so a staff can be shown
// without an asset directory. Images are drawn once and reused.
type Builtin struct {
	cache [kindCount]*Handle
}

func NewBuiltin() *Builtin {
	return &Builtin{}
}

type drawFunc func(dc *gg.Context, w, h float64)

var builtinGlyphs = [kindCount]struct {
	w, h int
	draw drawFunc
}{
	TrebleClef: {110, 330, drawTreble},
	BassClef:   {130, 150, drawBass},
	NoteHead:   {140, 100, drawNoteHead},
	Sharp:      {60, 150, drawSharp},
	Flat:       {60, 150, drawFlat},
}

func (b *Builtin) Glyph(k Kind) (*Handle, error) {
	if k >= kindCount {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, k)
	}
	if h := b.cache[k]; h != nil {
		return h, nil
	}
	g := builtinGlyphs[k]
	dc := gg.NewContext(g.w, g.h)
	defer dc.Close()
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	g.draw(dc, float64(g.w), float64(g.h))
	h := NewHandle(k, gg.ImageBufFromImage(dc.Image()), "")
	b.cache[k] = h
	return h, nil
}

// Export writes every builtin glyph to dir as PNG and returns a source
// reading them back. Renderers that load textures from files use it.
func (b *Builtin) Export(dir string) (Dir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	for _, k := range Kinds {
		h, err := b.Glyph(k)
		if err != nil {
			return "", err
		}
		path := filepath.Join(dir, k.File())
		if err := h.img.SavePNG(path); err != nil {
			return "", fmt.Errorf("export %s: %w", k, err)
		}
		h.path = path
	}
	return Dir(dir), nil
}

func drawTreble(dc *gg.Context, w, h float64) {
	lw := w / 14
	dc.SetLineWidth(lw)
	cx := w / 2
	// spine
	dc.DrawLine(cx+lw, h*0.06, cx-lw, h*0.88)
	dc.Stroke()
	// upper loop
	dc.DrawEllipse(cx+w*0.08, h*0.18, w*0.18, h*0.12)
	dc.Stroke()
	// body curling round the second line
	dc.DrawArc(cx, h*0.62, w*0.36, math.Pi*0.1, math.Pi*1.9)
	dc.Stroke()
	dc.DrawCircle(cx-w*0.12, h*0.92, w*0.12)
	dc.Fill()
}

func drawBass(dc *gg.Context, w, h float64) {
	lw := w / 14
	dc.SetLineWidth(lw)
	dc.DrawArc(w*0.32, h*0.36, w*0.24, math.Pi, math.Pi*2.4)
	dc.Stroke()
	dc.DrawCircle(w*0.2, h*0.36, w*0.09)
	dc.Fill()
	dc.DrawCircle(w*0.86, h*0.26, w*0.06)
	dc.Fill()
	dc.DrawCircle(w*0.86, h*0.52, w*0.06)
	dc.Fill()
}

func drawNoteHead(dc *gg.Context, w, h float64) {
	dc.Push()
	dc.RotateAbout(-0.35, w/2, h/2)
	dc.DrawEllipse(w/2, h/2, w*0.44, h*0.36)
	dc.Fill()
	dc.Pop()
}

func drawSharp(dc *gg.Context, w, h float64) {
	dc.SetLineWidth(w / 12)
	dc.DrawLine(w*0.35, h*0.05, w*0.35, h*0.95)
	dc.DrawLine(w*0.65, h*0.02, w*0.65, h*0.92)
	dc.Stroke()
	dc.SetLineWidth(h / 14)
	dc.DrawLine(w*0.08, h*0.40, w*0.92, h*0.30)
	dc.DrawLine(w*0.08, h*0.70, w*0.92, h*0.60)
	dc.Stroke()
}

func drawFlat(dc *gg.Context, w, h float64) {
	lw := w / 10
	dc.SetLineWidth(lw)
	dc.DrawLine(w*0.2, h*0.02, w*0.2, h*0.97)
	dc.Stroke()
	dc.MoveTo(w*0.2, h*0.62)
	dc.CubicTo(w*0.55, h*0.48, w*1.0, h*0.58, w*0.2, h*0.97)
	dc.Stroke()
}
