package main

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/minikomi/staffnote/internal/glyph"
	"github.com/minikomi/staffnote/internal/scene"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// screen executes scene commands on an SDL renderer.
type screen struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	bg, fg   sdl.Color

	textures map[*glyph.Handle]*sdl.Texture
	label    *sdl.Texture
	labelFor string
	labelW   int32
	labelH   int32
}

func sdlColor(c gg.RGBA) sdl.Color {
	return sdl.Color{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

func newScreen(renderer *sdl.Renderer, font *ttf.Font) *screen {
	theme := cfg.Theme()
	return &screen{
		renderer: renderer,
		font:     font,
		bg:       sdlColor(theme.Background),
		fg:       sdlColor(theme.Foreground),
		textures: map[*glyph.Handle]*sdl.Texture{},
	}
}

func (s *screen) Destroy() {
	for _, t := range s.textures {
		if t != nil {
			t.Destroy()
		}
	}
	if s.label != nil {
		s.label.Destroy()
	}
}

func (s *screen) texture(h *glyph.Handle) *sdl.Texture {
	if t, ok := s.textures[h]; ok {
		return t
	}
	var t *sdl.Texture
	if !h.IsBlank() && h.Path() != "" {
		var err error
		t, err = img.LoadTexture(s.renderer, h.Path())
		if err != nil {
			log.Warn("using an empty glyph instead", "glyph", h.Kind().String(), "err", err)
			t = nil
		}
	}
	s.textures[h] = t
	return t
}

func toSDLRect(x0, y0, x1, y1 float64) sdl.Rect {
	x, y := math.Round(x0), math.Round(y0)
	return sdl.Rect{
		X: int32(x),
		Y: int32(y),
		W: int32(math.Round(x1) - x),
		H: int32(math.Round(y1) - y),
	}
}

// Draw paints one frame and presents it.
func (s *screen) Draw(cmds []scene.Command, label string) {
	r := s.renderer
	for _, cmd := range cmds {
		switch cmd.Op {
		case scene.OpFill:
			r.SetDrawColor(s.bg.R, s.bg.G, s.bg.B, s.bg.A)
			rect := toSDLRect(cmd.Rect.X0, cmd.Rect.Y0, cmd.Rect.X1, cmd.Rect.Y1)
			r.FillRect(&rect)
		case scene.OpLine:
			r.SetDrawColor(s.fg.R, s.fg.G, s.fg.B, s.fg.A)
			seg := cmd.Segment
			rect := toSDLRect(seg.X0, seg.Y-cmd.Width/2, seg.X1, seg.Y+cmd.Width/2)
			r.FillRect(&rect)
		case scene.OpGlyph:
			t := s.texture(cmd.Glyph)
			if t == nil || cmd.Rect.Empty() {
				continue
			}
			dst := toSDLRect(cmd.Rect.X0, cmd.Rect.Y0, cmd.Rect.X1, cmd.Rect.Y1)
			r.Copy(t, nil, &dst)
		}
	}
	s.drawLabel(label)
	r.Present()
}

func (s *screen) drawLabel(label string) {
	if s.font == nil || label == "" {
		return
	}
	if label != s.labelFor {
		if s.label != nil {
			s.label.Destroy()
			s.label = nil
		}
		s.labelFor = label
		solid, err := s.font.RenderUTF8Blended(label, s.fg)
		if err != nil {
			log.Warn("rendering note name", "err", err)
			return
		}
		defer solid.Free()
		s.label, err = s.renderer.CreateTextureFromSurface(solid)
		if err != nil {
			log.Warn("rendering note name", "err", err)
			return
		}
		s.labelW, s.labelH = solid.W, solid.H
	}
	if s.label == nil {
		return
	}
	rect := sdl.Rect{X: 10, Y: 10, W: s.labelW, H: s.labelH}
	s.renderer.Copy(s.label, nil, &rect)
}
