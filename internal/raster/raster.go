// Package raster paints scene commands into an image with the gg software
// renderer, for headless output and tests.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/minikomi/staffnote/internal/scene"
)

type Theme struct {
	Background gg.RGBA
	Foreground gg.RGBA
	// Font is a TrueType file used for the note name. No name is drawn
	// when it is empty.
	Font     string
	FontSize float64
}

func DefaultTheme() Theme {
	return Theme{
		Background: gg.RGB(1, 1, 1),
		Foreground: gg.RGB(0, 0, 0),
		FontSize:   24,
	}
}

// Canvas is a gg context that executes draw commands.
type Canvas struct {
	dc    *gg.Context
	theme Theme
}

func NewCanvas(w, h int, theme Theme) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	if theme.Font != "" {
		if err := dc.LoadFontFace(theme.Font, theme.FontSize); err != nil {
			dc.Close()
			return nil, fmt.Errorf("raster: load font: %w", err)
		}
	}
	return &Canvas{dc: dc, theme: theme}, nil
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Draw executes cmds in order.
func (c *Canvas) Draw(cmds []scene.Command) error {
	for _, cmd := range cmds {
		if err := c.draw(cmd); err != nil {
			return fmt.Errorf("raster: %s: %w", cmd.Role, err)
		}
	}
	return nil
}

func (c *Canvas) draw(cmd scene.Command) error {
	dc := c.dc
	switch cmd.Op {
	case scene.OpFill:
		dc.SetColor(c.theme.Background.Color())
		dc.DrawRectangle(cmd.Rect.X0, cmd.Rect.Y0, cmd.Rect.Width(), cmd.Rect.Height())
		return dc.Fill()
	case scene.OpLine:
		dc.SetColor(c.theme.Foreground.Color())
		dc.SetLineWidth(cmd.Width)
		dc.DrawLine(cmd.Segment.X0, cmd.Segment.Y, cmd.Segment.X1, cmd.Segment.Y)
		return dc.Stroke()
	case scene.OpGlyph:
		img := cmd.Glyph.Image()
		if img == nil || cmd.Rect.Empty() {
			return nil
		}
		dc.DrawImageEx(img, gg.DrawImageOptions{
			X:             cmd.Rect.X0,
			Y:             cmd.Rect.Y0,
			DstWidth:      cmd.Rect.Width(),
			DstHeight:     cmd.Rect.Height(),
			Interpolation: gg.InterpBilinear,
			Opacity:       1.0,
			BlendMode:     gg.BlendNormal,
		})
	}
	return nil
}

// Label draws text in the top left corner.
func (c *Canvas) Label(s string) {
	if c.theme.Font == "" || s == "" {
		return
	}
	c.dc.SetColor(c.theme.Foreground.Color())
	c.dc.DrawStringAnchored(s, c.theme.FontSize/2, c.theme.FontSize/2, 0, 1)
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Render paints one frame and returns it.
func Render(cmds []scene.Command, w, h int, theme Theme, label string) (image.Image, error) {
	c, err := NewCanvas(w, h, theme)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	if err := c.Draw(cmds); err != nil {
		return nil, err
	}
	c.Label(label)
	return c.Image(), nil
}

// WritePNG paints one frame and encodes it as PNG.
func WritePNG(out io.Writer, cmds []scene.Command, w, h int, theme Theme, label string) error {
	c, err := NewCanvas(w, h, theme)
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.Draw(cmds); err != nil {
		return err
	}
	c.Label(label)
	return c.EncodePNG(out)
}
