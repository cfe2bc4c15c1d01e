package staff

import (
	"math"

	"github.com/minikomi/staffnote/internal/note"
)

// Point is a position in container coordinates, y growing downwards.
type Point struct {
	X, Y float64
}

// Rect spans X0..X1 and Y0..Y1 with Y0 at the top.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func RectFromSize(w, h float64) Rect {
	return Rect{X1: w, Y1: h}
}

// RectAt builds a rectangle from its origin and size.
func RectAt(origin Point, w, h float64) Rect {
	return Rect{X0: origin.X, Y0: origin.Y, X1: origin.X + w, Y1: origin.Y + h}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Origin() Point   { return Point{r.X0, r.Y0} }

func (r Rect) Center() Point {
	return Point{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2}
}

// Empty reports whether r has no area, including NaN extents.
func (r Rect) Empty() bool {
	return !(r.Width() > 0) || !(r.Height() > 0)
}

// Segment is a horizontal line at Y from X0 to X1.
type Segment struct {
	X0, X1, Y float64
}

func (s Segment) From() Point { return Point{s.X0, s.Y} }
func (s Segment) To() Point   { return Point{s.X1, s.Y} }

// LineHeight is the distance between two adjacent staff lines when the
// container holds MaxVisibleLines lines.
func (c Config) LineHeight(height float64) float64 {
	return height / float64(c.MaxVisibleLines-1)
}

func StrokeWidth(height float64) float64 {
	return math.Max(2.0, height/200.0)
}

// StaffLinesRect is the part of container running from the top staff line
// to the bottom one.
func (c Config) StaffLinesRect(container Rect) Rect {
	inset := c.LineHeight(container.Height()) * float64(c.MaxVisibleLines-StaffLines) / 2
	return Rect{
		X0: container.X0,
		Y0: container.Y0 + inset,
		X1: container.X1,
		Y1: container.Y1 - inset,
	}
}

// LineOpt overrides the width and horizontal centre of a line segment.
// The staff width and centre are used unless HasWidth or HasCenter is set.
type LineOpt struct {
	Width     float64
	CenterX   float64
	HasWidth  bool
	HasCenter bool
}

// LineAt selects a segment w wide centred on cx.
func LineAt(w, cx float64) LineOpt {
	return LineOpt{Width: w, CenterX: cx, HasWidth: true, HasCenter: true}
}

// LineRect returns the segment of staff line index, 0 being the bottom
// staff line. Fractional and out-of-staff indices are valid.
func (c Config) LineRect(container Rect, index float64, opt LineOpt) Segment {
	staff := c.StaffLinesRect(container)
	y := staff.Y1 - c.LineHeight(container.Height())*index
	w := opt.Width
	if !opt.HasWidth {
		w = staff.Width()
	}
	cx := opt.CenterX
	if !opt.HasCenter {
		cx = staff.Center().X
	}
	return Segment{X0: cx - w/2, X1: cx + w/2, Y: y}
}

// anchor pitches sit on the bottom line of their clef's staff.
var anchors = map[ClefKind]int{
	Treble: 64, // E
	Bass:   43, // G
}

// ClefFor picks the clef drawn for p. Auto switches to the bass clef below
// middle C.
func (c Config) ClefFor(p *note.Pitch) ClefKind {
	if c.Clef != Auto {
		return c.Clef
	}
	if p != nil && *p < 60 {
		return Bass
	}
	return Treble
}

// ReferenceLine is the pitch line that maps onto staff line index 0.
func ReferenceLine(clef ClefKind) float64 {
	midi, ok := anchors[clef]
	if !ok {
		midi = anchors[Treble]
	}
	s, _ := note.Resolve(midi, note.Flat)
	return s.Line
}

// LedgerIndices lists the ledger lines needed for a note diff lines above
// the bottom staff line.
func LedgerIndices(diff float64) []int {
	var out []int
	switch {
	case diff < 0:
		for i := int(math.Ceil(diff)); i < 0; i++ {
			out = append(out, i)
		}
	case diff > StaffLines-1:
		for i := StaffLines; i <= int(math.Floor(diff)); i++ {
			out = append(out, i)
		}
	}
	return out
}
