package scene

import (
	"github.com/minikomi/staffnote/internal/glyph"
	"github.com/minikomi/staffnote/internal/note"
	"github.com/minikomi/staffnote/internal/staff"
)

// Accidentals sit left of the note head and are raised by
// lineHeight/upCoefficient so their visual centre meets the head.
const (
	sharpUp = 4.0
	flatUp  = 1.5

	ledgerWidthRatio = 7.0
)

// Placed is a glyph and the box it is drawn into.
type Placed struct {
	Glyph *glyph.Handle
	Rect  staff.Rect
}

// NoteLayout is present while a note is shown.
type NoteLayout struct {
	Pitch      note.Pitch
	Spec       note.Spec
	Diff       float64
	Head       Placed
	Accidental *Placed
	Ledgers    []staff.Segment
}

// Layout places every element of the staff inside a container. Glyph boxes
// get their height from the line height and their width from the glyph's
// aspect ratio, so a blank glyph has zero width.
type Layout struct {
	Container  staff.Rect
	Staff      staff.Rect
	LineHeight float64
	Stroke     float64
	Lines      [staff.StaffLines]staff.Segment
	Clef       Placed
	Note       *NoteLayout
}

// Layout computes the placement of every element for container. It never
// returns a partial result: on error the previous layout is returned.
func (s *Staff) Layout(container staff.Rect) (Layout, error) {
	if container.Empty() {
		return s.last, ErrEmptyContainer
	}
	key := layoutKey{container: container, note: s.current, active: s.active}
	if s.hasLast && key == s.lastKey {
		return s.last, nil
	}

	cfg := s.cfg
	lh := cfg.LineHeight(container.Height())
	lines := cfg.StaffLinesRect(container)
	l := Layout{
		Container:  container,
		Staff:      lines,
		LineHeight: lh,
		Stroke:     staff.StrokeWidth(container.Height()),
	}
	for i := range l.Lines {
		l.Lines[i] = cfg.LineRect(container, float64(i), staff.LineOpt{})
	}

	var current *note.Pitch
	if s.active {
		p := s.current
		current = &p
	}
	clef := cfg.ClefFor(current)
	l.Clef = s.placeClef(clef, lines, lh)

	if current != nil {
		spec, err := current.Spec(cfg.Preference)
		if err != nil {
			return s.last, err
		}
		l.Note = s.placeNote(*current, spec, staff.ReferenceLine(clef), container, lines, lh)
	}

	s.last, s.lastKey, s.hasLast = l, key, true
	return l, nil
}

func (s *Staff) placeClef(clef staff.ClefKind, lines staff.Rect, lh float64) Placed {
	if clef == staff.Bass {
		h := s.glyphs[glyph.BassClef]
		height := 3 * lh
		return Placed{Glyph: h, Rect: staff.RectAt(lines.Origin(), h.Aspect()*height, height)}
	}
	h := s.glyphs[glyph.TrebleClef]
	height := 6 * lh
	origin := staff.Point{X: lines.X0, Y: lines.Y0 - lh}
	return Placed{Glyph: h, Rect: staff.RectAt(origin, h.Aspect()*height, height)}
}

func (s *Staff) placeNote(p note.Pitch, spec note.Spec, ref float64, container, lines staff.Rect, lh float64) *NoteLayout {
	diff := spec.Line - ref
	head := s.glyphs[glyph.NoteHead]
	headW := head.Aspect() * lh
	origin := staff.Point{
		X: lines.Center().X - headW/2,
		Y: lines.Y1 - (lh*diff + lh*0.5),
	}
	nl := &NoteLayout{
		Pitch: p,
		Spec:  spec,
		Diff:  diff,
		Head:  Placed{Glyph: head, Rect: staff.RectAt(origin, headW, lh)},
	}

	if acc, up, ok := s.accidental(spec.Alteration); ok {
		height := 1.5 * lh
		w := acc.Aspect() * height
		at := staff.Point{X: origin.X - w*2, Y: origin.Y - lh/up}
		nl.Accidental = &Placed{Glyph: acc, Rect: staff.RectAt(at, w, height)}
	}

	opt := staff.LineAt(lines.Width()/ledgerWidthRatio, nl.Head.Rect.Center().X)
	for _, i := range staff.LedgerIndices(diff) {
		nl.Ledgers = append(nl.Ledgers, s.cfg.LineRect(container, float64(i), opt))
	}
	return nl
}

func (s *Staff) accidental(a note.Alteration) (*glyph.Handle, float64, bool) {
	switch a {
	case note.Sharp:
		return s.glyphs[glyph.Sharp], sharpUp, true
	case note.Flat:
		return s.glyphs[glyph.Flat], flatUp, true
	}
	return nil, 0, false
}
