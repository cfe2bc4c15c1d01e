// Package scene composes a single-note staff: it keeps the current note,
// lays out every element of the staff inside a container and turns the
// layout into an ordered list of draw commands.
//
// A Staff is not safe for concurrent use. Hosts call SetNote, Apply, Layout
// and Paint from the goroutine that drives rendering.
package scene

import (
	"errors"
	"fmt"

	"github.com/minikomi/staffnote/internal/glyph"
	"github.com/minikomi/staffnote/internal/note"
	"github.com/minikomi/staffnote/internal/staff"
)

// ErrEmptyContainer is returned by Layout for containers without area.
var ErrEmptyContainer = errors.New("empty container")

type State uint8

const (
	Empty State = iota
	NoteActive
)

func (s State) String() string {
	if s == NoteActive {
		return "note active"
	}
	return "empty"
}

// Staff holds the configuration, glyphs and current note of one staff.
type Staff struct {
	cfg    staff.Config
	glyphs map[glyph.Kind]*glyph.Handle

	current note.Pitch
	active  bool

	last    Layout
	lastKey layoutKey
	hasLast bool
}

type layoutKey struct {
	container staff.Rect
	note      note.Pitch
	active    bool
}

// New validates cfg and resolves every glyph from src. Glyphs src cannot
// supply are replaced by blank ones.
func New(cfg staff.Config, src glyph.Source) (*Staff, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Preference == note.Natural {
		cfg.Preference = note.Sharp
	}
	s := &Staff{cfg: cfg, glyphs: make(map[glyph.Kind]*glyph.Handle, len(glyph.Kinds))}
	for _, k := range glyph.Kinds {
		var h *glyph.Handle
		var err error
		if src == nil {
			err = fmt.Errorf("%w: %s: no source", glyph.ErrAssetMissing, k)
		} else {
			h, err = src.Glyph(k)
		}
		if err != nil || h == nil {
			logger().Warn("using an empty glyph instead", "glyph", k.String(), "err", err)
			h = glyph.Blank(k)
		}
		s.glyphs[k] = h
	}
	return s, nil
}

func (s *Staff) Config() staff.Config { return s.cfg }

// Glyph returns the cached handle for k.
func (s *Staff) Glyph(k glyph.Kind) *glyph.Handle { return s.glyphs[k] }

func (s *Staff) State() State {
	if s.active {
		return NoteActive
	}
	return Empty
}

// Note returns the current note, if any.
func (s *Staff) Note() (note.Pitch, bool) {
	return s.current, s.active
}

// SetNote replaces the current note. An invalid pitch leaves the staff
// unchanged.
func (s *Staff) SetNote(midi int) error {
	if midi < 0 || midi > note.MaxPitch {
		return fmt.Errorf("%w: %d is outside 0..%d", note.ErrInvalidPitch, midi, note.MaxPitch)
	}
	s.current, s.active = note.Pitch(midi), true
	return nil
}

func (s *Staff) ClearNote() {
	s.current, s.active = 0, false
}

// Apply reduces a stream of note events to the last sounding note. A
// note-off only clears the staff when it releases the shown note.
func (s *Staff) Apply(ev note.Event) error {
	if ev.NoteOn() {
		logger().Debug("pressed", "note", ev.Key.String(), "velocity", ev.Velocity)
		return s.SetNote(int(ev.Key))
	}
	logger().Debug("released", "note", ev.Key.String())
	if s.active && ev.Key == s.current {
		s.ClearNote()
	}
	return nil
}

// Frame runs a layout pass followed by a paint pass.
func (s *Staff) Frame(container staff.Rect) ([]Command, error) {
	l, err := s.Layout(container)
	if err != nil && !s.hasLast {
		return nil, err
	}
	return Paint(l), err
}
