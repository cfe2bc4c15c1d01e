package staff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minikomi/staffnote/internal/note"
)

// ErrDegenerateConfig is returned for configurations no staff can be drawn
// from.
var ErrDegenerateConfig = errors.New("degenerate staff config")

const (
	// StaffLines is the number of lines of a staff.
	StaffLines = 5

	DefaultMaxVisibleLines = 11
)

type ClefKind uint8

const (
	Treble ClefKind = iota
	Bass
	Auto
)

func (k ClefKind) String() string {
	switch k {
	case Bass:
		return "bass"
	case Auto:
		return "auto"
	}
	return "treble"
}

func ParseClef(s string) (ClefKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "treble", "g":
		return Treble, nil
	case "bass", "f":
		return Bass, nil
	case "auto":
		return Auto, nil
	}
	return Treble, fmt.Errorf("unknown clef %q", s)
}

// Config is fixed for the lifetime of a staff.
type Config struct {
	MaxVisibleLines int
	Clef            ClefKind
	Preference      note.Alteration
}

func DefaultConfig() Config {
	return Config{
		MaxVisibleLines: DefaultMaxVisibleLines,
		Clef:            Treble,
		Preference:      note.Sharp,
	}
}

func NewConfig(maxVisibleLines int, clef ClefKind, pref note.Alteration) (Config, error) {
	c := Config{MaxVisibleLines: maxVisibleLines, Clef: clef, Preference: pref}
	if c.Preference == note.Natural {
		c.Preference = note.Sharp
	}
	return c, c.Validate()
}

// Validate requires an odd number of visible lines, at least the five of
// the staff itself, so ledger slots split evenly above and below.
func (c Config) Validate() error {
	if c.MaxVisibleLines < StaffLines {
		return fmt.Errorf("%w: max visible lines %d < %d", ErrDegenerateConfig, c.MaxVisibleLines, StaffLines)
	}
	if c.MaxVisibleLines%2 == 0 {
		return fmt.Errorf("%w: max visible lines %d is even", ErrDegenerateConfig, c.MaxVisibleLines)
	}
	if c.Clef > Auto {
		return fmt.Errorf("%w: clef %d", ErrDegenerateConfig, c.Clef)
	}
	return nil
}
