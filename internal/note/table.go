package note

import (
	"fmt"
	"strings"
)

// Alteration is the accidental a pitch is spelt with.
type Alteration uint8

const (
	Natural Alteration = iota
	Sharp
	Flat
)

func (a Alteration) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	}
	return ""
}

// ParseAlteration accepts the preference names used in config files and
// flags.
func ParseAlteration(s string) (Alteration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sharp", "#":
		return Sharp, nil
	case "flat", "b":
		return Flat, nil
	case "natural":
		return Natural, nil
	}
	return Natural, fmt.Errorf("unknown alteration %q", s)
}

const (
	stepCount     = 24
	linesPerBlock = 7
	octaveOffset  = -2
)

var letters = [12]string{"C", "C", "D", "D", "E", "F", "F", "G", "G", "A", "A", "B"}

// Step is one semitone of the two-octave lookup table.
type Step struct {
	NaturalLine float64
	IsBlackKey  bool
}

// FromAlteration returns the line and accidental of the step for the
// preferred spelling.
func (s Step) FromAlteration(pref Alteration) (float64, Alteration) {
	switch {
	case !s.IsBlackKey:
		return s.NaturalLine, Natural
	case pref == Flat:
		return s.NaturalLine + 0.5, Flat
	default:
		return s.NaturalLine, Sharp
	}
}

var Steps = [stepCount]Step{
	{0.0, false}, // C
	{0.0, true},  // C#
	{0.5, false}, // D
	{0.5, true},  // D#
	{1.0, false}, // E
	{1.5, false}, // F
	{1.5, true},  // F#
	{2.0, false}, // G
	{2.0, true},  // G#
	{2.5, false}, // A
	{2.5, true},  // A#
	{3.0, false}, // B
	{3.5, false}, // C
	{3.5, true},  // C#
	{4.0, false}, // D
	{4.0, true},  // D#
	{4.5, false}, // E
	{5.0, false}, // F
	{5.0, true},  // F#
	{5.5, false}, // G
	{5.5, true},  // G#
	{6.0, false}, // A
	{6.0, true},  // A#
	{6.5, false}, // B
}
