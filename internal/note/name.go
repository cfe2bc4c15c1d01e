package note

import (
	"fmt"
	"strconv"
	"strings"
)

var letterClass = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseName is the inverse of the name produced by Resolve: a letter, an
// optional '#' or 'b' and an octave number ("C3" is MIDI 60).
func ParseName(s string) (Pitch, Alteration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Natural, fmt.Errorf("%w: empty note name", ErrInvalidPitch)
	}
	class, ok := letterClass[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, Natural, fmt.Errorf("%w: bad letter in %q", ErrInvalidPitch, s)
	}
	rest, alt := s[1:], Natural
	if len(rest) > 0 {
		switch rest[0] {
		case '#':
			alt, class, rest = Sharp, class+1, rest[1:]
		case 'b':
			alt, class, rest = Flat, class-1, rest[1:]
		}
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, Natural, fmt.Errorf("%w: bad octave in %q", ErrInvalidPitch, s)
	}
	midi := (octave-octaveOffset)*12 + class
	if midi < 0 || midi > MaxPitch {
		return 0, Natural, fmt.Errorf("%w: %q is outside the MIDI range", ErrInvalidPitch, s)
	}
	return Pitch(midi), alt, nil
}

// Parse accepts either a MIDI number or a note name.
func Parse(s string) (Pitch, Alteration, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 0 || n > MaxPitch {
			return 0, Natural, fmt.Errorf("%w: %d is outside 0..%d", ErrInvalidPitch, n, MaxPitch)
		}
		return Pitch(n), Natural, nil
	}
	return ParseName(s)
}

// ParseSpelled parses s and resolves it. A name carrying '#' or 'b' keeps
// that spelling, anything else is spelled with pref.
func ParseSpelled(s string, pref Alteration) (Pitch, Spec, error) {
	p, written, err := Parse(s)
	if err != nil {
		return 0, Spec{}, err
	}
	if written != Natural {
		pref = written
	}
	spec, err := p.Spec(pref)
	return p, spec, err
}
