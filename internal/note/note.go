package note

import (
	"errors"
	"fmt"
)

// ErrInvalidPitch is returned for note numbers outside the MIDI range.
var ErrInvalidPitch = errors.New("invalid pitch")

// Modifier is a semitone offset from the C that starts an octave.
type Modifier uint8

const (
	C = Modifier(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
	HC
	HCSharp
	HD
	HDSharp
	HE
)

// Pitch is a MIDI note number.
type Pitch uint8

const MaxPitch = 127

// FromOctave returns the pitch reached by m in the given MIDI octave
// (octave 5 starts at note 60).
func FromOctave(m Modifier, octave int) Pitch {
	return Pitch(int(m) + octave*12)
}

func (p Pitch) Valid() bool {
	return p <= MaxPitch
}

// Spec resolves p with the given alteration preference.
func (p Pitch) Spec(pref Alteration) (Spec, error) {
	return Resolve(int(p), pref)
}

func (p Pitch) String() string {
	s, err := p.Spec(Sharp)
	if err != nil {
		return fmt.Sprintf("Pitch(%d)", uint8(p))
	}
	return s.Name
}

// Spec is the staff spelling of a single pitch.
type Spec struct {
	Line       float64
	Alteration Alteration
	Name       string
}

// Resolve places the MIDI note midi on the staff line grid. Every block of
// 24 semitones spans seven line units. Natural steps ignore pref; black-key
// steps are spelt with a sharp on their own line or a flat half a line up.
func Resolve(midi int, pref Alteration) (Spec, error) {
	if midi < 0 || midi > MaxPitch {
		return Spec{}, fmt.Errorf("%w: %d is outside 0..%d", ErrInvalidPitch, midi, MaxPitch)
	}
	if pref == Natural {
		pref = Sharp
	}
	block := midi / stepCount
	line, alt := Steps[midi%stepCount].FromAlteration(pref)
	return Spec{
		Line:       line + float64(block*linesPerBlock),
		Alteration: alt,
		Name:       name(midi, alt),
	}, nil
}

func name(midi int, alt Alteration) string {
	idx := midi % 12
	if alt == Flat {
		idx++
	}
	return fmt.Sprintf("%s%s%d", letters[idx], alt, midi/12+octaveOffset)
}
