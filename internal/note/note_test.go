package note

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepFromAlteration(t *testing.T) {
	assert := assert.New(t)

	line, alt := Steps[0].FromAlteration(Sharp)
	assert.Equal(0.0, line)
	assert.Equal(Natural, alt)

	line, alt = Steps[0].FromAlteration(Flat)
	assert.Equal(0.0, line)
	assert.Equal(Natural, alt)

	line, alt = Steps[1].FromAlteration(Sharp)
	assert.Equal(0.0, line)
	assert.Equal(Sharp, alt)

	line, alt = Steps[1].FromAlteration(Flat)
	assert.Equal(0.5, line)
	assert.Equal(Flat, alt)

	line, alt = Steps[23].FromAlteration(Flat)
	assert.Equal(6.5, line)
	assert.Equal(Natural, alt)

	line, alt = Steps[22].FromAlteration(Flat)
	assert.Equal(6.5, line)
	assert.Equal(Flat, alt)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		midi int
		pref Alteration
		want Spec
	}{
		{60, Sharp, Spec{17.5, Natural, "C3"}},
		{60, Flat, Spec{17.5, Natural, "C3"}},
		{66, Sharp, Spec{19.0, Sharp, "F#3"}},
		{66, Flat, Spec{19.5, Flat, "Gb3"}},
		{64, Flat, Spec{18.5, Natural, "E3"}},
		{70, Flat, Spec{20.5, Flat, "Bb3"}},
		{0, Sharp, Spec{0, Natural, "C-2"}},
		{127, Sharp, Spec{37.0, Natural, "G8"}},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.midi, tt.pref)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "midi %d pref %q", tt.midi, tt.pref)
	}
}

func TestResolveDefaultsToSharp(t *testing.T) {
	got, err := Resolve(61, Natural)
	require.NoError(t, err)
	assert.Equal(t, Sharp, got.Alteration)
	assert.Equal(t, "C#3", got.Name)
}

func TestResolveRejectsOutOfRange(t *testing.T) {
	for _, midi := range []int{-1, 128, 1000} {
		_, err := Resolve(midi, Sharp)
		assert.True(t, errors.Is(err, ErrInvalidPitch), "midi %d", midi)
	}
}

func TestResolveMonotonicWithinBlock(t *testing.T) {
	for _, pref := range []Alteration{Sharp, Flat} {
		prev := -1.0
		for midi := 0; midi <= MaxPitch; midi++ {
			s, err := Resolve(midi, pref)
			require.NoError(t, err)
			if midi%stepCount == 0 {
				prev = -1
			}
			assert.GreaterOrEqual(t, s.Line, prev, "midi %d", midi)
			prev = s.Line
		}
	}
}

func TestResolveBlockSpansSevenLines(t *testing.T) {
	for _, pref := range []Alteration{Sharp, Flat} {
		for midi := 0; midi+stepCount <= MaxPitch; midi++ {
			lo, _ := Resolve(midi, pref)
			hi, _ := Resolve(midi+stepCount, pref)
			assert.Equal(t, lo.Line+7, hi.Line, "midi %d", midi)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, pref := range []Alteration{Sharp, Flat} {
		for midi := 0; midi <= MaxPitch; midi++ {
			s, err := Resolve(midi, pref)
			require.NoError(t, err)
			p, alt, err := ParseName(s.Name)
			require.NoError(t, err, s.Name)
			assert.Equal(t, Pitch(midi), p, s.Name)
			assert.Equal(t, s.Alteration, alt, s.Name)
		}
	}
}

func TestParse(t *testing.T) {
	p, _, err := Parse("60")
	require.NoError(t, err)
	assert.Equal(t, Pitch(60), p)

	p, alt, err := Parse("Gb3")
	require.NoError(t, err)
	assert.Equal(t, Pitch(66), p)
	assert.Equal(t, Flat, alt)

	for _, bad := range []string{"", "H3", "C", "C#x", "200", "-3", "G9"} {
		_, _, err := Parse(bad)
		assert.True(t, errors.Is(err, ErrInvalidPitch), bad)
	}
}

func TestParseSpelled(t *testing.T) {
	tests := []struct {
		in   string
		pref Alteration
		midi Pitch
		want Spec
	}{
		{"Gb3", Sharp, 66, Spec{19.5, Flat, "Gb3"}},
		{"F#3", Flat, 66, Spec{19.0, Sharp, "F#3"}},
		{"66", Flat, 66, Spec{19.5, Flat, "Gb3"}},
		{"66", Sharp, 66, Spec{19.0, Sharp, "F#3"}},
		{"C3", Flat, 60, Spec{17.5, Natural, "C3"}},
	}
	for _, tt := range tests {
		p, got, err := ParseSpelled(tt.in, tt.pref)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.midi, p, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, _, err := ParseSpelled("H3", Sharp)
	assert.True(t, errors.Is(err, ErrInvalidPitch))
}

func TestParseAlteration(t *testing.T) {
	a, err := ParseAlteration("FLAT")
	require.NoError(t, err)
	assert.Equal(t, Flat, a)

	a, err = ParseAlteration("")
	require.NoError(t, err)
	assert.Equal(t, Sharp, a)

	_, err = ParseAlteration("double-sharp")
	assert.Error(t, err)
}

func TestEventNoteOn(t *testing.T) {
	assert.True(t, Event{On: true, Key: 60, Velocity: 90}.NoteOn())
	assert.False(t, Event{On: true, Key: 60}.NoteOn())
	assert.False(t, Event{Key: 60, Velocity: 90}.NoteOn())
}
