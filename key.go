package main

import (
	"github.com/minikomi/staffnote/internal/note"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	minOctave = 2
	maxOctave = 9
)

var keyToNote = map[sdl.Keycode]note.Modifier{
	sdl.K_a: note.C,
	sdl.K_w: note.CSharp,
	sdl.K_s: note.D,
	sdl.K_e: note.DSharp,
	sdl.K_d: note.E,
	sdl.K_f: note.F,
	sdl.K_t: note.FSharp,
	sdl.K_g: note.G,
	sdl.K_y: note.GSharp,
	sdl.K_h: note.A,
	sdl.K_u: note.ASharp,
	sdl.K_j: note.B,
	// high octave
	sdl.K_k:         note.HC,
	sdl.K_o:         note.HCSharp,
	sdl.K_l:         note.HD,
	sdl.K_p:         note.HDSharp,
	sdl.K_SEMICOLON: note.HE,
}

var keyToCommand = map[sdl.Keycode]string{
	sdl.K_COMMA:  "octave down",
	sdl.K_PERIOD: "octave up",
}

// keyboard plays notes from the computer keyboard.
type keyboard struct {
	octave int
	active map[sdl.Keycode]note.Pitch
}

func newKeyboard(octave int) *keyboard {
	if octave < minOctave || octave > maxOctave {
		octave = 5
	}
	return &keyboard{octave: octave, active: map[sdl.Keycode]note.Pitch{}}
}

// handle turns a key press or release into a note event.
func (k *keyboard) handle(ev *sdl.KeyboardEvent) (note.Event, bool) {
	kc := ev.Keysym.Sym

	modifier, notePressed := keyToNote[kc]
	command, commandPressed := keyToCommand[kc]

	switch {
	case notePressed:
		// first keydown = ev.State = 1, ev.Repeat = 0
		switch {
		case ev.State == 1 && ev.Repeat == 0:
			p := note.FromOctave(modifier, k.octave)
			if !p.Valid() {
				return note.Event{}, false
			}
			k.active[kc] = p
			return note.Event{On: true, Key: p, Velocity: 90}, true
		case ev.State == 0:
			p, ok := k.active[kc]
			if !ok {
				return note.Event{}, false
			}
			delete(k.active, kc)
			return note.Event{Key: p}, true
		}
	case commandPressed && ev.State == 1 && ev.Repeat == 0:
		switch command {
		case "octave down":
			if k.octave > minOctave {
				k.octave--
			}
		case "octave up":
			if k.octave < maxOctave {
				k.octave++
			}
		}
		log.Debug("octave", "octave", k.octave)
	}
	return note.Event{}, false
}
