package midiin

import (
	"bytes"
	"errors"
	"io"

	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midimessage/realtime"
	"github.com/gomidi/midi/midireader"
	"github.com/minikomi/staffnote/internal/note"
)

// Decode extracts the note events from a chunk of live MIDI data. Other
// messages are skipped.
func Decode(data []byte) ([]note.Event, error) {
	rd := midireader.New(bytes.NewReader(data), func(realtime.Message) {})
	var evs []note.Event
	for {
		msg, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return evs, nil
		}
		if err != nil {
			return evs, err
		}
		if ev, ok := eventOf(msg); ok {
			evs = append(evs, ev)
		}
	}
}

func eventOf(msg midi.Message) (note.Event, bool) {
	switch m := msg.(type) {
	case channel.NoteOn:
		return note.Event{On: true, Channel: m.Channel(), Key: note.Pitch(m.Key()), Velocity: m.Velocity()}, true
	case channel.NoteOff:
		return note.Event{Channel: m.Channel(), Key: note.Pitch(m.Key())}, true
	case channel.NoteOffVelocity:
		return note.Event{Channel: m.Channel(), Key: note.Pitch(m.Key())}, true
	}
	return note.Event{}, false
}
