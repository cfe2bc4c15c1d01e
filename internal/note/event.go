package note

import "fmt"

// Event is a decoded note-on or note-off message.
type Event struct {
	On       bool
	Channel  uint8
	Key      Pitch
	Velocity uint8
}

// NoteOn reports whether the event starts a note. A note-on with zero
// velocity is a note-off.
func (e Event) NoteOn() bool {
	return e.On && e.Velocity > 0
}

func (e Event) String() string {
	if e.NoteOn() {
		return fmt.Sprintf("on ch%d %s vel %d", e.Channel, e.Key, e.Velocity)
	}
	return fmt.Sprintf("off ch%d %s", e.Channel, e.Key)
}
