package midiin

import (
	"fmt"
	"io"
	"sync"

	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
	"github.com/minikomi/staffnote/internal/note"
)

// Writer sends notes to a MIDI output and refuses to start a running note
// or stop a silent one. It is safe for concurrent use.
type Writer struct {
	mu              sync.Mutex
	wr              midi.Writer
	ch              channel.Channel
	noteState       [16][128]bool
	noConsolidation bool
}

func NewWriter(dest io.Writer, options ...midiwriter.Option) *Writer {
	options = append(
		[]midiwriter.Option{
			midiwriter.NoRunningStatus(),
		}, options...)

	wr := midiwriter.New(dest, options...)
	return &Writer{wr: wr, ch: channel.Channel0}
}

// Sender is the sending half of an output port.
type Sender interface {
	Send([]byte) error
}

type outWriter struct {
	out Sender
}

func (w *outWriter) Write(b []byte) (int, error) {
	return len(b), w.out.Send(b)
}

// WriteTo returns a Writer sending to an open output port.
func WriteTo(out Sender) *Writer {
	return NewWriter(&outWriter{out})
}

// PassThrough returns a Writer that sends every message as is, for
// mirroring an input whose note pairing is the device's business.
func PassThrough(out Sender) *Writer {
	w := WriteTo(out)
	w.noConsolidation = true
	return w
}

func (w *Writer) NoteOn(key, velocity uint8) error {
	return w.Write(w.ch.NoteOn(key, velocity))
}

func (w *Writer) NoteOff(key uint8) error {
	return w.Write(w.ch.NoteOff(key))
}

// Forward replays ev on the writer's channel.
func (w *Writer) Forward(ev note.Event) error {
	if !ev.Key.Valid() {
		return fmt.Errorf("%w: %d", note.ErrInvalidPitch, uint8(ev.Key))
	}
	if ev.NoteOn() {
		return w.NoteOn(uint8(ev.Key), ev.Velocity)
	}
	return w.NoteOff(uint8(ev.Key))
}

func (w *Writer) Write(msg midi.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.noConsolidation {
		return w.wr.Write(msg)
	}
	switch m := msg.(type) {
	case channel.NoteOn:
		if m.Velocity() > 0 && w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note already running", msg)
		}
		if m.Velocity() == 0 && !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = m.Velocity() > 0
	case channel.NoteOff:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	case channel.NoteOffVelocity:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	}
	return w.wr.Write(msg)
}
