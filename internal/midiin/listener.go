// Package midiin captures note events from MIDI input ports and hands them
// to the render loop.
package midiin

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gomidi/connect"
	"github.com/minikomi/staffnote/internal/note"
	driver "github.com/minikomi/rtmididrv"
)

const DefaultBuffer = 256

// Input is the part of a connect.In port the listener needs.
type Input interface {
	Open() error
	Close() error
	IsOpen() bool
	String() string
	SetListener(func(data []byte, deltaMicroseconds int64)) error
	StopListening() error
}

// Listener decodes the data arriving on an input port. Events are queued
// for the consumer and dropped when the queue is full.
type Listener struct {
	in     Input
	events chan note.Event
	thru   *Writer
	log    *slog.Logger
}

type Option func(*Listener)

// WithThru forwards every received note to w.
func WithThru(w *Writer) Option {
	return func(l *Listener) { l.thru = w }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Listener) { l.log = log }
}

func WithBuffer(n int) Option {
	return func(l *Listener) { l.events = make(chan note.Event, n) }
}

// Listen opens in if needed and starts decoding its data.
func Listen(in Input, opts ...Option) (*Listener, error) {
	l := &Listener{in: in, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(l)
	}
	if l.events == nil {
		l.events = make(chan note.Event, DefaultBuffer)
	}
	if !in.IsOpen() {
		if err := in.Open(); err != nil {
			return nil, fmt.Errorf("opening MIDI input %s failed: %w", in, err)
		}
	}
	if err := in.SetListener(l.handle); err != nil {
		in.Close()
		return nil, fmt.Errorf("listening to MIDI input %s failed: %w", in, err)
	}
	l.log.Info("listening", "port", in.String())
	return l, nil
}

func (l *Listener) handle(data []byte, deltaMicroseconds int64) {
	evs, err := Decode(data)
	if err != nil {
		l.log.Warn("bad MIDI data", "port", l.in.String(), "err", err)
	}
	for _, ev := range evs {
		if l.thru != nil {
			if err := l.thru.Forward(ev); err != nil {
				l.log.Debug("thru", "err", err)
			}
		}
		select {
		case l.events <- ev:
		default:
			l.log.Warn("event queue full, dropping", "event", ev.String())
		}
	}
}

// Events delivers decoded note events in arrival order.
func (l *Listener) Events() <-chan note.Event {
	return l.events
}

func (l *Listener) Close() error {
	if err := l.in.StopListening(); err != nil {
		return err
	}
	return l.in.Close()
}

// Driver wraps the rtmidi driver.
type Driver struct {
	drv *driver.Driver
}

func NewDriver() (*Driver, error) {
	drv, err := driver.New()
	if err != nil {
		return nil, fmt.Errorf("MIDI driver: %w", err)
	}
	return &Driver{drv: drv}, nil
}

func (d *Driver) Ins() ([]connect.In, error)   { return d.drv.Ins() }
func (d *Driver) Outs() ([]connect.Out, error) { return d.drv.Outs() }
func (d *Driver) Close() error                 { return d.drv.Close() }

// FindPort returns the first port whose name starts with prefix. An empty
// prefix matches the first port.
func FindPort[P connect.Port](ports []P, prefix string) (P, bool) {
	for _, p := range ports {
		if strings.HasPrefix(p.String(), prefix) {
			return p, true
		}
	}
	var zero P
	return zero, false
}

func PrintPort(w io.Writer, port connect.Port) {
	fmt.Fprintf(w, "[%v] %s\n", port.Number(), port.String())
}

func PrintInPorts(w io.Writer, ports []connect.In) {
	fmt.Fprintf(w, "MIDI IN Ports\n")
	for _, port := range ports {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}

func PrintOutPorts(w io.Writer, ports []connect.Out) {
	fmt.Fprintf(w, "MIDI OUT Ports\n")
	for _, port := range ports {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}
