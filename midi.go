package main

import (
	"fmt"

	"github.com/minikomi/staffnote/internal/midiin"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, err := midiin.NewDriver()
		if err != nil {
			return err
		}
		defer drv.Close()

		ins, err := drv.Ins()
		if err != nil {
			return err
		}
		outs, err := drv.Outs()
		if err != nil {
			return err
		}
		midiin.PrintInPorts(cmd.OutOrStdout(), ins)
		midiin.PrintOutPorts(cmd.OutOrStdout(), outs)
		return nil
	},
}

// midiSession is the MIDI side of the show command. Either part may be
// missing: the staff still follows the computer keyboard.
type midiSession struct {
	drv      *midiin.Driver
	listener *midiin.Listener
	thru     *midiin.Writer
}

func openMIDI() (*midiSession, error) {
	drv, err := midiin.NewDriver()
	if err != nil {
		return nil, err
	}
	m := &midiSession{drv: drv}

	if cfg.MIDIThru != "" {
		outs, err := drv.Outs()
		if err != nil {
			m.Close()
			return nil, err
		}
		out, ok := midiin.FindPort(outs, cfg.MIDIThru)
		if !ok {
			log.Warn("no MIDI output found", "prefix", cfg.MIDIThru)
		} else if err := out.Open(); err != nil {
			log.Warn("opening MIDI output failed", "port", out.String(), "err", err)
		} else {
			m.thru = midiin.PassThrough(out)
		}
	}

	ins, err := drv.Ins()
	if err != nil {
		m.Close()
		return nil, err
	}
	in, ok := midiin.FindPort(ins, cfg.MIDIInput)
	if !ok {
		log.Warn("no MIDI input found", "prefix", cfg.MIDIInput)
		return m, nil
	}
	opts := []midiin.Option{midiin.WithLogger(log)}
	if m.thru != nil {
		opts = append(opts, midiin.WithThru(m.thru))
	}
	m.listener, err = midiin.Listen(in, opts...)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("MIDI input: %w", err)
	}
	return m, nil
}

func (m *midiSession) Close() {
	if m.listener != nil {
		if err := m.listener.Close(); err != nil {
			log.Warn("closing MIDI input", "err", err)
		}
	}
	m.drv.Close()
}
