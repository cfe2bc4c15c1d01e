package main

import (
	"fmt"

	"github.com/minikomi/staffnote/internal/note"
	"github.com/minikomi/staffnote/internal/scene"
	"github.com/minikomi/staffnote/internal/staff"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	winTitle  = "🎼"
	midiInput string
	noMIDI    bool
)

func init() {
	showCmd.Flags().StringVar(&midiInput, "midi-input", "", "connect to the MIDI input whose name starts with this")
	showCmd.Flags().BoolVar(&noMIDI, "no-midi", false, "only use the computer keyboard")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open a window showing the current note",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("midi-input") {
			cfg.MIDIInput = midiInput
		}
		return run()
	},
}

func run() error {
	s, cleanup, err := newStaff(true)
	defer cleanup()
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(winTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Window.Width, cfg.Window.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Destroy()

	var font *ttf.Font
	if cfg.Font != "" {
		if err := ttf.Init(); err != nil {
			return err
		}
		defer ttf.Quit()
		font, err = ttf.OpenFont(cfg.Font, int(cfg.FontSize))
		if err != nil {
			return fmt.Errorf("failed to open font: %w", err)
		}
		defer font.Close()
	}
	scr := newScreen(renderer, font)
	defer scr.Destroy()

	// midi
	var events <-chan note.Event
	var thru func(note.Event)
	if !noMIDI {
		m, err := openMIDI()
		if err != nil {
			log.Warn("MIDI unavailable, using the computer keyboard", "err", err)
		} else {
			defer m.Close()
			if m.listener != nil {
				events = m.listener.Events()
			}
			if m.thru != nil {
				thru = func(ev note.Event) {
					if err := m.thru.Forward(ev); err != nil {
						log.Debug("thru", "err", err)
					}
				}
			}
		}
	}

	kb := newKeyboard(cfg.Octave)
	apply := func(ev note.Event) {
		if err := s.Apply(ev); err != nil {
			log.Warn("ignoring note", "event", ev.String(), "err", err)
		}
	}

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.KeyboardEvent:
				if nev, ok := kb.handle(ev); ok {
					apply(nev)
					if thru != nil {
						thru(nev)
					}
				}
			case *sdl.QuitEvent:
				running = false
			}
		}
	drain:
		for {
			select {
			case ev := <-events:
				apply(ev)
			default:
				break drain
			}
		}

		w, h, err := renderer.GetOutputSize()
		if err != nil {
			return err
		}
		cmds, err := s.Frame(staff.RectFromSize(float64(w), float64(h)))
		if err != nil {
			log.Debug("layout", "err", err)
		}
		scr.Draw(cmds, label(s))
		sdl.Delay(16)
	}
	return nil
}

func label(s *scene.Staff) string {
	p, ok := s.Note()
	if !ok {
		return ""
	}
	spec, err := p.Spec(s.Config().Preference)
	if err != nil {
		return ""
	}
	return spec.Name
}
