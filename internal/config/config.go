// Package config holds the program settings read from a YAML file and
// overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/minikomi/staffnote/internal/note"
	"github.com/minikomi/staffnote/internal/raster"
	"github.com/minikomi/staffnote/internal/staff"
	"gopkg.in/yaml.v3"
)

var ErrUnknownValue = errors.New("unknown config value")

type Window struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
}

type Config struct {
	MaxVisibleLines int    `yaml:"max_visible_lines"`
	Clef            string `yaml:"clef"`
	Alteration      string `yaml:"alteration"`

	GlyphDir string  `yaml:"glyph_dir,omitempty"`
	Font     string  `yaml:"font,omitempty"`
	FontSize float64 `yaml:"font_size"`

	// MIDIInput selects the first input port whose name has this prefix.
	MIDIInput string `yaml:"midi_input,omitempty"`
	// MIDIThru echoes received notes to the output port with this prefix.
	MIDIThru string `yaml:"midi_thru,omitempty"`
	Octave   int    `yaml:"octave"`

	Window     Window `yaml:"window"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

func Default() Config {
	return Config{
		MaxVisibleLines: staff.DefaultMaxVisibleLines,
		Clef:            staff.Treble.String(),
		Alteration:      "sharp",
		FontSize:        24,
		Octave:          5,
		Window:          Window{Width: 800, Height: 600},
		Background:      "#e1e1e1",
		Foreground:      "#000000",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Staff converts the staff settings into a validated staff.Config.
func (c Config) Staff() (staff.Config, error) {
	clef, err := staff.ParseClef(c.Clef)
	if err != nil {
		return staff.Config{}, fmt.Errorf("%w: %v", ErrUnknownValue, err)
	}
	alt, err := note.ParseAlteration(c.Alteration)
	if err != nil {
		return staff.Config{}, fmt.Errorf("%w: %v", ErrUnknownValue, err)
	}
	return staff.NewConfig(c.MaxVisibleLines, clef, alt)
}

func (c Config) Theme() raster.Theme {
	t := raster.DefaultTheme()
	if c.Background != "" {
		t.Background = gg.Hex(c.Background)
	}
	if c.Foreground != "" {
		t.Foreground = gg.Hex(c.Foreground)
	}
	t.Font = c.Font
	if c.FontSize > 0 {
		t.FontSize = c.FontSize
	}
	return t
}
