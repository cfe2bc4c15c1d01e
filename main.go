package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/minikomi/staffnote/internal/config"
	"github.com/minikomi/staffnote/internal/scene"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	maxLines   int
	clef       string
	alteration string
	glyphDir   string

	cfg config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "staffnote",
	Short: "Show the note you play on a staff",
	Long: `staffnote draws the last note received from a MIDI input or the
computer keyboard on a five-line staff, with ledger lines and accidentals.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		scene.SetLogger(log)
		gg.SetLogger(log)

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("max-lines") {
			cfg.MaxVisibleLines = maxLines
		}
		if flags.Changed("clef") {
			cfg.Clef = clef
		}
		if flags.Changed("alteration") {
			cfg.Alteration = alteration
		}
		if flags.Changed("glyphs") {
			cfg.GlyphDir = glyphDir
		}
		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&configPath, "config", "c", "staffnote.yaml", "config file")
	f.BoolVarP(&verbose, "verbose", "v", false, "log note events")
	f.IntVar(&maxLines, "max-lines", 11, "visible line slots, odd and at least 5")
	f.StringVar(&clef, "clef", "treble", "treble, bass or auto")
	f.StringVar(&alteration, "alteration", "sharp", "spell black keys as sharp or flat")
	f.StringVar(&glyphDir, "glyphs", "", "directory of glyph PNG files")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
