package main

import (
	"fmt"
	"os"

	"github.com/minikomi/staffnote/internal/note"
	"github.com/minikomi/staffnote/internal/raster"
	"github.com/minikomi/staffnote/internal/staff"
	"github.com/spf13/cobra"
)

var (
	outPath      string
	renderWidth  int
	renderHeight int
)

func init() {
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "staff.png", "output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 800, "image width")
	renderCmd.Flags().IntVar(&renderHeight, "height", 600, "image height")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(nameCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [NOTE]",
	Short: "Render a staff to a PNG file",
	Long:  `Render the staff showing NOTE, a MIDI number or a name such as "F#3", without opening a window. A name written with '#' or 'b' keeps its spelling, otherwise --alteration decides. With no NOTE the empty staff is rendered.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			p     note.Pitch
			label string
		)
		if len(args) == 1 {
			sc, err := cfg.Staff()
			if err != nil {
				return err
			}
			var spec note.Spec
			p, spec, err = note.ParseSpelled(args[0], sc.Preference)
			if err != nil {
				return err
			}
			// draw the accidental the name was written with
			if spec.Alteration != note.Natural {
				cfg.Alteration = spec.Alteration.String()
			}
			label = spec.Name
		}
		s, cleanup, err := newStaff(false)
		defer cleanup()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			if err := s.SetNote(int(p)); err != nil {
				return err
			}
		}
		cmds, err := s.Frame(staff.RectFromSize(float64(renderWidth), float64(renderHeight)))
		if err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if err := raster.WritePNG(f, cmds, renderWidth, renderHeight, cfg.Theme(), label); err != nil {
			f.Close()
			return err
		}
		log.Info("rendered", "file", outPath, "note", label)
		return f.Close()
	},
}

var nameCmd = &cobra.Command{
	Use:   "name NOTE...",
	Short: "Print the staff line, accidental and name of notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := cfg.Staff()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, arg := range args {
			p, spec, err := note.ParseSpelled(arg, sc.Preference)
			if err != nil {
				return err
			}
			diff := spec.Line - staff.ReferenceLine(sc.ClefFor(&p))
			fmt.Fprintf(out, "%d\t%s\tline %.1f\tstaff %+.1f\tledgers %d\n",
				p, spec.Name, spec.Line, diff, len(staff.LedgerIndices(diff)))
		}
		return nil
	},
}
