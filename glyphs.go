package main

import (
	"os"

	"github.com/minikomi/staffnote/internal/glyph"
	"github.com/minikomi/staffnote/internal/scene"
)

// newStaff builds the staff described by cfg. Glyphs come from the glyph
// directory when one is set, with the builtin set filling the gaps. When
// export is true the builtin glyphs are written to a temporary directory so
// they can be loaded as textures; the returned cleanup removes it.
func newStaff(export bool) (*scene.Staff, func(), error) {
	cleanup := func() {}
	sc, err := cfg.Staff()
	if err != nil {
		return nil, cleanup, err
	}
	builtin := glyph.NewBuiltin()
	if export {
		dir, err := os.MkdirTemp("", "staffnote-glyphs")
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { os.RemoveAll(dir) }
		if _, err := builtin.Export(dir); err != nil {
			return nil, cleanup, err
		}
	}
	var src glyph.Source = builtin
	if cfg.GlyphDir != "" {
		src = glyph.Fallback{glyph.Dir(cfg.GlyphDir), builtin}
	}
	s, err := scene.New(sc, src)
	return s, cleanup, err
}
