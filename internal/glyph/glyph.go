// Package glyph supplies the symbols a staff is drawn with.
//
// A glyph is identified by its Kind and delivered as a Handle. Sources may
// load images from disk (Dir) or draw them procedurally (Builtin). A Handle
// without an image is blank: renderers skip it and layout treats it as
// having no width.
package glyph

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrAssetMissing is returned when a source cannot supply a glyph.
var ErrAssetMissing = errors.New("glyph asset missing")

type Kind uint8

const (
	TrebleClef Kind = iota
	BassClef
	NoteHead
	Sharp
	Flat
	kindCount
)

// Kinds lists every glyph a staff may need.
var Kinds = [...]Kind{TrebleClef, BassClef, NoteHead, Sharp, Flat}

var kindNames = [kindCount]string{"treble_clef", "bass_clef", "note_head", "sharp", "flat"}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// File is the file name the glyph is stored under.
func (k Kind) File() string {
	return k.String() + ".png"
}

// Handle is an opaque reference to a renderable glyph.
type Handle struct {
	kind Kind
	img  *gg.ImageBuf
	path string
}

func NewHandle(k Kind, img *gg.ImageBuf, path string) *Handle {
	return &Handle{kind: k, img: img, path: path}
}

// Blank returns the empty placeholder for k.
func Blank(k Kind) *Handle {
	return &Handle{kind: k}
}

func (h *Handle) Kind() Kind { return h.kind }

func (h *Handle) IsBlank() bool {
	return h == nil || h.img == nil || h.img.IsEmpty()
}

// Image is nil for blank handles.
func (h *Handle) Image() *gg.ImageBuf {
	if h.IsBlank() {
		return nil
	}
	return h.img
}

// Path is the file the glyph was loaded from or exported to, if any.
func (h *Handle) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}

// Aspect is width over height, 0 for blank handles.
func (h *Handle) Aspect() float64 {
	if h.IsBlank() {
		return 0
	}
	w, ht := h.img.Bounds()
	if ht == 0 {
		return 0
	}
	return float64(w) / float64(ht)
}

// Source supplies glyph handles.
type Source interface {
	Glyph(k Kind) (*Handle, error)
}

// Fallback tries each source in order.
type Fallback []Source

func (f Fallback) Glyph(k Kind) (*Handle, error) {
	var errs []error
	for _, src := range f {
		h, err := src.Glyph(k)
		if err == nil {
			return h, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: %s: no sources", ErrAssetMissing, k)
	}
	return nil, errors.Join(errs...)
}
