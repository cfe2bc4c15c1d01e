package glyph

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
)

// Dir loads glyphs from PNG files named after their kind.
type Dir string

func (d Dir) Glyph(k Kind) (*Handle, error) {
	path := filepath.Join(string(d), k.File())
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, k, err)
	}
	if img.IsEmpty() {
		return nil, fmt.Errorf("%w: %s: empty image %s", ErrAssetMissing, k, path)
	}
	return NewHandle(k, img, path), nil
}
