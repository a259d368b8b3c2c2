package xlsxlens

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

// OutputName returns the default output path for src: the slug of the file
// name without its extension, with ext appended, next to src.
func OutputName(src, ext string) string {
	base := filepath.Base(src)
	name := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = "output"
	}
	return filepath.Join(filepath.Dir(src), name+ext)
}
