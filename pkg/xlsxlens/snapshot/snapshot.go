// Package snapshot rasterizes rendered documents into PNG screenshots.
package snapshot

import (
	"context"
	"errors"
)

// ErrUnavailable indicates that no usable browser could be started.
var ErrUnavailable = errors.New("rasterizer unavailable")

// Viewport is the browser window used for the screenshot.
type Viewport struct {
	Width    int
	Height   int
	FullPage bool
}

// DefaultViewport returns a 1920x1080 full page viewport.
func DefaultViewport() Viewport {
	return Viewport{Width: 1920, Height: 1080, FullPage: true}
}

// Rasterizer turns a local HTML document into a PNG file.
type Rasterizer interface {
	Rasterize(ctx context.Context, htmlPath, pngPath string, vp Viewport) error
}
