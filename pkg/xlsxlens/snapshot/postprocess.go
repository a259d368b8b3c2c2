package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
)

// ErrNotPNG indicates that the rasterizer produced something other than a PNG image.
var ErrNotPNG = errors.New("screenshot is not a PNG image")

// Postprocess verifies that data is a PNG image and downscales it to
// maxWidth keeping the aspect ratio. Images already narrow enough, or a
// maxWidth of zero, leave data untouched.
func Postprocess(data []byte, maxWidth int) ([]byte, error) {
	if !filetype.Is(data, "png") {
		return nil, ErrNotPNG
	}
	if maxWidth <= 0 {
		return data, nil
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode screenshot: %w", err)
	}
	if cfg.Width <= maxWidth {
		return data, nil
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode screenshot: %w", err)
	}
	return encode(imaging.Resize(img, maxWidth, 0, imaging.Lanczos))
}

// PostprocessFile applies Postprocess to the file at path in place.
func PostprocessFile(path string, maxWidth int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := Postprocess(data, maxWidth)
	if err != nil {
		return err
	}
	if bytes.Equal(out, data) {
		return nil
	}
	return os.WriteFile(path, out, 0644)
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, fmt.Errorf("unable to encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}
