package snapshot

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.New(w, h, color.White), imaging.PNG); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func widthOf(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestPostprocess(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		maxWidth int
		wantW    int
		wantH    int
	}{
		{"no limit", 400, 200, 0, 400, 200},
		{"narrow enough", 400, 200, 400, 400, 200},
		{"downscaled", 400, 200, 100, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Postprocess(pngOf(t, tt.w, tt.h), tt.maxWidth)
			if err != nil {
				t.Fatalf("Postprocess failed: %v", err)
			}
			if w, h := widthOf(t, out); w != tt.wantW || h != tt.wantH {
				t.Errorf("Got %dx%d, expected %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPostprocessRejectsNonPNG(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("<html></html>"), {0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'}} {
		if _, err := Postprocess(data, 0); !errors.Is(err, ErrNotPNG) {
			t.Errorf("Postprocess(%q) error = %v, expected ErrNotPNG", data, err)
		}
	}
}

func TestPostprocessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, pngOf(t, 300, 30), 0644); err != nil {
		t.Fatal(err)
	}

	if err := PostprocessFile(path, 150); err != nil {
		t.Fatalf("PostprocessFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := widthOf(t, data); w != 150 || h != 15 {
		t.Errorf("Got %dx%d, expected 150x15", w, h)
	}

	if err := PostprocessFile(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestChromeMissingBrowser(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.html")
	if err := os.WriteFile(doc, []byte("<html><body></body></html>"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewChrome(filepath.Join(dir, "no-such-browser"), time.Second, nil)
	err := c.Rasterize(context.Background(), doc, filepath.Join(dir, "out.png"), DefaultViewport())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Rasterize() error = %v, expected ErrUnavailable", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.png")); statErr == nil {
		t.Error("No screenshot should be written")
	}
}

func TestChromeInvalidViewport(t *testing.T) {
	c := NewChrome("", 0, nil)
	if err := c.Rasterize(context.Background(), "doc.html", "out.png", Viewport{Width: 0, Height: 10}); err == nil {
		t.Error("Expected error for invalid viewport")
	}
}
