// Package xlsxlens converts the first sheet of a workbook into a styled HTML
// table, a screenshot of that table and text representations, and submits
// them to a language model for analysis.
package xlsxlens

import (
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/analysis"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/config"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/render"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/snapshot"
)

// Options configures conversion and analysis.
type Options struct {
	// Render configures the rendered table and its row/column window.
	Render render.Options
	// Viewport is the browser window used for screenshots.
	Viewport snapshot.Viewport
	// MaxWidth downscales wider screenshots; 0 keeps the captured width.
	MaxWidth int
	// BrowserPath selects the browser used by the default rasterizer.
	BrowserPath string
	// Timeout bounds a single screenshot of the default rasterizer.
	Timeout time.Duration
	// Model is the model used by the default analyzer.
	Model string
	// SystemPrompt overrides the built-in analysis prompt.
	SystemPrompt string
	// Forms selects the representations sent for analysis.
	Forms analysis.Forms
	// APIKey is the credential of the default analyzer.
	APIKey string
	// Logger receives diagnostics; nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Render:   render.DefaultOptions(),
		Viewport: snapshot.DefaultViewport(),
		Timeout:  time.Minute,
		Model:    analysis.DefaultModel,
		Forms:    analysis.AllForms(),
	}
}

// NewOptions builds options from a loaded configuration.
func NewOptions(cfg *config.Config, log *zap.Logger) Options {
	return Options{
		Render: cfg.Render,
		Viewport: snapshot.Viewport{
			Width:    cfg.Image.ViewportWidth,
			Height:   cfg.Image.ViewportHeight,
			FullPage: cfg.Image.FullPage,
		},
		MaxWidth:     cfg.Image.MaxWidth,
		BrowserPath:  cfg.Image.BrowserPath,
		Timeout:      cfg.Image.Timeout,
		Model:        cfg.Analysis.Model,
		SystemPrompt: cfg.Analysis.SystemPrompt,
		Forms: analysis.Forms{
			Image:   cfg.Analysis.SendImage,
			Records: cfg.Analysis.SendRecords,
			CSV:     cfg.Analysis.SendCSV,
		},
		APIKey: cfg.Analysis.Credential(),
		Logger: log,
	}
}

// Validate checks the options that would otherwise fail midway.
func (o Options) Validate() error {
	if err := o.Render.Validate(); err != nil {
		return &ConfigError{Field: "render", Err: err}
	}
	if o.Viewport.Width <= 0 || o.Viewport.Height <= 0 {
		return &ConfigError{Field: "viewport", Err: render.ErrInvalidOption}
	}
	if o.MaxWidth < 0 {
		return &ConfigError{Field: "max_width", Err: render.ErrInvalidOption}
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// rasterizer returns r or, when nil, a Chrome rasterizer built from the options.
func (o Options) rasterizer(r snapshot.Rasterizer) snapshot.Rasterizer {
	if r != nil {
		return r
	}
	return snapshot.NewChrome(o.BrowserPath, o.Timeout, o.logger())
}
