package xlsxlens

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/analysis"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/snapshot"
)

// Analyze submits the first sheet of the workbook at path to a model and
// writes the analysis text to out (skipped when out is empty). A nil
// analyzer selects Gemini with opts.APIKey, which is checked before any file
// is touched. A nil rasterizer selects headless Chrome.
//
// Text representations cover the whole sheet; the image covers the
// opts.Render window.
func Analyze(ctx context.Context, path, out string, a analysis.Analyzer, r snapshot.Rasterizer, opts Options) (string, error) {
	log := opts.logger()
	if a == nil {
		g, err := analysis.NewGemini(opts.APIKey, opts.Model, log)
		if err != nil {
			return "", &ConfigError{Field: "analysis.api_key", Err: err}
		}
		a = g
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	data, err := extract(path, -1, -1, log)
	if err != nil {
		return "", err
	}

	var img []byte
	if opts.Forms.Image {
		doc, err := renderDocument(data, opts)
		if err != nil {
			return "", err
		}
		log.Info("Converting sheet to image", zap.String("sheet", data.Sheet.Name))
		if img, err = rasterize(ctx, doc, opts.rasterizer(r), opts); err != nil {
			return "", err
		}
	}

	req, err := analysis.BuildRequest(opts.SystemPrompt, data.Sheet.Rows, img, opts.Forms)
	if err != nil {
		return "", err
	}

	log.Info("Sending data for analysis", zap.Int("image_bytes", len(img)), zap.Int("rows", len(data.Sheet.Rows)))
	text, err := a.Analyze(ctx, req)
	if err != nil {
		return "", &CollaboratorError{Collaborator: "model", Err: err}
	}

	if out != "" {
		if err := os.WriteFile(out, []byte(text), 0644); err != nil {
			return "", fmt.Errorf("unable to write analysis: %w", err)
		}
		log.Info("Analysis saved", zap.String("path", out))
	}
	return text, nil
}
