package xlsxlens

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/markup"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/models"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/render"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/snapshot"
)

// RenderHTML converts the first sheet of the workbook at path into a
// self-contained HTML document carrying the sheet's cell formatting.
func RenderHTML(path string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	data, err := Extract(path, opts)
	if err != nil {
		return "", err
	}
	return renderDocument(data, opts)
}

// RenderImage renders the workbook at path and rasterizes the document into
// a PNG written to out. A nil rasterizer selects headless Chrome. Temporary
// files are removed on every exit path.
func RenderImage(ctx context.Context, path, out string, r snapshot.Rasterizer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	data, err := Extract(path, opts)
	if err != nil {
		return err
	}
	doc, err := renderDocument(data, opts)
	if err != nil {
		return err
	}
	img, err := rasterize(ctx, doc, opts.rasterizer(r), opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, img, 0644); err != nil {
		return fmt.Errorf("unable to write image: %w", err)
	}
	opts.logger().Info("Image saved", zap.String("path", out))
	return nil
}

// renderDocument renders the sheet window and overlays the cell formatting.
func renderDocument(data *models.WorkbookData, opts Options) (string, error) {
	doc, err := render.Render(data.Sheet.Rows, opts.Render)
	if err != nil {
		return "", &ConfigError{Field: "render", Err: err}
	}
	styled, count, err := markup.NewSynthesizer(opts.logger()).Apply([]byte(doc), data.Sheet.Values, data.Sheet.Rich)
	if err != nil {
		return "", fmt.Errorf("unable to apply cell formatting: %w", err)
	}
	opts.logger().Debug("Document rendered", zap.String("sheet", data.Sheet.Name), zap.Int("styled_cells", count))
	return string(styled), nil
}

// rasterize writes doc to a temporary file, captures it and returns the
// post-processed PNG.
func rasterize(ctx context.Context, doc string, r snapshot.Rasterizer, opts Options) (img []byte, err error) {
	log := opts.logger()
	htmlPath, pngPath := tempName(".html"), tempName(".png")
	defer cleanup(log, htmlPath, pngPath)

	if err := os.WriteFile(htmlPath, []byte(doc), 0644); err != nil {
		return nil, fmt.Errorf("unable to write temporary document: %w", err)
	}
	if err := r.Rasterize(ctx, htmlPath, pngPath, opts.Viewport); err != nil {
		ce := &CollaboratorError{Collaborator: "rasterizer", Err: err}
		if errors.Is(err, snapshot.ErrUnavailable) {
			ce.Hint = snapshot.InstallHint
		}
		return nil, ce
	}

	data, err := os.ReadFile(pngPath)
	if err != nil {
		return nil, &CollaboratorError{Collaborator: "rasterizer", Err: err}
	}
	if img, err = snapshot.Postprocess(data, opts.MaxWidth); err != nil {
		return nil, &CollaboratorError{Collaborator: "rasterizer", Err: err}
	}
	return img, nil
}

// tempName returns a collision free path in the system temporary directory.
func tempName(ext string) string {
	return filepath.Join(os.TempDir(), "xlsxlens-"+uuid.NewString()+ext)
}

// cleanup removes temporary files. Failures are only logged.
func cleanup(log *zap.Logger, paths ...string) {
	var err error
	for _, p := range paths {
		if e := os.Remove(p); e != nil && !errors.Is(e, fs.ErrNotExist) {
			err = multierr.Append(err, e)
		}
	}
	if err != nil {
		log.Warn("Unable to remove temporary files", zap.Error(err))
	}
}
