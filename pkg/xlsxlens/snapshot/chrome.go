package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// InstallHint is attached to errors caused by a missing browser.
const InstallHint = "install Google Chrome or Chromium, or set image.browser_path in the configuration"

// Chrome rasterizes documents with a headless Chrome instance driven over
// the DevTools protocol. A new browser is started for every call.
type Chrome struct {
	execPath string
	timeout  time.Duration
	log      *zap.Logger
}

// NewChrome returns a rasterizer using the browser at execPath, or the first
// Chrome/Chromium found on the system when execPath is empty. A zero timeout
// disables the per-call deadline.
func NewChrome(execPath string, timeout time.Duration, log *zap.Logger) *Chrome {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chrome{execPath: execPath, timeout: timeout, log: log.Named("chrome")}
}

// Rasterize loads htmlPath and writes a PNG screenshot to pngPath.
func (c *Chrome) Rasterize(ctx context.Context, htmlPath, pngPath string, vp Viewport) error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", vp.Width, vp.Height)
	}
	if c.execPath != "" {
		if _, err := os.Stat(c.execPath); err != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}
	target := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(vp.Width, vp.Height),
	)
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(c.log.Sugar().Debugf),
		chromedp.WithErrorf(c.log.Sugar().Debugf),
	)
	defer cancelBrowser()

	var (
		buf     []byte
		capture chromedp.Action = chromedp.CaptureScreenshot(&buf)
	)
	if vp.FullPage {
		capture = chromedp.FullScreenshot(&buf, 100)
	}

	c.log.Debug("Capturing screenshot", zap.String("url", target), zap.Int("width", vp.Width), zap.Int("height", vp.Height), zap.Bool("full_page", vp.FullPage))
	if err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(vp.Width), int64(vp.Height)),
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		capture,
	); err != nil {
		if isMissingBrowser(err) {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("unable to capture screenshot: %w", err)
	}

	if err := os.WriteFile(pngPath, buf, 0644); err != nil {
		return fmt.Errorf("unable to write screenshot: %w", err)
	}
	return nil
}

func isMissingBrowser(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}
