package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 width at 96dpi; the capture viewport is pinned to this so the raster
// matches the printed page geometry.
const a4PixelWidth = 794

// ChromedpRenderer drives a headless browser for the two operations that
// need real layout: full-page raster capture and the native print path.
type ChromedpRenderer struct {
	// SettleDelay gives fonts and images time to finish loading after the
	// document is ready, before any capture.
	SettleDelay time.Duration
}

func NewChromedpRenderer() *ChromedpRenderer {
	return &ChromedpRenderer{SettleDelay: 300 * time.Millisecond}
}

// mountHTML writes the document into a temporary directory so the browser
// can load it over file://. The returned cleanup always removes the mount.
func mountHTML(html string) (url string, cleanup func(), err error) {
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return "", nil, err
	}
	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		os.RemoveAll(tmpDir)
		return "", nil, err
	}
	return "file://" + htmlPath, func() { os.RemoveAll(tmpDir) }, nil
}

func (r *ChromedpRenderer) newBrowserContext(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	tctx, cancelTimeout := context.WithTimeout(cctx, 60*time.Second)
	return tctx, func() {
		cancelTimeout()
		cancelCtx()
		cancelAlloc()
	}
}

// CaptureFullPage renders the document off-screen and rasterizes the whole
// page at 2x pixel density into a single tall bitmap.
func (r *ChromedpRenderer) CaptureFullPage(ctx context.Context, html string) (image.Image, error) {
	url, cleanup, err := mountHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cctx, cancel := r.newBrowserContext(ctx)
	defer cancel()

	var shot []byte
	err = chromedp.Run(cctx,
		chromedp.EmulateViewport(a4PixelWidth, 1123, chromedp.EmulateScale(2)),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(r.SettleDelay),
		chromedp.FullScreenshot(&shot, 95),
	)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return img, nil
}

// PrintToPDF runs the browser's native print-to-PDF over the document. The
// caller treats this as a one-way command: there is no programmatic
// confirmation beyond the returned bytes.
func (r *ChromedpRenderer) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	url, cleanup, err := mountHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cctx, cancel := r.newBrowserContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(r.SettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
