package capture

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// A4 paper size in inches, the format trek print sheets use
const (
	pdfPaperWidth  = 8.27
	pdfPaperHeight = 11.69
)

const (
	defaultChromeTimeout = 30 * time.Second
	defaultWidth         = 1000
	defaultHeight        = 800
	defaultWaitSelector  = "#map"
)

// ChromedpConfig contains configuration for the chromedp capturer
type ChromedpConfig struct {
	// DefaultTimeout for capture operations
	DefaultTimeout time.Duration
	// RemoteURL is the URL of a remote Chrome/Chromium instance (optional)
	// If empty, chromedp will launch a new browser instance
	RemoteURL string
	// Headless mode (default: true)
	Headless bool
	// DisableGPU disables GPU hardware acceleration (default: true for server environments)
	DisableGPU bool
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	// DefaultWidth of the capture viewport in pixels
	DefaultWidth int
	// DefaultHeight of the capture viewport in pixels
	DefaultHeight int
	// Logger for debug output
	Logger *zap.Logger
}

// ChromedpCapturer captures map screenshots using Chrome DevTools Protocol
type ChromedpCapturer struct {
	config      *ChromedpConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpCapturer creates a new chromedp-based map capturer
func NewChromedpCapturer(config *ChromedpConfig) (*ChromedpCapturer, error) {
	if config == nil {
		config = &ChromedpConfig{}
	}

	// Set defaults
	if config.DefaultTimeout == 0 {
		config.DefaultTimeout = defaultChromeTimeout
	}
	if config.DefaultWidth == 0 {
		config.DefaultWidth = defaultWidth
	}
	if config.DefaultHeight == 0 {
		config.DefaultHeight = defaultHeight
	}
	// Default to headless and disable GPU for server environments
	if !config.Headless {
		config.Headless = true
	}
	if !config.DisableGPU {
		config.DisableGPU = true
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	capturer := &ChromedpCapturer{
		config: config,
		logger: logger,
	}

	capturer.initAllocator()

	return capturer, nil
}

// initAllocator initializes the Chrome allocator
func (c *ChromedpCapturer) initAllocator() {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.config.Headless),
		chromedp.Flag("disable-gpu", c.config.DisableGPU),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // Important for Docker
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		// Tile rendering must not depend on installed fonts
		chromedp.Flag("font-render-hinting", "none"),
	)

	if c.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	if c.config.RemoteURL != "" {
		c.allocCtx, c.allocCancel = chromedp.NewRemoteAllocator(context.Background(), c.config.RemoteURL)
	} else {
		c.allocCtx, c.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}
}

// CaptureMap navigates to the given map page and captures a PNG screenshot
// of the full viewport once the map container is visible.
func (c *ChromedpCapturer) CaptureMap(ctx context.Context, req *CaptureRequest) (*CaptureResult, error) {
	if req == nil {
		return nil, NewCaptureError(ErrCodeInvalidURL, "capture request is nil", nil)
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, NewCaptureError(ErrCodeInvalidURL, "capture URL is empty", nil)
	}

	startTime := time.Now()

	width := req.Width
	if width <= 0 {
		width = c.config.DefaultWidth
	}
	height := req.Height
	if height <= 0 {
		height = c.config.DefaultHeight
	}
	selector := req.WaitSelector
	if selector == "" {
		selector = defaultWaitSelector
	}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = c.config.DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(c.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			c.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	var pngData []byte

	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(req.URL),
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.CaptureScreenshot(&pngData),
	)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, NewCaptureError(ErrCodeCaptureTimeout,
				fmt.Sprintf("map capture timed out after %v", timeout), err)
		}
		if ctx.Err() == context.Canceled {
			return nil, NewCaptureError(ErrCodeCaptureTimeout, "map capture was cancelled", err)
		}

		c.logger.Error("chromedp capture failed", zap.Error(err))
		return nil, NewCaptureError(ErrCodeCaptureFailed, "chromedp execution failed: "+err.Error(), err)
	}

	if len(pngData) == 0 {
		return nil, NewCaptureError(ErrCodeEmptyImage, "captured image is empty", nil)
	}

	captureDuration := time.Since(startTime)

	c.logger.Info("map captured successfully",
		zap.String("url", req.URL),
		zap.Int("bytes", len(pngData)),
		zap.Duration("duration", captureDuration))

	return &CaptureResult{
		PNGData:         pngData,
		CaptureDuration: captureDuration,
	}, nil
}

// RenderSVG rasterizes an SVG document (such as an elevation profile)
// to a PNG image of the given dimensions.
func (c *ChromedpCapturer) RenderSVG(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	if len(bytes.TrimSpace(svg)) == 0 {
		return nil, NewCaptureError(ErrCodeInvalidSVG, "SVG content is empty", nil)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		return nil, NewCaptureError(ErrCodeInvalidSVG, "content is not an SVG document", nil)
	}

	if width <= 0 {
		width = c.config.DefaultWidth
	}
	if height <= 0 {
		height = c.config.DefaultHeight
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.DefaultTimeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(c.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			c.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	html := wrapSVG(svg)

	var pngData []byte

	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate("data:text/html;charset=utf-8,"+html),
		chromedp.WaitVisible("svg", chromedp.ByQuery),
		chromedp.Screenshot("svg", &pngData, chromedp.ByQuery),
	)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, NewCaptureError(ErrCodeCaptureTimeout,
				fmt.Sprintf("SVG rendering timed out after %v", c.config.DefaultTimeout), err)
		}

		c.logger.Error("chromedp SVG rendering failed", zap.Error(err))
		return nil, NewCaptureError(ErrCodeCaptureFailed, "chromedp execution failed: "+err.Error(), err)
	}

	if len(pngData) == 0 {
		return nil, NewCaptureError(ErrCodeEmptyImage, "rendered image is empty", nil)
	}

	return pngData, nil
}

// PrintPDF navigates to a printable page and renders it to an A4 PDF
// document, backgrounds included so maps and profile charts survive.
func (c *ChromedpCapturer) PrintPDF(ctx context.Context, req *CaptureRequest) ([]byte, error) {
	if req == nil {
		return nil, NewCaptureError(ErrCodeInvalidURL, "print request is nil", nil)
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, NewCaptureError(ErrCodeInvalidURL, "print URL is empty", nil)
	}

	selector := req.WaitSelector
	if selector == "" {
		selector = defaultWaitSelector
	}
	timeout := req.Timeout
	if timeout == 0 {
		timeout = c.config.DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(c.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			c.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	var pdfData []byte

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(req.URL),
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(pdfPaperWidth).
				WithPaperHeight(pdfPaperHeight).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, NewCaptureError(ErrCodeCaptureTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", timeout), err)
		}

		c.logger.Error("chromedp PDF rendering failed", zap.Error(err))
		return nil, NewCaptureError(ErrCodeCaptureFailed, "chromedp execution failed: "+err.Error(), err)
	}

	if len(pdfData) == 0 {
		return nil, NewCaptureError(ErrCodeEmptyDocument, "rendered document is empty", nil)
	}

	c.logger.Info("PDF rendered successfully",
		zap.String("url", req.URL),
		zap.Int("bytes", len(pdfData)))

	return pdfData, nil
}

// wrapSVG embeds the SVG content in a minimal HTML document with
// no body margins so the screenshot matches the SVG dimensions.
func wrapSVG(svg []byte) string {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html><html><head>")
	buf.WriteString("<meta charset=\"UTF-8\">")
	buf.WriteString("<style>html,body{margin:0;padding:0;background:#fff;}</style>")
	buf.WriteString("</head><body>")
	buf.Write(svg)
	buf.WriteString("</body></html>")
	return buf.String()
}

// Close releases resources held by the capturer
func (c *ChromedpCapturer) Close() error {
	if c.allocCancel != nil {
		c.allocCancel()
	}
	return nil
}

// Ensure ChromedpCapturer implements MapCapturer
var _ MapCapturer = (*ChromedpCapturer)(nil)
