// Package capture renders map screenshots and elevation profile images
// using a headless Chrome instance.
package capture

import (
	"context"
	"time"
)

// CaptureRequest contains the parameters for capturing a map image
type CaptureRequest struct {
	// URL of the map page to capture
	URL string
	// Width of the viewport in pixels
	Width int
	// Height of the viewport in pixels
	Height int
	// WaitSelector is a CSS selector to wait for before capturing.
	// Defaults to "#map" when empty.
	WaitSelector string
	// Timeout overrides the default capture timeout
	Timeout time.Duration
}

// CaptureResult contains the output from a capture
type CaptureResult struct {
	// PNGData is the raw PNG image content
	PNGData []byte
	// CaptureDuration is how long the capture took
	CaptureDuration time.Duration
}

// MapCapturer defines the interface for producing map and profile images
type MapCapturer interface {
	// CaptureMap navigates to a map page and captures a PNG screenshot
	CaptureMap(ctx context.Context, req *CaptureRequest) (*CaptureResult, error)
	// RenderSVG rasterizes an SVG document to a PNG image
	RenderSVG(ctx context.Context, svg []byte, width, height int) ([]byte, error)
	// PrintPDF renders a printable page to an A4 PDF document
	PrintPDF(ctx context.Context, req *CaptureRequest) ([]byte, error)
	// Close releases any resources held by the capturer
	Close() error
}

// CaptureError represents an error during image capture
type CaptureError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *CaptureError) Unwrap() error {
	return e.Cause
}

// Error codes for capture failures
const (
	ErrCodeCaptureTimeout = "CAPTURE_TIMEOUT"
	ErrCodeCaptureFailed  = "CAPTURE_FAILED"
	ErrCodeInvalidURL     = "INVALID_URL"
	ErrCodeInvalidSVG     = "INVALID_SVG"
	ErrCodeEmptyImage     = "EMPTY_IMAGE"
	ErrCodeEmptyDocument  = "EMPTY_DOCUMENT"
)

// NewCaptureError creates a new CaptureError
func NewCaptureError(code, message string, cause error) *CaptureError {
	return &CaptureError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
