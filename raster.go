package builder

import "context"

// CaptureOptions controls how a page is rasterized.
type CaptureOptions struct {
	// Scale is the device scale factor. Zero means 1.
	Scale float64
	// AllowCrossOrigin permits loading cross-origin resources
	// such as the chart CDN script.
	AllowCrossOrigin bool
	// Background paints the page background when true.
	Background bool
}

// Rasterizer captures a rendered page as a PNG image. Implementations
// typically drive a headless browser; the engine itself ships none and
// callers plug one in via WithRasterizer.
type Rasterizer interface {
	Capture(ctx context.Context, url string, opts CaptureOptions) ([]byte, error)
}
