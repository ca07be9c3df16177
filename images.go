package builder

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
	maxUploadSize = 5 << 20 // 5MB
)

// IngestError is a user-facing rejection of an upload: wrong type,
// oversized, or undecodable. It aborts the operation with a message, not
// a fault; prior state stays unchanged.
type IngestError struct {
	Reason string
}

func (e *IngestError) Error() string { return e.Reason }

// IngestImage validates and processes one uploaded file into an image
// item: non-image MIME types and files over 5MB are rejected with a
// user-visible message, everything else is decoded, downscaled to at
// most maxImageWidth, re-encoded as JPEG, and returned as a data-URI
// payload carrying the original filename.
func IngestImage(src io.Reader, name, mimeType string, size int64) (page.ImageItem, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return page.ImageItem{}, &IngestError{Reason: "Only image files can be uploaded"}
	}
	if size > maxUploadSize {
		return page.ImageItem{}, &IngestError{Reason: "Images must be 5MB or smaller"}
	}

	img, _, err := image.Decode(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return page.ImageItem{}, &IngestError{Reason: "The file is not a readable image"}
	}

	// Resize if wider than max.
	bounds := img.Bounds()
	if w, h := bounds.Dx(), bounds.Dy(); w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return page.ImageItem{}, fmt.Errorf("builder: encode jpeg: %w", err)
	}

	// Width/Height stay unset: they are user overrides applied later in
	// the editor, not the natural size.
	return page.ImageItem{
		Data: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Name: name,
	}, nil
}
