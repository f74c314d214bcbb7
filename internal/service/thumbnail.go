package service

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

const (
	// ThumbnailMaxWidth and ThumbnailMaxHeight bound generated
	// portfolio thumbnails. Card images on the site render at most
	// 400px wide.
	ThumbnailMaxWidth  = 400
	ThumbnailMaxHeight = 300

	// thumbnailJPEGQuality balances card-image sharpness with size.
	thumbnailJPEGQuality = 85
)

// ThumbnailProcessor generates thumbnails from uploaded images.
type ThumbnailProcessor interface {
	// GenerateThumbnail resizes the image to fit within maxWidth x
	// maxHeight preserving aspect ratio, re-encoded as JPEG. Returns
	// the thumbnail bytes plus the thumbnail dimensions.
	GenerateThumbnail(data io.Reader, maxWidth, maxHeight int) ([]byte, int, int, error)
}

type imagingProcessor struct{}

// NewImagingProcessor creates a thumbnail processor backed by the
// imaging library.
func NewImagingProcessor() ThumbnailProcessor {
	return &imagingProcessor{}
}

func (p *imagingProcessor) GenerateThumbnail(data io.Reader, maxWidth, maxHeight int) ([]byte, int, int, error) {
	img, _, err := image.Decode(data)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	thumbnail := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG, imaging.JPEGQuality(thumbnailJPEGQuality)); err != nil {
		return nil, 0, 0, fmt.Errorf("encode thumbnail: %w", err)
	}

	bounds := thumbnail.Bounds()
	return buf.Bytes(), bounds.Dx(), bounds.Dy(), nil
}
