package service

import (
	"bytes"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateThumbnail(t *testing.T) {
	proc := NewImagingProcessor()

	data, width, height, err := proc.GenerateThumbnail(bytes.NewReader(testPNG(t, 1600, 1200)), ThumbnailMaxWidth, ThumbnailMaxHeight)
	require.NoError(t, err)

	assert.LessOrEqual(t, width, ThumbnailMaxWidth)
	assert.LessOrEqual(t, height, ThumbnailMaxHeight)

	// Output is always JPEG regardless of the source format.
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, width, img.Bounds().Dx())
	assert.Equal(t, height, img.Bounds().Dy())
}

func TestGenerateThumbnailKeepsSmallImages(t *testing.T) {
	proc := NewImagingProcessor()

	_, width, height, err := proc.GenerateThumbnail(bytes.NewReader(testPNG(t, 200, 100)), ThumbnailMaxWidth, ThumbnailMaxHeight)
	require.NoError(t, err)

	// Fit never upscales.
	assert.LessOrEqual(t, width, 200)
	assert.LessOrEqual(t, height, 100)
}

func TestGenerateThumbnailRejectsGarbage(t *testing.T) {
	proc := NewImagingProcessor()

	_, _, _, err := proc.GenerateThumbnail(strings.NewReader("definitely not pixels"), ThumbnailMaxWidth, ThumbnailMaxHeight)
	assert.Error(t, err)
}
