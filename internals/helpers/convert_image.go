package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Batas dimensi background template. Di atas ini di-resize keep-aspect
// supaya render & PDF tidak bengkak.
const MaxBackgroundDimension = 2048

// Lebar thumbnail webp untuk listing template di dashboard.
const ThumbnailWidth = 480

// DecodeImage decode jpeg/png dari bytes. Format lain ditolak.
func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	switch strings.ToLower(format) {
	case "jpeg", "png":
		return img, format, nil
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", format)
	}
}

// OptimizeBackground resize (kalau perlu) + re-encode tanpa metadata.
// PNG dipertahankan untuk transparansi; selain itu jadi JPEG quality 90.
func OptimizeBackground(data []byte) ([]byte, string, int, int, error) {
	img, format, err := DecodeImage(data)
	if err != nil {
		return nil, "", 0, 0, err
	}

	b := img.Bounds()
	if b.Dx() > MaxBackgroundDimension || b.Dy() > MaxBackgroundDimension {
		// Fit mempertahankan aspect ratio, Lanczos paling halus untuk downscale
		img = imaging.Fit(img, MaxBackgroundDimension, MaxBackgroundDimension, imaging.Lanczos)
		b = img.Bounds()
	}

	var buf bytes.Buffer
	var contentType string
	if format == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", 0, 0, fmt.Errorf("encode png: %w", err)
		}
		contentType = "image/png"
	} else {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			return nil, "", 0, 0, fmt.Errorf("encode jpeg: %w", err)
		}
		contentType = "image/jpeg"
	}

	return buf.Bytes(), contentType, b.Dx(), b.Dy(), nil
}

// EncodeThumbnailWebP bikin thumbnail kecil (webp lossy) dari background.
func EncodeThumbnailWebP(img image.Image) ([]byte, error) {
	thumb := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
