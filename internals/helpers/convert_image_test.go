package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 100, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	if _, format, err := DecodeImage(encodePNG(t, 10, 10)); err != nil || format != "png" {
		t.Fatalf("png: format=%q err=%v", format, err)
	}
	if _, format, err := DecodeImage(encodeJPEG(t, 10, 10)); err != nil || format != "jpeg" {
		t.Fatalf("jpeg: format=%q err=%v", format, err)
	}
	if _, _, err := DecodeImage([]byte("bukan gambar")); err == nil {
		t.Fatal("bytes acak harus gagal decode")
	}
}

func TestOptimizeBackground_KeepsSmallImage(t *testing.T) {
	data := encodePNG(t, 800, 600)

	out, contentType, w, h, err := OptimizeBackground(data)
	if err != nil {
		t.Fatalf("OptimizeBackground error: %v", err)
	}
	if w != 800 || h != 600 {
		t.Errorf("dimensi berubah: %dx%d", w, h)
	}
	if contentType != "image/png" {
		t.Errorf("png harus tetap png, dapat %s", contentType)
	}
	if len(out) == 0 {
		t.Error("output kosong")
	}
}

func TestOptimizeBackground_ResizesOversized(t *testing.T) {
	data := encodeJPEG(t, MaxBackgroundDimension+1000, 1200)

	_, contentType, w, h, err := OptimizeBackground(data)
	if err != nil {
		t.Fatalf("OptimizeBackground error: %v", err)
	}
	if w > MaxBackgroundDimension || h > MaxBackgroundDimension {
		t.Errorf("masih oversize: %dx%d", w, h)
	}
	// aspect ratio kasar harus terjaga (lebar > tinggi)
	if w <= h {
		t.Errorf("aspect ratio rusak: %dx%d", w, h)
	}
	if contentType != "image/jpeg" {
		t.Errorf("jpeg harus tetap jpeg, dapat %s", contentType)
	}
}

func TestEncodeThumbnailWebP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 960, 540))

	out, err := EncodeThumbnailWebP(img)
	if err != nil {
		t.Fatalf("EncodeThumbnailWebP error: %v", err)
	}
	// container webp: RIFF....WEBP
	if len(out) < 12 || string(out[0:4]) != "RIFF" || string(out[8:12]) != "WEBP" {
		t.Fatalf("output bukan webp, prefix: %q", out[:12])
	}
}
