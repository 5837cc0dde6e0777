package service

import (
	"bytes"
	"image"
	"testing"
)

func TestDrawVerificationQR_BottomRight(t *testing.T) {
	img := whiteBackground(1000, 700)

	if err := DrawVerificationQR(img, "http://localhost:3000/verify/abc"); err != nil {
		t.Fatalf("DrawVerificationQR error: %v", err)
	}

	// region QR: pojok kanan-bawah dengan margin tetap
	qrRegion := image.Rect(1000-qrSize-qrMargin, 700-qrSize-qrMargin, 1000-qrMargin, 700-qrMargin)
	if inkedPixels(img, qrRegion) == 0 {
		t.Fatal("QR tidak tergambar di pojok kanan-bawah")
	}

	// pojok kiri-atas harus tetap bersih
	if inkedPixels(img, image.Rect(0, 0, 300, 300)) != 0 {
		t.Fatal("QR bocor ke luar region kanan-bawah")
	}
}

func TestImageToPDF_ProducesValidPDF(t *testing.T) {
	img := whiteBackground(640, 480)

	out, err := ImageToPDF(img)
	if err != nil {
		t.Fatalf("ImageToPDF error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output bukan PDF, prefix: %q", out[:min(8, len(out))])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Fatal("PDF tidak punya trailer EOF")
	}
}

func TestImageToPDF_LandscapeOrientation(t *testing.T) {
	// cukup pastikan landscape & portrait dua-duanya jalan tanpa error
	for _, size := range []image.Rectangle{
		image.Rect(0, 0, 800, 400), // landscape
		image.Rect(0, 0, 400, 800), // portrait
	} {
		img := whiteBackground(size.Dx(), size.Dy())
		if _, err := ImageToPDF(img); err != nil {
			t.Fatalf("ImageToPDF %dx%d error: %v", size.Dx(), size.Dy(), err)
		}
	}
}
