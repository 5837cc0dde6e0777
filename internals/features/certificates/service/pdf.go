package service

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// qrSize ukuran sisi QR verifikasi (px), qrMargin jarak dari tepi.
const (
	qrSize   = 180
	qrMargin = 40
)

// DrawVerificationQR tempel QR link verifikasi di pojok kanan-bawah.
func DrawVerificationQR(rgba *image.RGBA, verifyURL string) error {
	qr, err := qrcode.New(verifyURL, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("%w: qr encode: %v", ErrRender, err)
	}
	qrImg := qr.Image(qrSize)

	b := rgba.Bounds()
	offset := image.Pt(
		b.Max.X-qrSize-qrMargin,
		b.Max.Y-qrSize-qrMargin,
	)
	draw.Draw(rgba, qrImg.Bounds().Add(offset), qrImg, image.Point{}, draw.Over)
	return nil
}

// ImageToPDF bungkus hasil render jadi PDF satu halaman tanpa margin.
// Ukuran halaman mengikuti gambar (96 dpi) supaya tidak ada distorsi.
func ImageToPDF(rgba *image.RGBA) ([]byte, error) {
	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, rgba, &jpeg.Options{Quality: 92}); err != nil {
		return nil, fmt.Errorf("%w: jpeg encode: %v", ErrRender, err)
	}

	const dpi = 96.0
	wMM := float64(rgba.Bounds().Dx()) / dpi * 25.4
	hMM := float64(rgba.Bounds().Dy()) / dpi * 25.4

	orientation := "P"
	if wMM > hMM {
		orientation = "L"
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: wMM, Ht: hMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "JPG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("certificate", opts, &jpegBuf)
	pdf.ImageOptions("certificate", 0, 0, wMM, hMM, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: pdf output: %v", ErrRender, err)
	}
	return out.Bytes(), nil
}
