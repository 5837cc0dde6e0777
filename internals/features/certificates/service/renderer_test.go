package service

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"sertifikatku_backend/internals/features/templates/dto"
)

func whiteBackground(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// hitung piksel non-putih di region — indikator ada teks tergambar.
func inkedPixels(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				n++
			}
		}
	}
	return n
}

func TestRender_DrawsTextNearCoordinate(t *testing.T) {
	r := NewRenderer("")
	bg := whiteBackground(800, 400)

	fields := []dto.TextField{
		{FieldName: "name", X: 100, Y: 200, FontSize: 48, FontColor: "#000000"},
	}
	out, err := r.Render(bg, fields, map[string]string{"name": "Budi Santoso"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	// teks baseline di y=200: tinta harus muncul di sekitar koordinat
	around := image.Rect(100, 150, 500, 210)
	if inkedPixels(out, around) == 0 {
		t.Fatal("tidak ada piksel teks di sekitar koordinat field")
	}
	// background asli tidak boleh berubah
	if inkedPixels(bg, bg.Bounds()) != 0 {
		t.Fatal("background input ikut termodifikasi")
	}
}

func TestRender_SkipsFieldWithoutValue(t *testing.T) {
	r := NewRenderer("")
	bg := whiteBackground(400, 200)

	fields := []dto.TextField{
		{FieldName: "course", X: 50, Y: 100, FontSize: 30},
	}
	out, err := r.Render(bg, fields, map[string]string{"name": "Budi"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if inkedPixels(out, out.Bounds()) != 0 {
		t.Fatal("field tanpa nilai harus tampil kosong, bukan digambar")
	}
}

func TestRender_FieldNameMatchingCaseInsensitive(t *testing.T) {
	r := NewRenderer("")
	bg := whiteBackground(400, 200)

	fields := []dto.TextField{
		{FieldName: "  Name ", X: 50, Y: 100, FontSize: 30, FontColor: "#ff0000"},
	}
	out, err := r.Render(bg, fields, map[string]string{"name": "Budi"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if inkedPixels(out, out.Bounds()) == 0 {
		t.Fatal("field name harus dicocokkan case-insensitive + trim")
	}
}

func TestRender_AlignmentShiftsText(t *testing.T) {
	r := NewRenderer("")
	text := map[string]string{"name": "Budi"}

	leftmostInk := func(align string) int {
		bg := whiteBackground(600, 200)
		out, err := r.Render(bg, []dto.TextField{
			{FieldName: "name", X: 300, Y: 100, FontSize: 40, Align: align},
		}, text)
		if err != nil {
			t.Fatalf("Render(%s) error: %v", align, err)
		}
		for x := 0; x < 600; x++ {
			for y := 0; y < 200; y++ {
				c := out.RGBAAt(x, y)
				if c.R != 255 || c.G != 255 || c.B != 255 {
					return x
				}
			}
		}
		t.Fatalf("Render(%s): tidak ada teks tergambar", align)
		return -1
	}

	left := leftmostInk("left")
	center := leftmostInk("center")
	right := leftmostInk("right")

	if !(right < center && center < left) {
		t.Fatalf("alignment tidak menggeser teks dengan benar: left=%d center=%d right=%d",
			left, center, right)
	}
	if left < 300 {
		t.Errorf("align left: teks harus mulai di x>=300, dapat %d", left)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{"00FF00", color.RGBA{0, 255, 0, 255}},
		{"  #0000ff ", color.RGBA{0, 0, 255, 255}},
		{"", color.RGBA{0, 0, 0, 255}},
		{"#12345", color.RGBA{0, 0, 0, 255}},
		{"#zzzzzz", color.RGBA{0, 0, 0, 255}},
	}
	for _, tc := range cases {
		if got := ParseHexColor(tc.in); got != tc.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRender_NilBackground(t *testing.T) {
	r := NewRenderer("")
	if _, err := r.Render(nil, nil, nil); err == nil {
		t.Fatal("background nil harus error")
	}
}
