package service

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"sertifikatku_backend/internals/features/templates/dto"
)

// Renderer menggambar text field template di atas background.
// FontDir berisi file <family>.ttf; family yang tidak ketemu fallback
// ke Go Regular supaya generate tidak pernah gagal gara-gara font.
type Renderer struct {
	FontDir string
}

func NewRenderer(fontDir string) *Renderer {
	return &Renderer{FontDir: fontDir}
}

// Render komposit semua field yang punya nilai di values ke salinan bg.
// Field tanpa nilai di-skip (tampil kosong) — kebijakan, bukan error.
func (r *Renderer) Render(bg image.Image, fields []dto.TextField, values map[string]string) (*image.RGBA, error) {
	if bg == nil {
		return nil, fmt.Errorf("%w: background nil", ErrRender)
	}

	rgba := image.NewRGBA(bg.Bounds())
	draw.Draw(rgba, rgba.Bounds(), bg, bg.Bounds().Min, draw.Src)

	for _, f := range fields {
		value := values[strings.ToLower(strings.TrimSpace(f.FieldName))]
		if value == "" {
			continue
		}

		size := f.FontSize
		if size <= 0 {
			size = 40
		}

		face, err := r.loadFace(f.FontFamily, float64(size))
		if err != nil {
			return nil, fmt.Errorf("%w: font %s: %v", ErrRender, f.FontFamily, err)
		}

		d := &font.Drawer{
			Dst:  rgba,
			Src:  image.NewUniform(ParseHexColor(f.FontColor)),
			Face: face,
		}

		x := applyAlignment(d, value, f.X, f.Align)
		d.Dot = fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(f.Y),
		}
		d.DrawString(value)
	}

	return rgba, nil
}

// loadFace cari <family>.ttf di FontDir, fallback Go Regular.
func (r *Renderer) loadFace(family string, size float64) (font.Face, error) {
	var fontBytes []byte

	family = strings.TrimSpace(family)
	if family != "" && r.FontDir != "" {
		name := family
		if !strings.HasSuffix(strings.ToLower(name), ".ttf") {
			name += ".ttf"
		}
		if b, err := os.ReadFile(filepath.Join(r.FontDir, filepath.Base(name))); err == nil {
			fontBytes = b
		}
	}
	if fontBytes == nil {
		fontBytes = goregular.TTF
	}

	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}

	const dpi = 72
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
}

// applyAlignment geser titik x berdasarkan lebar teks terukur.
// left = x apa adanya, center = x - w/2, right = x - w.
func applyAlignment(d *font.Drawer, text string, x int, align string) int {
	switch strings.ToLower(align) {
	case "center":
		return x - d.MeasureString(text).Ceil()/2
	case "right":
		return x - d.MeasureString(text).Ceil()
	default:
		return x
	}
}

// ParseHexColor parse "#rrggbb" → color.RGBA. Input jelek jadi hitam.
func ParseHexColor(s string) color.RGBA {
	black := color.RGBA{0, 0, 0, 255}

	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return black
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexVal(s[i*2])
		lo, ok2 := hexVal(s[i*2+1])
		if !ok1 || !ok2 {
			return black
		}
		rgb[i] = hi<<4 | lo
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}
}

func hexVal(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
