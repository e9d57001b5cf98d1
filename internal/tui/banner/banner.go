// Package banner renders title text as half-block art (▀▄█) by
// rasterizing glyphs from a system font. Letters are rendered
// individually so the caller can color and offset each one.
package banner

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Renderer rasterizes letters through a loaded font face.
type Renderer struct {
	face  font.Face
	cache map[cacheKey]string
}

type cacheKey struct {
	letter rune
	cols   int
	rows   int
}

// fontPaths are common Latin font locations, tried in order.
var fontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	// Windows
	"C:\\Windows\\Fonts\\arialbd.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// New loads the first usable system font. A Renderer with no font is still
// valid; Available reports false and Letter returns "".
func New() *Renderer {
	r := &Renderer{cache: make(map[cacheKey]string)}

	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 48, DPI: 72}); err == nil {
					r.face = face
					return r
				}
			}
		}

		if fnt, err := opentype.Parse(data); err == nil {
			if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 48, DPI: 72}); err == nil {
				r.face = face
				return r
			}
		}
	}

	return r
}

// Available reports whether a font was loaded.
func (r *Renderer) Available() bool {
	return r.face != nil
}

// Letter renders one letter as cols x rows of half-block cells, cached.
func (r *Renderer) Letter(letter rune, cols, rows int) string {
	if !r.Available() {
		return ""
	}

	key := cacheKey{letter: letter, cols: cols, rows: rows}
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	rendered := r.render(letter, cols, rows)
	r.cache[key] = rendered
	return rendered
}

// Letters renders each rune of text separately, in order.
func (r *Renderer) Letters(text string, cols, rows int) []string {
	out := make([]string, 0, len(text))
	for _, letter := range text {
		out = append(out, r.Letter(letter, cols, rows))
	}
	return out
}

func (r *Renderer) render(letter rune, cols, rows int) string {
	bounds, adv, ok := r.face.GlyphBounds(letter)
	if !ok {
		return ""
	}

	width := adv.Ceil()
	if w := (bounds.Max.X - bounds.Min.X).Ceil(); w > width {
		width = w
	}
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()

	pad := 2
	srcW := width + pad*2
	srcH := height + pad*2
	if srcW < 24 {
		srcW = 24
	}
	if srcH < 48 {
		srcH = 48
	}

	src := image.NewGray(image.Rect(0, 0, srcW, srcH))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(pad-bounds.Min.X.Floor(), srcH-pad-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(letter))

	scaled := resample(src, cols, rows*2)
	return toHalfBlocks(scaled, cols, rows)
}

// resample shrinks a grayscale image by area averaging.
func resample(src *image.Gray, dstW, dstH int) *image.Gray {
	srcW := src.Bounds().Max.X
	srcH := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstW, dstH))

	xr := float64(srcW) / float64(dstW)
	yr := float64(srcH) / float64(dstH)

	for dy := 0; dy < dstH; dy++ {
		for dx := 0; dx < dstW; dx++ {
			x1, y1 := int(float64(dx)*xr), int(float64(dy)*yr)
			x2, y2 := int(float64(dx+1)*xr), int(float64(dy+1)*yr)
			if x2 > srcW {
				x2 = srcW
			}
			if y2 > srcH {
				y2 = srcH
			}

			sum, count := 0, 0
			for y := y1; y < y2; y++ {
				for x := x1; x < x2; x++ {
					sum += int(src.GrayAt(x, y).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// toHalfBlocks packs two vertical pixels into each terminal cell.
func toHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 40

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
