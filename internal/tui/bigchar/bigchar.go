// Package bigchar renders short text as large block art using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths are tried in order before falling back to the bundled Go Bold.
var fontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/liberation-sans/LiberationSans-Bold.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

const faceSize = 64

// Renderer draws text with one font face and caches the results.
type Renderer struct {
	face   font.Face
	source string

	mu    sync.Mutex
	cache map[string]string
}

// New loads the font at path. An empty path tries the usual system fonts,
// then the bundled one.
func New(path string) (*Renderer, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		face, err := parseFace(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %w", path, err)
		}
		return newRenderer(face, path), nil
	}

	for _, p := range fontPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if face, err := parseFace(data); err == nil {
			return newRenderer(face, p), nil
		}
	}
	return Bundled()
}

// Bundled returns a renderer for the Go Bold font shipped with x/image.
func Bundled() (*Renderer, error) {
	face, err := parseFace(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return newRenderer(face, "gobold"), nil
}

func newRenderer(face font.Face, source string) *Renderer {
	return &Renderer{face: face, source: source, cache: make(map[string]string)}
}

func parseFace(data []byte) (font.Face, error) {
	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return opentype.NewFace(fnt, &opentype.FaceOptions{Size: faceSize, DPI: 72})
		}
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{Size: faceSize, DPI: 72})
}

// Source names the font file in use.
func (r *Renderer) Source() string { return r.source }

// Width returns how many cells text takes when rendered rows tall.
func (r *Renderer) Width(text string, rows int) int {
	srcWidth, srcHeight, _ := r.metrics(text)
	if srcHeight == 0 || rows <= 0 {
		return 0
	}
	// A cell is roughly twice as tall as it is wide, and holds two pixel rows.
	return srcWidth * rows * 2 / srcHeight
}

func (r *Renderer) metrics(text string) (width, height int, ascent fixed.Int26_6) {
	if text == "" {
		return 0, 0, 0
	}
	m := r.face.Metrics()
	adv := font.MeasureString(r.face, text)
	return adv.Ceil() + padding*2, (m.Ascent + m.Descent).Ceil() + padding*2, m.Ascent
}

const padding = 4

// Render draws text rows cells tall. It returns "" when the result would
// be wider than maxCols, so callers can fall back to plain text.
func (r *Renderer) Render(text string, rows, maxCols int) string {
	cols := r.Width(text, rows)
	if cols == 0 || cols > maxCols {
		return ""
	}

	key := fmt.Sprintf("%s\x00%d\x00%d", text, cols, rows)
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	srcWidth, srcHeight, ascent := r.metrics(text)
	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(padding), Y: fixed.I(padding) + ascent},
	}
	d.DrawString(text)

	// rows*2 because half-blocks; Box averages each source area.
	scaled := imaging.Resize(srcImg, cols, rows*2, imaging.Box)
	out := imageToHalfBlocks(scaled, cols, rows)
	r.cache[key] = out
	return out
}

// threshold is the brightness above which a half cell counts as lit.
const threshold = 60

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img image.Image, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}
	return result.String()
}

func brightness(img image.Image, x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return 0
	}
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}
