// Package render paints a resolved sign grid into a PNG image.
package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell size bounds in pixels.
const (
	MinCellSize = 8
	MaxCellSize = 64

	// digitMinCell is the smallest cell that fits a 7x13 glyph with padding.
	digitMinCell = 16
)

// Options controls how a grid is painted.
type Options struct {
	CellSize int
	// Digits draws each cell's value on top of its colour.
	Digits bool
	// Gap is the width in pixels of the white lines drawn between cells.
	Gap int
}

// Result is an encoded sign image.
type Result struct {
	PNG      []byte `json:"-"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BlurHash string `json:"blurhash"`
	ETag     string `json:"etag"`
}

// Image paints cells (hex colours) onto an RGBA image. values supplies the
// digits drawn when opts.Digits is set and must have the same shape as cells.
func Image(cells [][]string, values [][]int, opts Options) (*image.RGBA, error) {
	if opts.CellSize < MinCellSize || opts.CellSize > MaxCellSize {
		return nil, fmt.Errorf("cell size %d outside %d..%d", opts.CellSize, MinCellSize, MaxCellSize)
	}
	if opts.Gap < 0 || opts.Gap >= opts.CellSize/2 {
		return nil, fmt.Errorf("gap %d too large for cell size %d", opts.Gap, opts.CellSize)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.New("empty grid")
	}
	if opts.Digits && !sameShape(cells, values) {
		return nil, errors.New("digit values do not match the grid shape")
	}

	rows, cols := len(cells), len(cells[0])
	img := image.NewRGBA(image.Rect(0, 0, cols*opts.CellSize, rows*opts.CellSize))

	palette := make(map[string]color.RGBA)
	lookup := func(hex string) (color.RGBA, error) {
		if c, ok := palette[hex]; ok {
			return c, nil
		}
		c, err := parseHex(hex)
		if err != nil {
			return color.RGBA{}, err
		}
		palette[hex] = c
		return c, nil
	}

	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), cols)
		}
		for j, hex := range row {
			c, err := lookup(hex)
			if err != nil {
				return nil, err
			}
			x0, y0 := j*opts.CellSize, i*opts.CellSize
			fill(img, image.Rect(x0, y0, x0+opts.CellSize, y0+opts.CellSize), c)
		}
	}

	if opts.Gap > 0 {
		drawGaps(img, rows, cols, opts)
	}

	if opts.Digits && opts.CellSize >= digitMinCell {
		for i, row := range values {
			for j, v := range row {
				c, _ := lookup(cells[i][j])
				drawDigit(img, j*opts.CellSize, i*opts.CellSize, opts.CellSize, v, contrast(c))
			}
		}
	}

	return img, nil
}

// Render paints and encodes the grid, computing a placeholder hash and an ETag.
func Render(cells [][]string, values [][]int, opts Options) (*Result, error) {
	img, err := Image(cells, values, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	hash, err := BlurHash(img)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(buf.Bytes())
	b := img.Bounds()
	return &Result{
		PNG:      buf.Bytes(),
		Width:    b.Dx(),
		Height:   b.Dy(),
		BlurHash: hash,
		ETag:     strconv.Quote(hex.EncodeToString(sum[:12])),
	}, nil
}

func sameShape(cells [][]string, values [][]int) bool {
	if len(cells) != len(values) {
		return false
	}
	for i := range cells {
		if len(cells[i]) != len(values[i]) {
			return false
		}
	}
	return true
}

func parseHex(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("cell colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawGaps whitens the last Gap pixels of every cell edge.
func drawGaps(img *image.RGBA, rows, cols int, opts Options) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	w, h := cols*opts.CellSize, rows*opts.CellSize
	for j := 1; j <= cols; j++ {
		x := j * opts.CellSize
		fill(img, image.Rect(x-opts.Gap, 0, x, h), white)
	}
	for i := 1; i <= rows; i++ {
		y := i * opts.CellSize
		fill(img, image.Rect(0, y-opts.Gap, w, y), white)
	}
}

// contrast picks black or white text for a cell colour by CIE lightness.
func contrast(c color.RGBA) color.Color {
	l, _, _ := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Lab()
	if l > 0.6 {
		return color.Black
	}
	return color.White
}

// ContrastHex returns black or white as hex, whichever reads better on top of hex.
func ContrastHex(hex string) (string, error) {
	c, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	if contrast(c) == color.Black {
		return "#000000", nil
	}
	return "#ffffff", nil
}

func drawDigit(img *image.RGBA, x0, y0, size, v int, c color.Color) {
	face := basicfont.Face7x13
	s := strconv.Itoa(v)
	width := font.MeasureString(face, s).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x0+(size-width)/2, y0+(size-height)/2+metrics.Ascent.Ceil()),
	}
	d.DrawString(s)
}
