// Package render rasterizes the linked polygon structure into WebP previews.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"sort"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"

	"github.com/woozymasta/outliner/internal/geo"
)

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHexColor is ParseHexColor for known-good literals; it panics on
// a malformed value.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rasterize fills the MultiPolygon nesting onto a square image of px
// pixels per side using even-odd scanline filling, which handles holes
// and islands inside holes without special casing. The geometry is
// fitted to the image with a small margin; image y points down.
func Rasterize(mp [][][][]float64, px int, fill, background color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, px, px))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	minX, minY, maxX, maxY, ok := bounds(mp)
	if !ok {
		return img
	}

	const margin = 8.0
	spanX, spanY := maxX-minX, maxY-minY
	span := spanX
	if spanY > span {
		span = spanY
	}
	if span <= 0 {
		return img
	}
	scale := (float64(px) - 2*margin) / span

	// Flatten all rings into pixel-space segments.
	type segment struct{ x1, y1, x2, y2 float64 }
	var segments []segment
	for _, polygon := range mp {
		for _, ring := range polygon {
			for i := 0; i+1 < len(ring); i++ {
				segments = append(segments, segment{
					x1: (ring[i][0]-minX)*scale + margin,
					y1: float64(px) - ((ring[i][1]-minY)*scale + margin),
					x2: (ring[i+1][0]-minX)*scale + margin,
					y2: float64(px) - ((ring[i+1][1]-minY)*scale + margin),
				})
			}
		}
	}

	for row := 0; row < px; row++ {
		sy := float64(row) + 0.5
		var crossings []float64
		for _, s := range segments {
			if (s.y1 > sy) == (s.y2 > sy) {
				continue
			}
			crossings = append(crossings, s.x1+(sy-s.y1)/(s.y2-s.y1)*(s.x2-s.x1))
		}
		sort.Float64s(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			from, to := int(crossings[i]+0.5), int(crossings[i+1]+0.5)
			for x := from; x < to; x++ {
				if x >= 0 && x < px {
					img.SetRGBA(x, row, fill)
				}
			}
		}
	}
	return img
}

// WriteWebP rasterizes the polygon chain at double resolution, scales
// it down for antialiasing and writes the result as a WebP file.
func WriteWebP(path string, p *geo.LinkedPolygon, size int, fill, background color.RGBA) error {
	if size <= 0 {
		size = 512
	}

	src := Rasterize(p.MultiPolygon(), size*2, fill, background)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return webp.Encode(f, dst, &webp.Options{Lossless: false, Quality: 85})
}

// bounds returns the bounding box of the MultiPolygon nesting.
func bounds(mp [][][][]float64) (minX, minY, maxX, maxY float64, ok bool) {
	for _, polygon := range mp {
		for _, ring := range polygon {
			for _, pos := range ring {
				if !ok {
					minX, maxX = pos[0], pos[0]
					minY, maxY = pos[1], pos[1]
					ok = true
					continue
				}
				if pos[0] < minX {
					minX = pos[0]
				}
				if pos[0] > maxX {
					maxX = pos[0]
				}
				if pos[1] < minY {
					minY = pos[1]
				}
				if pos[1] > maxY {
					maxY = pos[1]
				}
			}
		}
	}
	return minX, minY, maxX, maxY, ok
}
