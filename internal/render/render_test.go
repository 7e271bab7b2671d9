package render

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{in: "#1f6feb", want: color.RGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 255}},
		{in: "ff0000", want: color.RGBA{R: 255, A: 255}},
		{in: "#fff", err: true},
		{in: "", err: true},
		{in: "#zzzzzz", err: true},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if c.err {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRasterizeEvenOdd(t *testing.T) {
	fill := color.RGBA{R: 255, A: 255}
	background := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// 4x4 square with a hole from (1,1) to (3,3)
	mp := [][][][]float64{{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{1, 1}, {1, 3}, {3, 3}, {3, 1}, {1, 1}},
	}}

	const px = 64
	img := Rasterize(mp, px, fill, background)

	// geometry is fitted with an 8px margin: world unit = 12px
	if got := img.RGBAAt(32, 32); got != background {
		t.Errorf("hole center = %v, want background", got)
	}
	if got := img.RGBAAt(14, 32); got != fill {
		t.Errorf("point between outer ring and hole = %v, want fill", got)
	}
	if got := img.RGBAAt(2, 2); got != background {
		t.Errorf("point outside = %v, want background", got)
	}
}

func TestRasterizeEmpty(t *testing.T) {
	background := color.RGBA{G: 255, A: 255}
	img := Rasterize(nil, 16, color.RGBA{R: 255, A: 255}, background)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(8, 8); got != background {
		t.Errorf("empty input should fill background, got %v", got)
	}
}
