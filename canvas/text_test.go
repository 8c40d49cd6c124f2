package canvas

import (
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestDrawTextInvalidBox(t *testing.T) {
	c := New(100, 100, red)
	// box validation happens before any font work
	if err := c.DrawText("hello", Box{}); err != ErrInvalidBox {
		t.Fatalf("err = %v, want ErrInvalidBox", err)
	}
}

func TestDrawTextMissingFont(t *testing.T) {
	t.Setenv("MEME_FONT", "/nonexistent/impact.ttf")
	c := New(100, 100, red)
	if err := c.DrawText("hello", Px(0, 0, 100, 100)); err == nil {
		t.Fatal("expected error when the caption font cannot be loaded")
	}
}

func TestRenderCaption(t *testing.T) {
	face := basicfont.Face7x13

	single := renderCaption("TOP TEXT", face)
	if single.Bounds().Dx() <= 2*captionStrokeWidth || single.Bounds().Dy() <= 2*captionStrokeWidth {
		t.Fatalf("caption surface %v too small", single.Bounds())
	}

	double := renderCaption("TOP TEXT\nBOTTOM TEXT", face)
	if double.Bounds().Dy() <= single.Bounds().Dy() {
		t.Errorf("two-line caption height %d not taller than one-line %d",
			double.Bounds().Dy(), single.Bounds().Dy())
	}
	// the longer second line widens the surface
	if double.Bounds().Dx() <= single.Bounds().Dx() {
		t.Errorf("two-line caption width %d not wider than one-line %d",
			double.Bounds().Dx(), single.Bounds().Dx())
	}
}

func TestRenderCaptionColors(t *testing.T) {
	img := renderCaption("X", basicfont.Face7x13)

	var sawWhite, sawBlack, sawTransparent bool
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			switch {
			case a == 0:
				sawTransparent = true
			case r > 0xf000 && g > 0xf000 && bl > 0xf000:
				sawWhite = true
			case a > 0xf000 && r < 0x0fff && g < 0x0fff && bl < 0x0fff:
				sawBlack = true
			}
		}
	}
	if !sawWhite {
		t.Error("no white fill pixels in rendered caption")
	}
	if !sawBlack {
		t.Error("no black stroke pixels in rendered caption")
	}
	if !sawTransparent {
		t.Error("no transparent background pixels in rendered caption")
	}
}

func TestCenterContent(t *testing.T) {
	tests := []struct {
		name         string
		outer        image.Rectangle
		cw, ch       int
		wantX, wantY int
	}{
		{"exact fit", image.Rect(0, 0, 10, 10), 10, 10, 0, 0},
		{"smaller content", image.Rect(0, 0, 100, 50), 60, 20, 20, 15},
		{"odd remainder floors", image.Rect(0, 0, 11, 11), 10, 10, 0, 0},
		{"offset outer box", image.Rect(20, 30, 120, 80), 60, 20, 40, 45},
		{"content larger than box", image.Rect(0, 0, 50, 50), 60, 60, -5, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centerContent(tt.outer, tt.cw, tt.ch)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("centerContent() = %v, want (%d,%d)", got, tt.wantX, tt.wantY)
			}
		})
	}
}
