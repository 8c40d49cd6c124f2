package canvas

import (
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Caption rendering constants. Meme captions are always Impact at 50pt
// with a 4px black outline; the caption is scaled to its target box
// afterwards, so the point size only fixes the rendering resolution.
const (
	captionFontSize    = 50
	captionStrokeWidth = 4
	captionLineSpacing = 1.2
)

// DrawText rasterizes text as a white, black-outlined, left-aligned
// multiline caption and places it on the canvas via DrawImage, so box
// interpretation, padding and centering behave exactly as they do for
// images. The rendered glyphs are scaled (ratio preserved) to fit the
// box rather than kept at their natural size.
func (c *Canvas) DrawText(text string, box Box) error {
	if box.Kind != Pixels && box.Kind != Fraction {
		return ErrInvalidBox
	}

	face, err := loadFontFace(captionFontSize)
	if err != nil {
		return err
	}

	caption := renderCaption(text, face)
	return c.DrawImage(caption, box)
}

// renderCaption draws the text onto a transparent surface sized exactly
// to its measured extent, stroke included.
func renderCaption(text string, face font.Face) image.Image {
	lines := strings.Split(text, "\n")

	// Measure on a throwaway 1x1 context.
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	maxLineWidth := 0.0
	for _, line := range lines {
		w, _ := measure.MeasureString(line)
		if w > maxLineWidth {
			maxLineWidth = w
		}
	}
	lineHeight := measure.FontHeight() * captionLineSpacing

	width := int(math.Ceil(maxLineWidth)) + 2*captionStrokeWidth
	height := int(math.Ceil(lineHeight*float64(len(lines)))) + 2*captionStrokeWidth

	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)

	for i, line := range lines {
		x := float64(captionStrokeWidth)
		y := float64(captionStrokeWidth) + float64(i)*lineHeight
		drawStrokedLine(dc, line, x, y)
	}
	return dc.Image()
}

// drawStrokedLine draws one caption line with its top-left corner at
// (x, y): the outline first, by stamping the text in black around a
// circle of the stroke radius, then the white fill on top.
func drawStrokedLine(dc *gg.Context, line string, x, y float64) {
	dc.SetRGB(0, 0, 0)
	for deg := 0; deg < 360; deg += 15 {
		theta := gg.Radians(float64(deg))
		dx := captionStrokeWidth * math.Cos(theta)
		dy := captionStrokeWidth * math.Sin(theta)
		dc.DrawStringAnchored(line, x+dx, y+dy, 0, 1)
	}
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(line, x, y, 0, 1)
}
