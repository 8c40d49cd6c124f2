// Package canvas places images and stroked captions inside pixel- or
// fraction-based bounding boxes on a raster canvas, growing the canvas
// automatically when a box falls outside the current bounds. Decoding,
// resampling and compositing are delegated to disintegration/imaging;
// caption rasterization to fogleman/gg.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Canvas wraps a mutable NRGBA buffer. It exposes only the operations
// composition needs (dimensions, resize, padding, draw, save) rather
// than the full surface of the underlying image type; the raw buffer
// stays reachable through Image for encoding.
type Canvas struct {
	img *image.NRGBA
}

// New creates a canvas of the given size filled with the given color.
func New(width, height int, fill color.Color) *Canvas {
	return &Canvas{img: imaging.New(width, height, fill)}
}

// FromImage wraps a copy of an existing in-memory image.
func FromImage(img image.Image) *Canvas {
	return &Canvas{img: imaging.Clone(img)}
}

// FromURL fetches and decodes an image over HTTP. Transport and decode
// failures are returned as-is; a non-2xx status is an error.
func FromURL(url string) (*Canvas, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: status %s", url, resp.Status)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Canvas{img: imaging.Clone(img)}, nil
}

// Open decodes an image file. If formats are given, they act as a
// whitelist: a file whose detected format name (e.g. "png", "jpeg") is
// not listed is rejected.
func Open(path string, formats ...string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if len(formats) > 0 {
		ok := false
		for _, want := range formats {
			if strings.EqualFold(want, format) {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("opening %s: format %q not in allowed set", path, format)
		}
	}
	return &Canvas{img: imaging.Clone(img)}, nil
}

// Image returns the wrapped buffer for encoding or direct pixel access.
func (c *Canvas) Image() *image.NRGBA { return c.img }

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Canvas satisfies image.Image so one canvas can be drawn onto another.
func (c *Canvas) ColorModel() color.Model { return c.img.ColorModel() }
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }
func (c *Canvas) At(x, y int) color.Color { return c.img.At(x, y) }

// AddPadding extends the canvas with opaque white. The width grows by
// left when left is positive and by right-width when right exceeds the
// current width; top and bottom behave the same for the height. The
// existing content is composited into the new buffer offset by the
// left/top growth. A call where all four values are <= 0 changes
// nothing.
func (c *Canvas) AddPadding(left, top, right, bottom int) {
	if left <= 0 && top <= 0 && right <= 0 && bottom <= 0 {
		return
	}

	width := c.Width()
	height := c.Height()
	newWidth := width
	newHeight := height
	var offsetX, offsetY int

	if left > 0 {
		offsetX = left
		newWidth += left
	}
	if top > 0 {
		offsetY = top
		newHeight += top
	}
	if right > width {
		newWidth += right - width
	}
	if bottom > height {
		newHeight += bottom - height
	}

	background := imaging.New(newWidth, newHeight, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	c.img = imaging.Overlay(background, c.img, image.Pt(offsetX, offsetY), 1.0)
}

// Resize scales the canvas to the given size. With keepRatio the
// smaller of the two scale factors is applied to both axes, so the
// result fits inside width x height without distortion; at least one
// axis matches the request exactly. Returns the canvas for chaining.
func (c *Canvas) Resize(width, height int, filter imaging.ResampleFilter, keepRatio bool) *Canvas {
	if !keepRatio {
		c.img = imaging.Resize(c.img, width, height, filter)
		return c
	}

	curWidth := float64(c.Width())
	curHeight := float64(c.Height())
	widthQuotient := float64(width) / curWidth
	heightQuotient := float64(height) / curHeight
	quotient := widthQuotient
	if heightQuotient < widthQuotient {
		quotient = heightQuotient
	}
	c.img = imaging.Resize(c.img, int(curWidth*quotient), int(curHeight*quotient), filter)
	return c
}

// DrawImage places content inside the box, growing the canvas first if
// the box reaches outside the current bounds. The content is scaled to
// fit the box preserving its aspect ratio and centered inside it, then
// composited over the canvas honoring its alpha channel.
func (c *Canvas) DrawImage(content image.Image, box Box) error {
	width := c.Width()
	height := c.Height()

	left, top, right, bottom, err := box.resolve(width, height)
	if err != nil {
		return err
	}

	// Right and bottom are passed through absolute here; AddPadding
	// re-derives the actual growth from the current dimensions.
	if left < 0 || top < 0 || right > width || bottom > height {
		c.AddPadding(abs(left), abs(top), right, bottom)
	}

	if src, ok := content.(*Canvas); ok {
		content = src.img
	}

	fitted := FromImage(content).Resize(right-left, bottom-top, imaging.Lanczos, true)

	outer := image.Rect(clampZero(left), clampZero(top), right, bottom)
	origin := centerContent(outer, fitted.Width(), fitted.Height())
	c.img = imaging.Overlay(c.img, fitted.img, origin, 1.0)
	return nil
}

// centerContent returns the top-left point that centers content of the
// given size inside outer, using floor arithmetic.
func centerContent(outer image.Rectangle, contentWidth, contentHeight int) image.Point {
	return image.Pt(
		outer.Min.X+(outer.Dx()-contentWidth)/2,
		outer.Min.Y+(outer.Dy()-contentHeight)/2,
	)
}

// Save writes the canvas to a file, deriving the format from the
// extension.
func (c *Canvas) Save(path string) error {
	return imaging.Save(c.img, path)
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, format imaging.Format) error {
	return imaging.Encode(w, c.img, format)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
