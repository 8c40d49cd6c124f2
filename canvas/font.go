package canvas

import (
	"errors"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

var errNoFont = errors.New("no impact-family font found; set MEME_FONT or install msttcorefonts")

// Well-known locations of the Impact font on the usual platforms,
// checked in order. A local fonts/ directory wins so deployments can
// ship their own copy.
var fontSearchPaths = []string{
	"fonts/impact.ttf",
	"/usr/share/fonts/truetype/msttcorefonts/Impact.ttf",
	"/usr/share/fonts/truetype/msttcorefonts/impact.ttf",
	"/Library/Fonts/Impact.ttf",
	"C:\\Windows\\Fonts\\impact.ttf",
}

// findFontPath locates the caption font. The MEME_FONT environment
// variable overrides the search entirely.
func findFontPath() (string, error) {
	if p := os.Getenv("MEME_FONT"); p != "" {
		return p, nil
	}
	for _, p := range fontSearchPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errNoFont
}

func loadFontFace(points float64) (font.Face, error) {
	path, err := findFontPath()
	if err != nil {
		return nil, err
	}
	return gg.LoadFontFace(path, points)
}
