package api

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/memeapp/canvas"
	"github.com/youruser/memeapp/internal/templates"
	"github.com/youruser/memeapp/internal/util"
)

func dataDir() string {
	if d := os.Getenv("DATA_DIR"); d != "" {
		return d
	}
	return "data"
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// template catalog with optional free-word query
func templatesHandler(c *gin.Context) {
	all, err := templates.LoadFromDataDir(dataDir())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := templates.Filter(all, templates.FilterOptions{FreeWords: c.Query("q")})
	c.JSON(http.StatusOK, gin.H{"count": len(out), "templates": out})
}

// qr endpoint returns a PNG of a QR for the "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "meme:share"
	}
	sizeStr := c.Query("size")
	size := 400
	if sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

type captionSpec struct {
	Text string    `json:"text"`
	Box  []float64 `json:"box"`
	Frac bool      `json:"frac"`
}

type overlaySpec struct {
	URL  string    `json:"url"`
	Box  []float64 `json:"box"`
	Frac bool      `json:"frac"`
}

func parseBox(coords []float64, frac bool) (canvas.Box, error) {
	kind := canvas.Pixels
	if frac {
		kind = canvas.Fraction
	}
	return canvas.BoxFrom(kind, coords)
}

// meme composition: accepts a template reference plus captions and
// image overlays with their target boxes, returns the composed PNG.
func memeHandler(c *gin.Context) {
	var req struct {
		TemplateID  string        `json:"template_id"`
		TemplateURL string        `json:"template_url"`
		Captions    []captionSpec `json:"captions"`
		Overlays    []overlaySpec `json:"overlays"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tmpl templates.Template
	var haveTmpl bool
	if req.TemplateID != "" {
		all, err := templates.LoadFromDataDir(dataDir())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		tmpl, haveTmpl = templates.ByID(all, req.TemplateID)
		if !haveTmpl {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown template " + req.TemplateID})
			return
		}
	}

	// Resolve every box before any network work so malformed requests
	// fail fast. A caption without a box falls back to the template's
	// default box at the same position.
	captionBoxes := make([]canvas.Box, len(req.Captions))
	for i, ct := range req.Captions {
		if len(ct.Box) == 0 && haveTmpl && i < len(tmpl.Boxes) {
			captionBoxes[i] = tmpl.Boxes[i]
			continue
		}
		box, err := parseBox(ct.Box, ct.Frac)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("caption %d: %s", i, err)})
			return
		}
		captionBoxes[i] = box
	}
	overlayBoxes := make([]canvas.Box, len(req.Overlays))
	for i, ov := range req.Overlays {
		box, err := parseBox(ov.Box, ov.Frac)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("overlay %d: %s", i, err)})
			return
		}
		overlayBoxes[i] = box
	}

	url := req.TemplateURL
	if url == "" && haveTmpl {
		url = tmpl.ImageURL
	}
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template_id or template_url required"})
		return
	}

	cv, err := canvas.FromURL(url)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	for i, ov := range req.Overlays {
		img, err := canvas.FromURL(ov.URL)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("overlay %d: %s", i, err)})
			return
		}
		if err := cv.DrawImage(img, overlayBoxes[i]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	for i, ct := range req.Captions {
		if err := cv.DrawText(ct.Text, captionBoxes[i]); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, canvas.ErrInvalidBox) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": fmt.Sprintf("caption %d: %s", i, err)})
			return
		}
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, cv.Image()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	saveCopy(buf.Bytes())
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// saveCopy archives the composed meme to OUTPUT_DIR when set
// (best-effort).
func saveCopy(data []byte) {
	dir := os.Getenv("OUTPUT_DIR")
	if dir == "" {
		return
	}
	if err := util.EnsureDir(dir); err != nil {
		log.Println("saving meme:", err)
		return
	}
	name := filepath.Join(dir, fmt.Sprintf("meme-%d.png", time.Now().UnixNano()))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		log.Println("saving meme:", err)
	}
}
