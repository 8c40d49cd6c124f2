package templates

import "github.com/youruser/memeapp/canvas"

// Template describes a reusable meme background: where to fetch it and
// which regions captions go into by default.
type Template struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	ImageURL string       `json:"image_url"`
	Tags     []string     `json:"tags"`
	Boxes    []canvas.Box `json:"boxes"`
}
