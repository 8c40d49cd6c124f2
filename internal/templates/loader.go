package templates

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/youruser/memeapp/canvas"
)

// LoadFromDataDir loads template CSVs from a data directory
// (best-effort). It expects at least templates.csv; custom_templates.csv
// is optional.
func LoadFromDataDir(dataDir string) ([]Template, error) {
	files := []string{
		filepath.Join(dataDir, "templates.csv"),
		filepath.Join(dataDir, "custom_templates.csv"),
	}

	var all []Template
	var found bool
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			// skip missing files
			continue
		}
		found = true
		ts, err := loadSingleCSV(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, ts...)
	}
	if !found {
		return nil, fmt.Errorf("no template CSVs found in %s", dataDir)
	}
	return all, nil
}

// loadSingleCSV reads one CSV with header columns id, name, image_url,
// tags, boxes. Tags are slash-separated; boxes are pipe-separated
// fraction quadruples like "0,0,1,0.25|0,0.75,1,1".
func loadSingleCSV(path string) ([]Template, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	header := rows[0]
	cols := map[string]int{}
	for i, h := range header {
		cols[h] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return row[idx]
		}
		return ""
	}

	out := []Template{}
	for _, row := range rows[1:] {
		t := Template{
			ID:       get(row, "id"),
			Name:     get(row, "name"),
			ImageURL: get(row, "image_url"),
			Tags:     parseListCell(get(row, "tags")),
		}
		boxes, err := parseBoxesCell(get(row, "boxes"))
		if err != nil {
			return nil, fmt.Errorf("csv %s: template %s: %w", path, t.ID, err)
		}
		t.Boxes = boxes
		out = append(out, t)
	}
	return out, nil
}

func parseListCell(s string) []string {
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

func parseBoxesCell(s string) ([]canvas.Box, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}
	var out []canvas.Box
	for _, quad := range strings.Split(s, "|") {
		fields := strings.Split(quad, ",")
		coords := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("bad box %q: %w", quad, err)
			}
			coords = append(coords, v)
		}
		box, err := canvas.BoxFrom(canvas.Fraction, coords)
		if err != nil {
			return nil, fmt.Errorf("bad box %q: %w", quad, err)
		}
		out = append(out, box)
	}
	return out, nil
}
