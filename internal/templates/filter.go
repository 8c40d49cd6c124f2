package templates

import "strings"

// FilterOptions narrows a template list. FreeWords is a space-separated
// keyword query matched against name and tags; Tags must all be present
// verbatim.
type FilterOptions struct {
	FreeWords string
	Tags      []string
}

func hasTag(t Template, tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// Filter returns the templates matching opt.
func Filter(all []Template, opt FilterOptions) []Template {
	var out []Template
	for _, t := range all {
		if len(opt.Tags) > 0 {
			ok := true
			for _, tag := range opt.Tags {
				if !hasTag(t, tag) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		if opt.FreeWords != "" {
			kw := strings.Fields(opt.FreeWords)
			ok := true
			for _, k := range kw {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(t.Name), k) &&
					!strings.Contains(strings.ToLower(t.ID), k) &&
					!strings.Contains(strings.ToLower(strings.Join(t.Tags, " ")), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// ByID finds a template by its identifier.
func ByID(all []Template, id string) (Template, bool) {
	for _, t := range all {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
