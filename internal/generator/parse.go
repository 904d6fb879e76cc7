package generator

import (
	"regexp"
	"strings"
)

var numberedLine = regexp.MustCompile(`^\s*\d+[.)]\s*(.+)$`)

// parseVariations splits a numbered-list completion into individual
// variations. When the model ignored the list format the whole text
// becomes the single variation.
func parseVariations(text string, want int) []string {
	if want <= 1 {
		return []string{strings.TrimSpace(text)}
	}

	var items []string
	for _, line := range strings.Split(text, "\n") {
		m := numberedLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if item := cleanVariation(m[1]); item != "" {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	if len(items) > want {
		items = items[:want]
	}
	return items
}

// cleanVariation strips the bold markers and wrapping quotes models like
// to add around list items.
func cleanVariation(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "**")
	s = strings.TrimSuffix(s, "**")
	s = strings.Trim(s, `"“”`)
	return strings.TrimSpace(s)
}
