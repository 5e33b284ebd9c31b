package dragdrop

import (
	"regexp"
	"strconv"
	"strings"

	"pantrypick/internal/domain"
)

// IDPrefix marks identifiers of suggestion drag sources
const IDPrefix = "source-"

var whitespace = regexp.MustCompile(`\s+`)

// ID derives the drag identifier for an ingredient name
func ID(name string) string {
	return IDPrefix + whitespace.ReplaceAllString(strings.TrimSpace(name), "-")
}

// IDs assigns identifiers to suggestions in order. Repeated names get a
// numeric suffix (-2, -3, ...) so every identifier is unique within the list.
func IDs(suggestions []domain.Suggestion) []string {
	ids := make([]string, len(suggestions))
	used := make(map[string]bool, len(suggestions))
	for i, s := range suggestions {
		base := ID(s.Name)
		id := base
		for n := 2; used[id]; n++ {
			id = base + "-" + strconv.Itoa(n)
		}
		used[id] = true
		ids[i] = id
	}
	return ids
}
