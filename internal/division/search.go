package division

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName lowers a name for comparison using full Unicode case folding so
// Cyrillic and Latin variants match regardless of input casing. Casers are
// stateful, so a fresh one is built per call.
func FoldName(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}

func anyNameContains(query string, names ...string) bool {
	folded := FoldName(query)
	if folded == "" {
		return true
	}
	caser := cases.Fold()
	for _, name := range names {
		if name == "" {
			continue
		}
		if strings.Contains(caser.String(name), folded) {
			return true
		}
	}
	return false
}
