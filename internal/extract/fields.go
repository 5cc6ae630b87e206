package extract

import (
	"github.com/lucid-sh/lucid/internal/patterns"
)

// TaskType returns the first task category with a trigger word present in
// the input, or "" when none match. Category order is the tie-break.
func TaskType(raw string, t *patterns.Tables) string {
	for _, cat := range t.TaskTypes {
		if cat.Matches(raw) {
			return cat.Name
		}
	}
	return ""
}

// Audience returns the label of the first matching audience pattern, or
// "". Audience phrases only count after "for" (plus an optional article).
func Audience(raw string, t *patterns.Tables) string {
	for _, row := range t.Audiences {
		if row.Matches(raw) {
			return row.Label
		}
	}
	return ""
}

// Domain returns the label of the first matching domain pattern, or "".
func Domain(raw string, t *patterns.Tables) string {
	for _, row := range t.Domains {
		if row.Matches(raw) {
			return row.Label
		}
	}
	return ""
}
