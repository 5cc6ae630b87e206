package extract

import (
	"strings"

	"github.com/lucid-sh/lucid/internal/intent"
	"github.com/lucid-sh/lucid/internal/patterns"
)

// Extracted constraint texts keep between 5 and 98 characters; anything
// outside that is noise (a bare trigger word or a run-on paragraph).
const (
	minConstraintLen = 4
	maxConstraintLen = 99
)

// Constraints scans the whole input for hard and soft requirement
// clauses. Every rule is applied globally (all non-overlapping matches,
// not just the first); results are trimmed, length-bounded and deduped
// case-insensitively within their own list. The same text may legally
// appear in both lists when a hard and a soft trigger both produce it.
func Constraints(raw string, t *patterns.Tables) intent.Constraints {
	return intent.Constraints{
		Hard: collect(raw, t.Hard, intent.ConstraintHard),
		Soft: collect(raw, t.Soft, intent.ConstraintSoft),
	}
}

func collect(raw string, rules []patterns.ClauseRule, kind string) []intent.Constraint {
	var out []intent.Constraint
	seen := make(map[string]bool)

	for _, rule := range rules {
		for _, clause := range rule.Extract(raw) {
			text := strings.TrimSpace(clause)
			if len(text) <= minConstraintLen || len(text) >= maxConstraintLen {
				continue
			}
			key := strings.ToLower(text)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, intent.Constraint{Text: text, Type: kind})
		}
	}

	return out
}
