// Package conflict detects contradictory descriptor pairs in a raw
// request, e.g. "short but comprehensive".
package conflict

import (
	"strings"

	"github.com/lucid-sh/lucid/internal/intent"
	"github.com/lucid-sh/lucid/internal/patterns"
)

// Detect tests every conflict rule against the input and returns one
// Conflict per rule whose two terms both appear as case-insensitive
// substrings. Rules fire independently; nothing is deduplicated across
// rules. Terms keep the rule table's order.
func Detect(raw string, t *patterns.Tables) []intent.Conflict {
	lower := strings.ToLower(raw)

	var out []intent.Conflict
	for _, rule := range t.Conflicts {
		if strings.Contains(lower, rule.Terms[0]) && strings.Contains(lower, rule.Terms[1]) {
			out = append(out, intent.Conflict{
				Type:        rule.Type,
				Description: rule.Description,
				Severity:    rule.Severity,
				Terms:       rule.Terms,
			})
		}
	}
	return out
}
