package extract

import (
	"strings"

	"github.com/lucid-sh/lucid/internal/intent"
	"github.com/lucid-sh/lucid/internal/patterns"
)

// Output derives the output expectations from the input. It returns nil
// when no length, format or structure signal was found at all; otherwise
// an unresolved length defaults to "any".
func Output(raw string, t *patterns.Tables) *intent.OutputExpectation {
	length := ""
	for _, cat := range t.Lengths {
		if cat.Matches(raw) {
			length = cat.Name
			break
		}
	}

	format := ""
	for _, cat := range t.Formats {
		if cat.Matches(raw) {
			format = cat.Name
			break
		}
	}

	structure := structureHints(raw, t)

	if length == "" && format == "" && len(structure) == 0 {
		return nil
	}
	if length == "" {
		length = "any"
	}

	return &intent.OutputExpectation{
		Length:    length,
		Format:    format,
		Structure: structure,
	}
}

// structureHints collects the trailing clause of every structural-hint
// match, in pattern order. Unlike length and format this is not
// first-match-wins: all hints are kept.
func structureHints(raw string, t *patterns.Tables) []string {
	var out []string
	for _, re := range t.Structures {
		for _, m := range re.FindAllStringSubmatch(raw, -1) {
			clause := strings.TrimSpace(m[1])
			if clause != "" {
				out = append(out, clause)
			}
		}
	}
	return out
}
