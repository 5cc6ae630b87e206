// Package compile turns an intent record into a ready-to-send
// natural-language instruction paragraph.
package compile

import (
	"strings"

	"github.com/lucid-sh/lucid/internal/intent"
)

// lengthPhrases maps a resolved length to its closing sentence. "any" has
// no entry on purpose: it adds nothing to the instruction.
var lengthPhrases = map[string]string{
	"short":  "Keep the response concise",
	"medium": "Provide a balanced, moderate-length response",
	"long":   "Provide a comprehensive, detailed response",
}

// Instruction compiles the record into prose: goal sentence, context
// sentence (audience and domain), a Requirements list of hard then soft
// constraints, and a closing sentence built from length, format and
// structure. Blocks are separated by blank lines and the result is
// trimmed. Pure: same record, identical text.
func Instruction(i *intent.Intent) string {
	var blocks []string

	if goal := sentence(i.PrimaryGoal); goal != "" {
		blocks = append(blocks, goal)
	}

	if ctx := contextSentence(i); ctx != "" {
		blocks = append(blocks, ctx)
	}

	if reqs := requirements(i.Constraints); reqs != "" {
		blocks = append(blocks, reqs)
	}

	if closing := closingSentence(i.OutputExpectations); closing != "" {
		blocks = append(blocks, closing)
	}

	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// contextSentence joins the audience and domain clauses with ". ".
func contextSentence(i *intent.Intent) string {
	var clauses []string
	if i.Audience != "" {
		clauses = append(clauses, "This is intended for "+i.Audience)
	}
	if i.Domain != "" {
		clauses = append(clauses, "The subject area is "+i.Domain)
	}
	if len(clauses) == 0 {
		return ""
	}
	return strings.Join(clauses, ". ") + "."
}

// requirements lists hard then soft constraint texts without type labels.
func requirements(c intent.Constraints) string {
	if len(c.Hard) == 0 && len(c.Soft) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Requirements:")
	for _, con := range c.Hard {
		b.WriteString("\n- " + con.Text)
	}
	for _, con := range c.Soft {
		b.WriteString("\n- " + con.Text)
	}
	return b.String()
}

func closingSentence(o *intent.OutputExpectation) string {
	if o == nil {
		return ""
	}

	var parts []string
	if phrase, ok := lengthPhrases[o.Length]; ok {
		parts = append(parts, phrase+".")
	}
	if o.Format != "" {
		parts = append(parts, "Format the response as "+o.Format+".")
	}
	if len(o.Structure) > 0 {
		parts = append(parts, "Include the following structure: "+strings.Join(o.Structure, "; ")+".")
	}
	return strings.Join(parts, " ")
}

// sentence ensures the goal reads as a full sentence with a terminal
// period.
func sentence(goal string) string {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return ""
	}
	if strings.HasSuffix(goal, ".") || strings.HasSuffix(goal, "!") || strings.HasSuffix(goal, "?") {
		return goal
	}
	return goal + "."
}
