// Package notation renders an intent record into its line-oriented,
// @-tagged textual encoding. Downstream consumers parse this format by
// splitting on blank lines and @-prefixed section markers, so section
// order and spacing are a contract: same record, byte-identical text.
package notation

import (
	"strings"

	"github.com/lucid-sh/lucid/internal/intent"
)

// Render encodes the record. Sections appear in a fixed order, empty
// sections are omitted entirely, and non-empty sections are separated by
// a single blank line.
func Render(i *intent.Intent) string {
	var sections []string

	sections = append(sections, "@goal "+i.PrimaryGoal)

	if i.TaskType != "" {
		sections = append(sections, "@task "+i.TaskType)
	}
	if i.Audience != "" {
		sections = append(sections, "@audience "+i.Audience)
	}
	if i.Domain != "" {
		sections = append(sections, "@domain "+i.Domain)
	}

	if s := itemSection("@constraints", constraintTexts(i.Constraints.Hard)); s != "" {
		sections = append(sections, s)
	}
	if s := itemSection("@preferences", constraintTexts(i.Constraints.Soft)); s != "" {
		sections = append(sections, s)
	}

	if s := outputSection(i.OutputExpectations); s != "" {
		sections = append(sections, s)
	}

	if len(i.Conflicts) > 0 {
		var b strings.Builder
		b.WriteString("@conflicts")
		for _, c := range i.Conflicts {
			tag := "[WARNING]"
			if c.Severity == intent.SeverityBlocking {
				tag = "[BLOCKING]"
			}
			b.WriteString("\n- " + tag + " " + c.Description + " (" + c.Terms[0] + " vs " + c.Terms[1] + ")")
		}
		sections = append(sections, b.String())
	}

	if s := itemSection("@assumptions", i.Assumptions); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, "\n\n")
}

// outputSection renders length/format/structure lines, skipping the
// "any" length since it carries no information.
func outputSection(o *intent.OutputExpectation) string {
	if o == nil {
		return ""
	}

	var lines []string
	if o.Length != "" && o.Length != "any" {
		lines = append(lines, "length: "+o.Length)
	}
	if o.Format != "" {
		lines = append(lines, "format: "+o.Format)
	}
	if len(o.Structure) > 0 {
		lines = append(lines, "structure:")
		for _, s := range o.Structure {
			lines = append(lines, "- "+s)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	return "@output\n" + strings.Join(lines, "\n")
}

func itemSection(tag string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(tag)
	for _, item := range items {
		b.WriteString("\n- " + item)
	}
	return b.String()
}

func constraintTexts(cs []intent.Constraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Text
	}
	return out
}
