package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucid-sh/lucid/internal/intent"
)

func TestNormalizeEmptyInput(t *testing.T) {
	res := Normalize("")
	rec := res.Intent

	assert.Equal(t, intent.Version, rec.Version)
	assert.Equal(t, "", rec.PrimaryGoal)
	assert.Equal(t, "", rec.TaskType)
	assert.Equal(t, "", rec.Audience)
	assert.Equal(t, "", rec.Domain)
	assert.Empty(t, rec.Constraints.Hard)
	assert.Empty(t, rec.Constraints.Soft)
	assert.Nil(t, rec.OutputExpectations)
	assert.Empty(t, rec.Conflicts)
	assert.False(t, rec.RequiresClarification)
}

func TestNormalizeShortButComprehensive(t *testing.T) {
	res := Normalize("Write something short but comprehensive")
	rec := res.Intent

	require.Len(t, rec.Conflicts, 1)
	c := rec.Conflicts[0]
	assert.Equal(t, [2]string{"short", "comprehensive"}, c.Terms)
	assert.Equal(t, intent.SeverityWarning, c.Severity)
	assert.Equal(t, "output", c.Type)
	assert.False(t, rec.RequiresClarification)
}

func TestNormalizeBackendGuide(t *testing.T) {
	res := Normalize("Write a backend API guide for developers")
	rec := res.Intent

	assert.Equal(t, "Write a backend API guide for developers", rec.PrimaryGoal)
	assert.Equal(t, "generate", rec.TaskType)
	assert.Equal(t, "developers", rec.Audience)
	assert.Equal(t, "backend development", rec.Domain)
}

func TestNormalizeHardAndSoftConstraints(t *testing.T) {
	res := Normalize("This must include code examples and should ideally be concise")
	rec := res.Intent

	require.NotEmpty(t, rec.Constraints.Hard)
	assert.Contains(t, rec.Constraints.Hard[0].Text, "include code examples")

	var soft []string
	for _, c := range rec.Constraints.Soft {
		soft = append(soft, c.Text)
	}
	assert.Contains(t, soft, "be concise")
}

func TestNormalizeBlockingConflict(t *testing.T) {
	res := Normalize("Design a minimal but feature-rich dashboard")
	rec := res.Intent

	var found *intent.Conflict
	for i := range rec.Conflicts {
		if rec.Conflicts[i].Terms == [2]string{"minimal", "feature-rich"} {
			found = &rec.Conflicts[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, intent.SeverityBlocking, found.Severity)
	assert.True(t, rec.RequiresClarification)
}

func TestRequiresClarificationIffBlocking(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Write something short but comprehensive", false},
		{"Design a minimal but feature-rich dashboard", true},
		{"a perfectly ordinary request", false},
	}

	for _, tt := range tests {
		rec := Normalize(tt.in).Intent
		assert.Equal(t, tt.want, rec.RequiresClarification, "input %q", tt.in)
		assert.Equal(t, tt.want, rec.HasBlockingConflict(), "input %q", tt.in)
	}
}

func TestConflictTermsAppearInRawInput(t *testing.T) {
	rec := Normalize("Make it SIMPLE yet detailed, casual and professional.").Intent
	require.NotEmpty(t, rec.Conflicts)

	lower := strings.ToLower(rec.RawInput)
	for _, c := range rec.Conflicts {
		assert.Contains(t, lower, c.Terms[0])
		assert.Contains(t, lower, c.Terms[1])
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	in := "Please write a short markdown guide for beginners with 3 sections. It must include examples and should ideally avoid jargon."

	a := Normalize(in)
	b := Normalize(in)

	assert.Equal(t, a.Intent, b.Intent)
	assert.Equal(t, a.Notation, b.Notation)
	assert.Equal(t, a.Instruction, b.Instruction)
}

func TestNormalizeAppliesAssumptions(t *testing.T) {
	rec := Normalize("summarize this").Intent

	assert.Equal(t, []string{
		"Assuming a general audience since none was specified.",
		"Assuming a medium-length response since no length was specified.",
		"No domain context detected; treating the request as general-purpose.",
	}, rec.Assumptions)
}

func TestNormalizeKeepsRawInput(t *testing.T) {
	in := "  Explain DNS.  "
	rec := Normalize(in).Intent
	assert.Equal(t, in, rec.RawInput)
	assert.Equal(t, "Explain DNS", rec.PrimaryGoal)
}
