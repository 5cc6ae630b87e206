package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCompilesEmbeddedTables(t *testing.T) {
	tb := Load()
	require.NotNil(t, tb)

	assert.NotEmpty(t, tb.Fillers)
	assert.NotEmpty(t, tb.Audiences)
	assert.NotEmpty(t, tb.Domains)
	assert.NotEmpty(t, tb.Structures)
	assert.NotEmpty(t, tb.Hard)
	assert.NotEmpty(t, tb.Soft)

	// Load is once-only: same pointer every call.
	assert.Same(t, tb, Load())
}

func TestTaskTypePriorityOrder(t *testing.T) {
	tb := Load()

	want := []string{"generate", "analyze", "explain", "fix", "optimize", "convert", "summarize"}
	require.Len(t, tb.TaskTypes, len(want))
	for i, cat := range tb.TaskTypes {
		assert.Equal(t, want[i], cat.Name, "category %d out of order", i)
	}
}

func TestLengthOrderIsShortLongMedium(t *testing.T) {
	tb := Load()

	require.Len(t, tb.Lengths, 3)
	assert.Equal(t, "short", tb.Lengths[0].Name)
	assert.Equal(t, "long", tb.Lengths[1].Name)
	assert.Equal(t, "medium", tb.Lengths[2].Name)
}

func TestCategoryMatchesWholeWords(t *testing.T) {
	tb := Load()

	generate := tb.TaskTypes[0]
	assert.True(t, generate.Matches("please write a poem"))
	assert.True(t, generate.Matches("WRITE a poem"))
	// "write" inside "rewrite" is not a whole-word hit.
	assert.False(t, generate.Matches("rewrite this paragraph"))
}

func TestClauseRuleExtract(t *testing.T) {
	tb := Load()
	must := tb.Hard[0]
	require.Equal(t, "must", must.Trigger)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "clause stops at sentence end",
			in:   "It must use Go. Other text here.",
			want: []string{"use Go"},
		},
		{
			name: "all matches collected",
			in:   "It must be fast! It must be small.",
			want: []string{"be fast", "be small"},
		},
		{
			name: "no trigger",
			in:   "nothing to see",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, must.Extract(tt.in))
		})
	}
}

func TestNegationRulesKeepTrigger(t *testing.T) {
	tb := Load()

	var no ClauseRule
	for _, r := range tb.Hard {
		if r.Trigger == "no" {
			no = r
		}
	}
	require.True(t, no.KeepTrigger)

	got := no.Extract("Use plain words, no jargon please.")
	require.Len(t, got, 1)
	assert.Equal(t, "no jargon please", got[0])
}

func TestConflictRulesWellFormed(t *testing.T) {
	tb := Load()
	require.NotEmpty(t, tb.Conflicts)

	blocking := 0
	for _, r := range tb.Conflicts {
		assert.NotEmpty(t, r.Terms[0])
		assert.NotEmpty(t, r.Terms[1])
		assert.NotEmpty(t, r.Description)
		assert.Contains(t, []string{"constraint", "goal", "output"}, r.Type)
		if r.Severity == "blocking" {
			blocking++
		} else {
			assert.Equal(t, "warning", r.Severity)
		}
	}

	// minimal/feature-rich is the single blocking rule.
	require.Equal(t, 1, blocking)
	last := tb.Conflicts[len(tb.Conflicts)-1]
	assert.Equal(t, [2]string{"minimal", "feature-rich"}, last.Terms)
	assert.Equal(t, "blocking", last.Severity)
}

func TestAudiencePhrasesNeedFor(t *testing.T) {
	tb := Load()

	var devs Labeled
	for _, row := range tb.Audiences {
		if row.Label == "developers" {
			devs = row
		}
	}
	require.NotEmpty(t, devs.Label)

	assert.True(t, devs.Matches("a guide for developers"))
	assert.True(t, devs.Matches("a guide FOR THE ENGINEERS"))
	// Bare mention without "for" is a topic, not an audience.
	assert.False(t, devs.Matches("developers write code"))
}
