package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucid-sh/lucid/internal/patterns"
)

func TestTaskType(t *testing.T) {
	tb := patterns.Load()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"generate", "write a poem", "generate"},
		{"analyze", "review this contract", "analyze"},
		{"explain", "explain how DNS works", "explain"},
		{"fix", "debug this function", "fix"},
		{"optimize", "refactor the parser", "optimize"},
		{"convert", "translate this to French", "convert"},
		{"summarize", "condense this chapter", "summarize"},
		{"priority order wins on ties", "write and then summarize the notes", "generate"},
		{"case-insensitive", "EXPLAIN this", "explain"},
		{"no trigger", "something vague", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaskType(tt.in, tb))
		})
	}
}

func TestAudience(t *testing.T) {
	tb := patterns.Load()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"developers", "an API guide for developers", "developers"},
		{"executives with article", "a report for my boss", "executives"},
		{"beginners", "a tutorial for beginners", "beginners"},
		{"children", "a story for kids", "children"},
		{"general public", "notes for a general audience", "general public"},
		{"phrase without for is ignored", "developers love tooling", ""},
		{"none", "a plain request", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Audience(tt.in, tb))
		})
	}
}

func TestDomain(t *testing.T) {
	tb := patterns.Load()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"backend", "Write a backend API guide for developers", "backend development"},
		{"web", "build a landing page", "web development"},
		{"data science", "train a neural network", "data science"},
		{"devops", "a docker deployment checklist", "devops"},
		{"security", "threat model for the login flow", "security"},
		{"first match wins", "a website backed by a database", "web development"},
		{"none", "a plain request", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Domain(tt.in, tb))
		})
	}
}
