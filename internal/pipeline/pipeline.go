// Package pipeline wires the extractors, the conflict detector, the
// assembler and the two renderers into the single normalization entry
// point. The pipeline is synchronous, performs no I/O and never fails:
// malformed input still yields a well-formed, minimal record.
package pipeline

import (
	"github.com/lucid-sh/lucid/internal/compile"
	"github.com/lucid-sh/lucid/internal/conflict"
	"github.com/lucid-sh/lucid/internal/extract"
	"github.com/lucid-sh/lucid/internal/intent"
	"github.com/lucid-sh/lucid/internal/notation"
	"github.com/lucid-sh/lucid/internal/patterns"
)

// Result carries the frozen record and its two canonical encodings.
type Result struct {
	Intent      *intent.Intent
	Notation    string
	Instruction string
}

// Normalize converts a raw request into a structured intent record and
// renders both encodings. Safe for concurrent use: the only shared state
// is the read-only pattern tables.
func Normalize(raw string) *Result {
	t := patterns.Load()

	rec := &intent.Intent{
		Version:            intent.Version,
		PrimaryGoal:        extract.Goal(raw, t),
		TaskType:           extract.TaskType(raw, t),
		Audience:           extract.Audience(raw, t),
		Domain:             extract.Domain(raw, t),
		Constraints:        extract.Constraints(raw, t),
		OutputExpectations: extract.Output(raw, t),
		Conflicts:          conflict.Detect(raw, t),
		RawInput:           raw,
	}
	rec.Assumptions = intent.Assumptions(rec)
	rec.RequiresClarification = rec.HasBlockingConflict()

	return &Result{
		Intent:      rec,
		Notation:    notation.Render(rec),
		Instruction: compile.Instruction(rec),
	}
}
