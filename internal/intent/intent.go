// Package intent defines the structured record produced by normalizing a
// raw natural-language request. Records are assembled once per call and
// never mutated afterwards.
package intent

// Version is embedded in every record and is part of the persisted
// contract with downstream consumers.
const Version = "1.0"

// Constraint type / conflict severity values.
const (
	ConstraintHard = "hard"
	ConstraintSoft = "soft"

	SeverityWarning  = "warning"
	SeverityBlocking = "blocking"
)

// Constraint is a requirement phrase lifted verbatim (trimmed) from the
// input. Type is ConstraintHard or ConstraintSoft.
type Constraint struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Constraints groups the hard and soft constraint lists.
type Constraints struct {
	Hard []Constraint `json:"hard"`
	Soft []Constraint `json:"soft"`
}

// Conflict is a detected contradiction between two descriptor words that
// both appear in the raw input.
type Conflict struct {
	Type        string    `json:"type"` // "constraint", "goal" or "output"
	Description string    `json:"description"`
	Severity    string    `json:"severity"` // SeverityWarning or SeverityBlocking
	Terms       [2]string `json:"terms"`
}

// OutputExpectation describes what the response should look like. The
// whole struct is nil when the input carried no length, format or
// structure signal; otherwise Length defaults to "any".
type OutputExpectation struct {
	Length    string   `json:"length"`
	Format    string   `json:"format,omitempty"`
	Structure []string `json:"structure,omitempty"`
}

// Intent is the root record. Empty strings stand for absent optional
// fields (task type, audience, domain).
type Intent struct {
	Version               string             `json:"version"`
	PrimaryGoal           string             `json:"primaryGoal"`
	TaskType              string             `json:"taskType,omitempty"`
	Audience              string             `json:"audience,omitempty"`
	Domain                string             `json:"domain,omitempty"`
	Constraints           Constraints        `json:"constraints"`
	OutputExpectations    *OutputExpectation `json:"outputExpectations,omitempty"`
	Conflicts             []Conflict         `json:"conflicts"`
	Assumptions           []string           `json:"assumptions"`
	RequiresClarification bool               `json:"requiresClarification"`
	RawInput              string             `json:"rawInput"`
}

// HasBlockingConflict reports whether any detected conflict is blocking.
// RequiresClarification equals this at assembly time.
func (i *Intent) HasBlockingConflict() bool {
	for _, c := range i.Conflicts {
		if c.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}
