package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssumptionsOrderAndWording(t *testing.T) {
	// Nothing resolved: all three notes, in audience/length/domain order.
	got := Assumptions(&Intent{})
	assert.Equal(t, []string{
		"Assuming a general audience since none was specified.",
		"Assuming a medium-length response since no length was specified.",
		"No domain context detected; treating the request as general-purpose.",
	}, got)
}

func TestAssumptionsSkipResolvedFields(t *testing.T) {
	tests := []struct {
		name string
		in   *Intent
		want []string
	}{
		{
			name: "everything resolved",
			in: &Intent{
				Audience:           "developers",
				Domain:             "devops",
				OutputExpectations: &OutputExpectation{Length: "short"},
			},
			want: nil,
		},
		{
			name: "any length still assumes medium",
			in: &Intent{
				Audience:           "developers",
				Domain:             "devops",
				OutputExpectations: &OutputExpectation{Length: "any", Format: "json"},
			},
			want: []string{"Assuming a medium-length response since no length was specified."},
		},
		{
			name: "missing domain only",
			in: &Intent{
				Audience:           "students",
				OutputExpectations: &OutputExpectation{Length: "long"},
			},
			want: []string{"No domain context detected; treating the request as general-purpose."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assumptions(tt.in))
		})
	}
}

func TestHasBlockingConflict(t *testing.T) {
	i := &Intent{Conflicts: []Conflict{
		{Severity: SeverityWarning},
		{Severity: SeverityBlocking},
	}}
	assert.True(t, i.HasBlockingConflict())

	i = &Intent{Conflicts: []Conflict{{Severity: SeverityWarning}}}
	assert.False(t, i.HasBlockingConflict())

	assert.False(t, (&Intent{}).HasBlockingConflict())
}
