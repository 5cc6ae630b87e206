package intent

// Fixed assumption notes. Wording and order are part of the deterministic
// output contract.
const (
	assumeAudience = "Assuming a general audience since none was specified."
	assumeLength   = "Assuming a medium-length response since no length was specified."
	assumeDomain   = "No domain context detected; treating the request as general-purpose."
)

// Assumptions inspects an assembled record and returns the notes for
// fields that were left unresolved, in check order: audience, length,
// domain. A length of "any" counts as unresolved, since it is the
// default applied when other output signals were present.
func Assumptions(i *Intent) []string {
	var out []string
	if i.Audience == "" {
		out = append(out, assumeAudience)
	}
	if i.OutputExpectations == nil || i.OutputExpectations.Length == "any" {
		out = append(out, assumeLength)
	}
	if i.Domain == "" {
		out = append(out, assumeDomain)
	}
	return out
}
