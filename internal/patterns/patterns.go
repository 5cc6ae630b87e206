// Package patterns holds the static trigger tables that drive intent
// normalization. The tables are defined in an embedded YAML document,
// compiled to regexps once on first use, and never mutated after that,
// so they are safe to share across goroutines.
package patterns

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var rawTables []byte

// Category is an ordered trigger-set row (task types, lengths, formats).
type Category struct {
	Name    string
	matcher *regexp.Regexp
}

// Matches reports whether any of the category's trigger words appear in text.
func (c Category) Matches(text string) bool {
	return c.matcher.MatchString(text)
}

// Labeled is an ordered (label, phrase set) row for audiences and domains.
type Labeled struct {
	Label   string
	matcher *regexp.Regexp
}

// Matches reports whether any of the row's phrases appear in text.
func (l Labeled) Matches(text string) bool {
	return l.matcher.MatchString(text)
}

// ClauseRule extracts the clause following a constraint trigger phrase.
type ClauseRule struct {
	Trigger string
	// KeepTrigger keeps the trigger word inside the extracted text.
	// Used for negations, where dropping "no"/"without" inverts the meaning.
	KeepTrigger bool
	matcher     *regexp.Regexp
}

// Extract returns every clause the rule matches in text, in input order.
// A clause runs from the trigger (or its end) to the next sentence
// terminator or end of string, untrimmed.
func (r ClauseRule) Extract(text string) []string {
	var out []string
	for _, m := range r.matcher.FindAllStringSubmatchIndex(text, -1) {
		// m[2]:m[3] is the trigger group, m[4]:m[5] the clause group.
		start := m[4]
		if r.KeepTrigger {
			start = m[2]
		}
		out = append(out, text[start:m[5]])
	}
	return out
}

// ConflictRule is one contradictory descriptor pair.
type ConflictRule struct {
	Terms       [2]string
	Type        string
	Severity    string
	Description string
}

// Tables is the compiled, immutable pattern library.
type Tables struct {
	Fillers    []string
	TaskTypes  []Category
	Audiences  []Labeled
	Domains    []Labeled
	Lengths    []Category
	Formats    []Category
	Structures []*regexp.Regexp
	Hard       []ClauseRule
	Soft       []ClauseRule
	Conflicts  []ConflictRule
}

var (
	loadOnce sync.Once
	loaded   *Tables
)

// Load returns the shared pattern tables, compiling them on first call.
// The tables are embedded in the binary, so a failure here is a build
// defect and panics rather than returning an error.
func Load() *Tables {
	loadOnce.Do(func() {
		t, err := parse(rawTables)
		if err != nil {
			panic(fmt.Sprintf("patterns: bad embedded tables: %v", err))
		}
		loaded = t
	})
	return loaded
}

// raw YAML shapes; sequences keep the priority order.
type rawFile struct {
	Fillers   []string `yaml:"fillers"`
	TaskTypes []struct {
		Name     string   `yaml:"name"`
		Triggers []string `yaml:"triggers"`
	} `yaml:"task_types"`
	Audiences []struct {
		Label   string   `yaml:"label"`
		Phrases []string `yaml:"phrases"`
	} `yaml:"audiences"`
	Domains []struct {
		Label   string   `yaml:"label"`
		Phrases []string `yaml:"phrases"`
	} `yaml:"domains"`
	Lengths []struct {
		Name     string   `yaml:"name"`
		Triggers []string `yaml:"triggers"`
	} `yaml:"lengths"`
	Formats []struct {
		Name     string   `yaml:"name"`
		Triggers []string `yaml:"triggers"`
	} `yaml:"formats"`
	Structures []struct {
		Pattern string `yaml:"pattern"`
	} `yaml:"structures"`
	Hard []struct {
		Trigger     string `yaml:"trigger"`
		KeepTrigger bool   `yaml:"keep_trigger"`
	} `yaml:"hard_constraints"`
	Soft []struct {
		Trigger     string `yaml:"trigger"`
		KeepTrigger bool   `yaml:"keep_trigger"`
	} `yaml:"soft_constraints"`
	Conflicts []struct {
		Terms       []string `yaml:"terms"`
		Type        string   `yaml:"type"`
		Severity    string   `yaml:"severity"`
		Description string   `yaml:"description"`
	} `yaml:"conflicts"`
}

func parse(data []byte) (*Tables, error) {
	var f rawFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	t := &Tables{Fillers: f.Fillers}

	for _, r := range f.TaskTypes {
		t.TaskTypes = append(t.TaskTypes, Category{Name: r.Name, matcher: wordSet(r.Triggers)})
	}
	for _, r := range f.Audiences {
		t.Audiences = append(t.Audiences, Labeled{Label: r.Label, matcher: audienceSet(r.Phrases)})
	}
	for _, r := range f.Domains {
		t.Domains = append(t.Domains, Labeled{Label: r.Label, matcher: wordSet(r.Phrases)})
	}
	for _, r := range f.Lengths {
		t.Lengths = append(t.Lengths, Category{Name: r.Name, matcher: wordSet(r.Triggers)})
	}
	for _, r := range f.Formats {
		t.Formats = append(t.Formats, Category{Name: r.Name, matcher: wordSet(r.Triggers)})
	}
	for _, r := range f.Structures {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("structure pattern %q: %w", r.Pattern, err)
		}
		t.Structures = append(t.Structures, re)
	}
	for _, r := range f.Hard {
		t.Hard = append(t.Hard, clauseRule(r.Trigger, r.KeepTrigger))
	}
	for _, r := range f.Soft {
		t.Soft = append(t.Soft, clauseRule(r.Trigger, r.KeepTrigger))
	}
	for i, r := range f.Conflicts {
		if len(r.Terms) != 2 {
			return nil, fmt.Errorf("conflict rule %d: want 2 terms, got %d", i, len(r.Terms))
		}
		t.Conflicts = append(t.Conflicts, ConflictRule{
			Terms:       [2]string{r.Terms[0], r.Terms[1]},
			Type:        r.Type,
			Severity:    r.Severity,
			Description: r.Description,
		})
	}

	return t, nil
}

// wordSet compiles a whole-word, case-insensitive alternation of phrases.
func wordSet(phrases []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + alternation(phrases) + `)\b`)
}

// audienceSet compiles audience phrases, which only count when preceded
// by "for" and an optional article.
func audienceSet(phrases []string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)\bfor\s+(?:the\s+|a\s+|an\s+|my\s+|your\s+|our\s+)?(?:` + alternation(phrases) + `)\b`)
}

// clauseRule compiles a constraint trigger into a rule that captures the
// clause up to the next sentence terminator.
func clauseRule(trigger string, keep bool) ClauseRule {
	re := regexp.MustCompile(`(?i)\b(` + alternation([]string{trigger}) + `)\b[\s,:]*([^.!?]*)`)
	return ClauseRule{Trigger: trigger, KeepTrigger: keep, matcher: re}
}

func alternation(phrases []string) string {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(p), ` `, `\s+`)
	}
	return strings.Join(quoted, "|")
}
