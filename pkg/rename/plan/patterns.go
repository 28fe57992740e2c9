package plan

import (
	"fmt"
	"regexp"
)

// Patterns holds the session's search pattern and replacement template.
//
// FindRaw tracks the search text exactly as typed and may not be a valid
// expression. The compiled pattern only advances on a successful compile, so
// an invalid edit leaves the last good pattern in effect and proposed names
// keep rendering from it.
type Patterns struct {
	// FindRaw is the search text as typed, possibly invalid.
	FindRaw string

	// Replace is the replacement template. It is literal text with $1 /
	// ${name} group references and has no invalid form.
	Replace string

	// find is the last successfully compiled form of FindRaw. Never nil.
	find *regexp.Regexp
}

// NewPatterns returns pattern state with the initial empty pattern, which
// matches and replaces nothing.
func NewPatterns() *Patterns {
	return &Patterns{find: regexp.MustCompile("")}
}

// SetFind records raw as the current search text and attempts to compile it.
// On success the compiled pattern is replaced; on failure the previous
// compiled pattern is kept and the compile error is returned.
func (p *Patterns) SetFind(raw string) error {
	p.FindRaw = raw

	re, err := regexp.Compile(raw)
	if err != nil {
		return fmt.Errorf("compile pattern: %w", err)
	}
	p.find = re
	return nil
}

// SetReplace records the replacement template.
func (p *Patterns) SetReplace(template string) {
	p.Replace = template
}

// Apply returns name with every non-overlapping match of the compiled
// pattern substituted by the replacement template, leftmost match first.
// Group references in the template follow regexp.Regexp.Expand rules: $1 and
// ${name} refer to capture groups, $$ is a literal dollar sign, and a
// reference to a group that does not exist expands to the empty string.
// The empty pattern leaves name unchanged.
func (p *Patterns) Apply(name string) string {
	if p.find.String() == "" {
		return name
	}
	return p.find.ReplaceAllString(name, p.Replace)
}

// Compiled reports the source text of the pattern currently in effect, which
// lags FindRaw while FindRaw is invalid.
func (p *Patterns) Compiled() string {
	return p.find.String()
}
