// Package rules holds the building blocks shared by platform classifiers:
// ordered pattern rules where the first match wins, and token tables mapping
// an extracted token to a resource type / media type pair.
package rules

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/aleister1102/ecverify/internal/models"
)

// Match is the context handed to a rule that matched.
type Match struct {
	// Groups holds the whole match at index 0 followed by the sub-matches.
	Groups []string
	URL    *models.ParsedURL
	Meta   models.AccessMeta
}

// Group returns sub-match i, or "" when it did not participate.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Rule is one pattern and the fields it derives.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Apply   func(m Match, r *models.Result)
}

// Set is an ordered list of rules evaluated against one subject string.
type Set struct {
	rules []Rule
}

// NewSet validates rules and keeps them in order.
func NewSet(rules ...Rule) (*Set, error) {
	for i, rule := range rules {
		if rule.Pattern == nil {
			return nil, fmt.Errorf("%w: rule %d (%s) has no pattern", ErrInvalidRule, i, rule.Name)
		}
		if rule.Apply == nil {
			return nil, fmt.Errorf("%w: rule %d (%s) has no apply function", ErrInvalidRule, i, rule.Name)
		}
	}
	return &Set{rules: rules}, nil
}

// Len returns the number of rules.
func (s *Set) Len() int {
	return len(s.rules)
}

// Apply runs the first rule whose pattern matches subject and returns its index,
// or -1 when no rule matched and r was left untouched.
func (s *Set) Apply(subject string, u *models.ParsedURL, meta models.AccessMeta, r *models.Result) int {
	for i, rule := range s.rules {
		groups := rule.Pattern.FindStringSubmatch(subject)
		if groups == nil {
			continue
		}
		rule.Apply(Match{Groups: groups, URL: u, Meta: meta}, r)
		return i
	}
	return -1
}

// RuleName returns the name of rule i, "" when out of range.
func (s *Set) RuleName(i int) string {
	if i < 0 || i >= len(s.rules) {
		return ""
	}
	return s.rules[i].Name
}

// ErrInvalidRule indicates a rule that cannot be compiled or applied.
var ErrInvalidRule = errors.New("invalid rule")

// Builder compiles rules and keeps the first compilation error.
type Builder struct {
	rules []Rule
	err   error
}

// NewBuilder creates an empty rule builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add compiles expr and appends the rule.
func (b *Builder) Add(name, expr string, apply func(m Match, r *models.Result)) *Builder {
	if b.err != nil {
		return b
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		b.err = fmt.Errorf("%w: %s: %v", ErrInvalidRule, name, err)
		return b
	}
	b.rules = append(b.rules, Rule{Name: name, Pattern: re, Apply: apply})
	return b
}

// Build returns the compiled set, or the first error met while adding rules.
func (b *Builder) Build() (*Set, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewSet(b.rules...)
}
