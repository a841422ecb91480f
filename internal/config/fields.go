// Package config implements the three ctags-compatible selector grammars of
// SPEC_FULL.md §4.1: field selection, extras selection, and per-language
// kind selection, all parsed with last-wins semantics.
package config

import "strings"

// FieldsConfig gates which extension fields a walker may emit. The default
// set mirrors ctags' own defaults for the fields this implementation
// supports: name, input and pattern are always present on a tag line and
// are tracked here only so `-`/`+` toggling and enabled-field membership
// checks behave consistently with the rest of the set.
type FieldsConfig struct {
	enabled map[string]bool
}

// letterToField is the fixed single-letter alias table from SPEC_FULL.md
// §4.1 / original `fields_config.rs`.
var letterToField = map[rune]string{
	'n': "line",
	'k': "kind",
	's': "scope",
	'S': "signature",
	'a': "access",
	'f': "file",
	'e': "end",
	't': "typeref",
}

// nameToField accepts both the letter and the bare long-form token.
var nameToField = map[string]string{
	"n": "line", "line": "line",
	"k": "kind", "kind": "kind",
	"s": "scope", "scope": "scope",
	"S": "signature", "signature": "signature",
	"a": "access", "access": "access",
	"f": "file", "file": "file",
	"e": "end", "end": "end",
	"t": "typeref", "typeref": "typeref",
}

// NewFieldsConfig returns the ctags-compatible default set:
// {name, input, pattern, scope, typeref}.
func NewFieldsConfig() *FieldsConfig {
	return &FieldsConfig{enabled: map[string]bool{
		"name":    true,
		"input":   true,
		"pattern": true,
		"scope":   true,
		"typeref": true,
	}}
}

// ParseFieldsConfig parses s starting from the ctags defaults. Two forms
// are accepted: a concatenated run of single letters ("nksSafet") with no
// separators, or a comma-separated token list where each token is a bare
// name (enable), or `+name`/`-name` (enable/disable). The two forms are
// distinguished by the presence of a comma, `+`, or `-` in s — the same
// heuristic the original parser uses, so "n,+k" and "nksS" both work but a
// bare "n" alone is treated as the concatenated form (enabling "line").
// Later tokens win over earlier ones for the same field.
func ParseFieldsConfig(s string, warn func(string)) *FieldsConfig {
	c := NewFieldsConfig()
	if s == "" {
		return c
	}

	if strings.ContainsAny(s, ",+-") {
		for _, tok := range strings.Split(s, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			switch {
			case strings.HasPrefix(tok, "+"):
				c.apply(tok[1:], true, warn)
			case strings.HasPrefix(tok, "-"):
				c.apply(tok[1:], false, warn)
			default:
				c.apply(tok, true, warn)
			}
		}
		return c
	}

	for _, r := range s {
		field, ok := letterToField[r]
		if !ok {
			if warn != nil {
				warn("unknown field: " + string(r))
			}
			continue
		}
		c.enabled[field] = true
	}
	return c
}

func (c *FieldsConfig) apply(token string, enable bool, warn func(string)) {
	field, ok := nameToField[token]
	if !ok {
		if warn != nil {
			warn("unknown field: " + token)
		}
		return
	}
	if enable {
		c.enabled[field] = true
	} else {
		delete(c.enabled, field)
	}
}

// IsEnabled reports whether the named field should be emitted.
func (c *FieldsConfig) IsEnabled(field string) bool {
	if c == nil {
		return false
	}
	return c.enabled[field]
}
