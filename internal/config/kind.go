package config

import "strings"

// KindAlias maps a set of accepted tokens (letters and long names) to one
// canonical single-letter kind, e.g. {Aliases: []string{"f", "function"},
// Canonical: "f"}.
type KindAlias struct {
	Aliases   []string
	Canonical string
}

// KindConfig gates which canonical kind letters a language walker may
// emit, plus an optional traversal-skip optimization table (SPEC_FULL.md
// §4.1 "needs_traversal"). Correctness never depends on NeedsTraversal —
// walkers that don't bother consulting it simply traverse everything.
type KindConfig struct {
	enabled        map[string]bool
	needsTraversal map[string]bool
}

// NewKindConfig returns a config with exactly the given canonical kinds
// enabled (the language's "all kinds on" default).
func NewKindConfig(kinds ...string) *KindConfig {
	c := &KindConfig{enabled: make(map[string]bool, len(kinds))}
	for _, k := range kinds {
		c.enabled[k] = true
	}
	return c
}

// ParseKindConfig parses kindsStr against mapping, accepting either a
// comma-separated token list or a concatenated run of single letters, per
// SPEC_FULL.md §4.1.
func ParseKindConfig(kindsStr string, mapping []KindAlias, warn func(string)) *KindConfig {
	full := make(map[string]string)
	for _, m := range mapping {
		for _, alias := range m.Aliases {
			full[alias] = m.Canonical
		}
	}

	c := &KindConfig{enabled: make(map[string]bool)}

	if strings.Contains(kindsStr, ",") {
		for _, tok := range strings.Split(kindsStr, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if canonical, ok := full[tok]; ok {
				c.enabled[canonical] = true
			} else if warn != nil {
				warn("unknown tag kind: " + tok)
			}
		}
		return c
	}

	for _, r := range kindsStr {
		if r == ' ' || r == '\t' {
			continue
		}
		tok := string(r)
		if canonical, ok := full[tok]; ok {
			c.enabled[canonical] = true
		} else if warn != nil {
			warn("unknown tag kind: " + tok)
		}
	}
	return c
}

// IsEnabled reports whether the canonical kind letter should be emitted.
func (c *KindConfig) IsEnabled(kind string) bool {
	if c == nil {
		return false
	}
	return c.enabled[kind]
}

// Any reports whether at least one kind is enabled (used by traversal
// tables for container nodes that can hold "anything").
func (c *KindConfig) Any() bool {
	return c != nil && len(c.enabled) > 0
}

// SetNeedsTraversal records the precomputed optimization value for a node
// kind.
func (c *KindConfig) SetNeedsTraversal(nodeKind string, needs bool) {
	if c.needsTraversal == nil {
		c.needsTraversal = make(map[string]bool)
	}
	c.needsTraversal[nodeKind] = needs
}

// NeedsTraversal reports whether nodeKind needs to be recursed into to
// reach an enabled tag kind. Node kinds with no recorded entry default to
// true (always traverse), matching the original's Option::unwrap_or(true).
func (c *KindConfig) NeedsTraversal(nodeKind string) bool {
	if c == nil || c.needsTraversal == nil {
		return true
	}
	if v, ok := c.needsTraversal[nodeKind]; ok {
		return v
	}
	return true
}
