package rust

import "github.com/viant/treetags/internal/config"

// kindMapping is the alias table from the original `RUST_KIND_MAPPING`:
// each canonical single-letter kind accepts its letter plus one or more
// long-form names on the --kinds selector.
var kindMapping = []config.KindAlias{
	{Aliases: []string{"n", "module"}, Canonical: "n"},
	{Aliases: []string{"s", "struct"}, Canonical: "s"},
	{Aliases: []string{"g", "enum"}, Canonical: "g"},
	{Aliases: []string{"u", "union"}, Canonical: "u"},
	{Aliases: []string{"i", "trait", "interface"}, Canonical: "i"},
	{Aliases: []string{"c", "impl", "implementation"}, Canonical: "c"},
	{Aliases: []string{"f", "function"}, Canonical: "f"},
	{Aliases: []string{"P", "method", "procedure"}, Canonical: "P"},
	{Aliases: []string{"m", "field"}, Canonical: "m"},
	{Aliases: []string{"e", "enumerator", "variant"}, Canonical: "e"},
	{Aliases: []string{"T", "typedef", "associated_type"}, Canonical: "T"},
	{Aliases: []string{"C", "constant"}, Canonical: "C"},
	{Aliases: []string{"v", "variable", "static"}, Canonical: "v"},
	{Aliases: []string{"t", "type", "alias"}, Canonical: "t"},
	{Aliases: []string{"M", "macro"}, Canonical: "M"},
}

// allKinds lists every canonical kind letter Rust can emit, for the
// "all enabled" default.
var allKinds = []string{"n", "s", "g", "u", "i", "c", "f", "P", "m", "e", "T", "C", "v", "t", "M"}

// DefaultKindConfig returns the Rust kind selector with every kind enabled,
// the ctags default used when no --kinds value is given.
func DefaultKindConfig() *config.KindConfig {
	return config.NewKindConfig(allKinds...)
}

// ParseKindConfig parses a --kinds value against the Rust alias
// table.
func ParseKindConfig(kindsStr string, warn func(string)) *config.KindConfig {
	return config.ParseKindConfig(kindsStr, kindMapping, warn)
}
