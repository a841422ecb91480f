package typescript

import "github.com/viant/treetags/internal/config"

var kindMapping = []config.KindAlias{
	{Aliases: []string{"f", "function"}, Canonical: "f"},
	{Aliases: []string{"G", "generator"}, Canonical: "G"},
	{Aliases: []string{"c", "class"}, Canonical: "c"},
	{Aliases: []string{"i", "interface"}, Canonical: "i"},
	{Aliases: []string{"g", "enum"}, Canonical: "g"},
	{Aliases: []string{"e", "enumerator"}, Canonical: "e"},
	{Aliases: []string{"n", "module", "namespace"}, Canonical: "n"},
	{Aliases: []string{"m", "method"}, Canonical: "m"},
	{Aliases: []string{"p", "property"}, Canonical: "p"},
	{Aliases: []string{"l", "local"}, Canonical: "l"},
	{Aliases: []string{"C", "constant"}, Canonical: "C"},
	{Aliases: []string{"v", "variable"}, Canonical: "v"},
	{Aliases: []string{"a", "alias"}, Canonical: "a"},
}

var allKinds = []string{"f", "G", "c", "i", "g", "e", "n", "m", "p", "l", "C", "v", "a"}

// DefaultKindConfig returns the TypeScript kind selector with every kind
// enabled.
func DefaultKindConfig() *config.KindConfig {
	return config.NewKindConfig(allKinds...)
}

// ParseKindConfig parses a --kinds value against the
// TypeScript alias table.
func ParseKindConfig(kindsStr string, warn func(string)) *config.KindConfig {
	return config.ParseKindConfig(kindsStr, kindMapping, warn)
}
