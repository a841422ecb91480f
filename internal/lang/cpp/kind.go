package cpp

import "github.com/viant/treetags/internal/config"

var kindMapping = []config.KindAlias{
	{Aliases: []string{"n", "namespace"}, Canonical: "n"},
	{Aliases: []string{"c", "class"}, Canonical: "c"},
	{Aliases: []string{"s", "struct"}, Canonical: "s"},
	{Aliases: []string{"u", "union"}, Canonical: "u"},
	{Aliases: []string{"g", "enum"}, Canonical: "g"},
	{Aliases: []string{"e", "enumerator"}, Canonical: "e"},
	{Aliases: []string{"f", "function"}, Canonical: "f"},
	{Aliases: []string{"m", "member", "field"}, Canonical: "m"},
	{Aliases: []string{"v", "variable"}, Canonical: "v"},
	{Aliases: []string{"t", "typedef"}, Canonical: "t"},
	{Aliases: []string{"d", "macro", "define"}, Canonical: "d"},
}

var allKinds = []string{"n", "c", "s", "u", "g", "e", "f", "m", "v", "t", "d"}

// DefaultKindConfig returns the C++ kind selector with every kind enabled.
func DefaultKindConfig() *config.KindConfig {
	return config.NewKindConfig(allKinds...)
}

// ParseKindConfig parses a --kinds value against the C++ alias table.
func ParseKindConfig(kindsStr string, warn func(string)) *config.KindConfig {
	return config.ParseKindConfig(kindsStr, kindMapping, warn)
}
