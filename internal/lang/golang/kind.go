package golang

import "github.com/viant/treetags/internal/config"

// kindMapping is the alias table from the original `GO_KIND_MAPPING`.
var kindMapping = []config.KindAlias{
	{Aliases: []string{"p", "package"}, Canonical: "p"},
	{Aliases: []string{"f", "function"}, Canonical: "f"},
	{Aliases: []string{"c", "constant"}, Canonical: "c"},
	{Aliases: []string{"t", "type"}, Canonical: "t"},
	{Aliases: []string{"v", "variable"}, Canonical: "v"},
	{Aliases: []string{"s", "struct"}, Canonical: "s"},
	{Aliases: []string{"i", "interface"}, Canonical: "i"},
	{Aliases: []string{"m", "member"}, Canonical: "m"},
	{Aliases: []string{"M", "anonymous"}, Canonical: "M"},
	{Aliases: []string{"n", "method"}, Canonical: "n"},
	{Aliases: []string{"P", "import"}, Canonical: "P"},
	{Aliases: []string{"a", "alias"}, Canonical: "a"},
}

var allKinds = []string{"p", "f", "c", "t", "v", "s", "i", "m", "M", "n", "P", "a"}

// DefaultKindConfig returns the Go kind selector with every kind enabled.
func DefaultKindConfig() *config.KindConfig {
	return config.NewKindConfig(allKinds...)
}

// ParseKindConfig parses a --kinds value against the Go alias table.
func ParseKindConfig(kindsStr string, warn func(string)) *config.KindConfig {
	return config.ParseKindConfig(kindsStr, kindMapping, warn)
}
