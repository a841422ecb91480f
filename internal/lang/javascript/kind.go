package javascript

import "github.com/viant/treetags/internal/config"

var kindMapping = []config.KindAlias{
	{Aliases: []string{"f", "function"}, Canonical: "f"},
	{Aliases: []string{"g", "generator"}, Canonical: "g"},
	{Aliases: []string{"c", "class"}, Canonical: "c"},
	{Aliases: []string{"C", "constant"}, Canonical: "C"},
	{Aliases: []string{"v", "variable"}, Canonical: "v"},
	{Aliases: []string{"m", "method"}, Canonical: "m"},
	{Aliases: []string{"M", "field"}, Canonical: "M"},
	{Aliases: []string{"G", "getter"}, Canonical: "G"},
	{Aliases: []string{"S", "setter"}, Canonical: "S"},
	{Aliases: []string{"p", "property"}, Canonical: "p"},
}

var allKinds = []string{"f", "g", "c", "C", "v", "m", "M", "G", "S", "p"}

// DefaultKindConfig returns the JavaScript kind selector with every kind
// enabled.
func DefaultKindConfig() *config.KindConfig {
	return config.NewKindConfig(allKinds...)
}

// ParseKindConfig parses a --kinds value against the
// JavaScript alias table.
func ParseKindConfig(kindsStr string, warn func(string)) *config.KindConfig {
	return config.ParseKindConfig(kindsStr, kindMapping, warn)
}
