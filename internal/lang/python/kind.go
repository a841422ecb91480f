package python

import "github.com/viant/treetags/internal/config"

var kindMapping = []config.KindAlias{
	{Aliases: []string{"c", "class"}, Canonical: "c"},
	{Aliases: []string{"f", "function"}, Canonical: "f"},
	{Aliases: []string{"m", "method"}, Canonical: "m"},
	{Aliases: []string{"v", "variable"}, Canonical: "v"},
	{Aliases: []string{"l", "local"}, Canonical: "l"},
	{Aliases: []string{"Y", "nameref"}, Canonical: "Y"},
}

var allKinds = []string{"c", "f", "m", "v", "l", "Y"}

// DefaultKindConfig returns the Python kind selector with every kind
// enabled.
func DefaultKindConfig() *config.KindConfig {
	return config.NewKindConfig(allKinds...)
}

// ParseKindConfig parses a --kinds value against the Python
// alias table.
func ParseKindConfig(kindsStr string, warn func(string)) *config.KindConfig {
	return config.ParseKindConfig(kindsStr, kindMapping, warn)
}
