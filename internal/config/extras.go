package config

import "strings"

// ExtrasConfig gates the two ctags "extras" toggles used by walkers when
// deciding whether to emit scope-qualification fields beyond what
// FieldsConfig.IsEnabled("scope") alone would allow.
type ExtrasConfig struct {
	Qualified bool
	FileScope bool
}

// NewExtrasConfig returns both toggles disabled, matching ctags defaults.
func NewExtrasConfig() *ExtrasConfig {
	return &ExtrasConfig{}
}

// ParseExtrasConfig parses a comma-separated token list of
// `+q|+qualified|+f|+fileScope` (or `-` to disable), last-wins.
func ParseExtrasConfig(s string, warn func(string)) *ExtrasConfig {
	c := NewExtrasConfig()
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		var enable bool
		switch {
		case strings.HasPrefix(tok, "+"):
			enable, tok = true, tok[1:]
		case strings.HasPrefix(tok, "-"):
			enable, tok = false, tok[1:]
		default:
			if warn != nil {
				warn("unknown extra: " + tok)
			}
			continue
		}
		switch tok {
		case "q", "qualified":
			c.Qualified = enable
		case "f", "fileScope":
			c.FileScope = enable
		default:
			if warn != nil {
				warn("unknown extra: " + tok)
			}
		}
	}
	return c
}
