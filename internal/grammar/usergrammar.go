package grammar

import "fmt"

// UserGrammar is one `[[grammars]]` entry from the user config file
// (internal/userconfig), naming a shared-object grammar and the
// extensions/tag-query it should be registered for.
type UserGrammar struct {
	LanguageName string
	GrammarPath  string
	Extensions   []string
	TagQueryPath string
}

// LoadUserGrammar always returns an error and leaves r unchanged: no
// shared-object grammar is loaded and none of g's extensions is registered.
//
// Dynamic loading of arbitrary .so grammars has no portable, toolchain-free
// equivalent in Go the way it does in the original's host language: cgo's
// plugin story (`plugin.Open`) only works on a handful of GOOS/GOARCH
// combinations and cannot load a non-Go shared object's C ABI directly
// without an additional cgo shim per grammar. Rather than fabricate that
// shim, this is a documented stub: it returns a plain error so the
// registry degrades the same way a missing built-in binding does (spec.md
// §7: "user-grammar load failures → log warning, omit, continue").
func LoadUserGrammar(r *Registry, g UserGrammar) error {
	return fmt.Errorf("grammar: dynamic loading of %q from %q is not supported on this platform", g.LanguageName, g.GrammarPath)
}
