// Package userconfig loads the optional per-user grammar configuration
// described in SPEC_FULL.md §6: an XDG-located TOML file declaring extra
// tree-sitter grammars to register alongside the built-in table.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/viant/treetags/internal/grammar"
)

// GrammarEntry is one `[[grammars]]` table in config.toml.
type GrammarEntry struct {
	LanguageName   string   `toml:"language_name"`
	GrammarLibPath string   `toml:"grammar_lib_path"`
	Extensions     []string `toml:"extensions"`
	QueryFilePath  string   `toml:"query_file_path"`
}

// Config is the parsed contents of config.toml.
type Config struct {
	Grammars []GrammarEntry `toml:"grammars"`
}

// Path returns the config file path: $XDG_CONFIG_HOME/treetags/config.toml,
// falling back to $HOME/.config/treetags/config.toml.
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "treetags", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("userconfig: resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "treetags", "config.toml"), nil
}

// Load reads and parses the config file at path. A missing file is not an
// error: it returns a zero-value Config, since user configuration is
// always optional.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("userconfig: parsing %s: %w", path, err)
	}

	// Relative grammar/query paths resolve against the config file's own
	// directory, not the process's current directory.
	dir := filepath.Dir(path)
	for i := range cfg.Grammars {
		g := &cfg.Grammars[i]
		if g.GrammarLibPath != "" && !filepath.IsAbs(g.GrammarLibPath) {
			g.GrammarLibPath = filepath.Join(dir, g.GrammarLibPath)
		}
		if g.QueryFilePath != "" && !filepath.IsAbs(g.QueryFilePath) {
			g.QueryFilePath = filepath.Join(dir, g.QueryFilePath)
		}
	}
	return &cfg, nil
}

// RegisterAll attempts to load every configured grammar into r, logging
// (via warn) and continuing past any that fail — a user-grammar load
// failure is never fatal (spec.md §7).
func (c *Config) RegisterAll(r *grammar.Registry, warn func(string)) {
	for _, g := range c.Grammars {
		ug := grammar.UserGrammar{
			LanguageName: g.LanguageName,
			GrammarPath:  g.GrammarLibPath,
			Extensions:   g.Extensions,
			TagQueryPath: g.QueryFilePath,
		}
		if err := grammar.LoadUserGrammar(r, ug); err != nil {
			warn(err.Error())
		}
	}
}
