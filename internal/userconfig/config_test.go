package userconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/treetags/internal/grammar"
	"github.com/viant/treetags/internal/userconfig"
)

func TestLoad_MissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := userconfig.Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Grammars)
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[[grammars]]
language_name = "zig"
grammar_lib_path = "grammars/zig.so"
extensions = [".zig"]
query_file_path = "queries/zig.scm"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := userconfig.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Grammars, 1)
	g := cfg.Grammars[0]
	assert.Equal(t, "zig", g.LanguageName)
	assert.Equal(t, filepath.Join(dir, "grammars/zig.so"), g.GrammarLibPath)
	assert.Equal(t, filepath.Join(dir, "queries/zig.scm"), g.QueryFilePath)
	assert.Equal(t, []string{".zig"}, g.Extensions)
}

func TestConfig_RegisterAllWarnsOnFailure(t *testing.T) {
	cfg := &userconfig.Config{Grammars: []userconfig.GrammarEntry{{LanguageName: "zig", GrammarLibPath: "/tmp/zig.so"}}}
	var warnings []string
	cfg.RegisterAll(grammar.NewRegistry(), func(msg string) { warnings = append(warnings, msg) })
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "zig")
}
