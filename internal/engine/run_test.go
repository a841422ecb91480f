package engine_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/treetags/internal/engine"
)

func TestRun_GeneratesTagsForGoAndPython(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes.go"), []byte(
		"package shapes\n\nfunc Area() int {\n\treturn 1\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes.py"), []byte(
		"def area():\n    return 1\n"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(cwd)
	require.NoError(t, os.Chdir(dir))

	var warnings []string
	err = engine.Run(engine.Options{
		Paths:   []string{"."},
		TagFile: "tags",
		Warn:    func(msg string) { warnings = append(warnings, msg) },
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "tags"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Area\t")
	assert.Contains(t, content, "area\t")
	assert.Empty(t, warnings)
}

func TestRun_RejectsTagFilePathSeparator(t *testing.T) {
	err := engine.Run(engine.Options{TagFile: "sub/tags"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "path separator"))
}
