package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/treetags/internal/discovery"
)

func TestDetector_DetectRoot_GoModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.23\n"), 0o644))
	sub := filepath.Join(dir, "pkg", "inner")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	file := filepath.Join(sub, "x.go")
	require.NoError(t, os.WriteFile(file, []byte("package inner\n"), 0o644))

	d := discovery.NewDetector()
	proj, err := d.DetectRoot(file)
	require.NoError(t, err)

	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	resolvedRoot, err := filepath.EvalSymlinks(proj.RootPath)
	require.NoError(t, err)
	assert.Equal(t, resolvedDir, resolvedRoot)
	assert.Equal(t, "go", proj.Kind)
	assert.Equal(t, "example.com/demo", proj.ModulePath)
	assert.Equal(t, filepath.ToSlash(filepath.Join("pkg", "inner", "x.go")), proj.RelativePath)
}

func TestFileFinder_ExcludesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_test.go"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "skip.go"), []byte("x"), 0o644))

	finder, err := discovery.NewFileFinder(dir, []string{"*_test.go", "*vendor*"})
	require.NoError(t, err)

	files, err := finder.Files()
	require.NoError(t, err)

	var base []string
	for _, f := range files {
		base = append(base, filepath.Base(f))
	}
	assert.Contains(t, base, "a.go")
	assert.NotContains(t, base, "a_test.go")
	assert.NotContains(t, base, "skip.go")
}

func TestFindTagFile_SearchesParents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "tags"), []byte(""), 0o644))
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(cwd)
	require.NoError(t, os.Chdir(sub))

	path, ok := discovery.FindTagFile("tags")
	require.True(t, ok)

	resolvedPath, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	resolvedWant, err := filepath.EvalSymlinks(filepath.Join(root, "tags"))
	require.NoError(t, err)
	assert.Equal(t, resolvedWant, resolvedPath)
}
