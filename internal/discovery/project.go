// Package discovery implements the file-tree/project discovery described
// as an external collaborator in spec.md §1 and detailed in SPEC_FULL.md
// §2: recursive file walking with shell-glob exclusion, append-mode tag
// file lookup, and project-root detection. The root/module detection here
// is adapted from the teacher's inspector/repository/detector.go, trimmed
// to what treetags actually needs: a project root and, for Go modules, the
// module path (used to report project-relative paths in discovery
// output), rather than the teacher's full name-extraction-per-ecosystem
// sweep.
package discovery

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// marker pairs a root file/directory with the project kind it signals.
type marker struct {
	file string
	kind string
}

var markers = []marker{
	{"go.mod", "go"},
	{"Cargo.toml", "rust"},
	{"package.json", "javascript"},
	{"pyproject.toml", "python"},
	{"pom.xml", "java"},
	{".git", "git"},
}

// Project describes the root detected for a file or directory.
type Project struct {
	RootPath     string
	Kind         string
	ModulePath   string // populated only for Kind == "go"
	RelativePath string
}

// Detector locates a project root by walking up from a starting path.
type Detector struct {
	fs afs.Service
}

// NewDetector returns a Detector ready for use.
func NewDetector() *Detector {
	return &Detector{fs: afs.New()}
}

// DetectRoot walks up from path looking for the first marker file in
// markers order, matching inspector/repository/detector.go's
// findProjectRoot search. If no marker is found, RootPath falls back to
// path's own directory and Kind is empty.
func (d *Detector) DetectRoot(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	dir := startDir
	root, kind := "", ""
	for {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(dir, m.file)); err == nil {
				root, kind = dir, m.kind
				break
			}
		}
		if root != "" {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	proj := &Project{RootPath: startDir, Kind: kind}
	if root != "" {
		proj.RootPath = root
	}
	if rel, err := filepath.Rel(proj.RootPath, absPath); err == nil {
		proj.RelativePath = filepath.ToSlash(rel)
	}
	if kind == "go" {
		proj.ModulePath = d.goModulePath(filepath.Join(root, "go.mod"))
	}
	return proj, nil
}

// goModulePath extracts the module path from a go.mod file, preferring
// golang.org/x/mod/modfile and falling back to a bare regexp match (the
// same two-step the teacher's extractGoModuleName uses) if parsing fails.
func (d *Detector) goModulePath(goModPath string) string {
	content, err := d.fs.DownloadWithURL(context.Background(), goModPath)
	if err == nil && len(content) > 0 {
		if mod, err := modfile.Parse(goModPath, content, nil); err == nil && mod.Module != nil {
			return mod.Module.Mod.Path
		}
	}

	data, err := os.ReadFile(goModPath)
	if err != nil {
		return ""
	}
	matches := moduleLineRegex.FindSubmatch(data)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

var moduleLineRegex = regexp.MustCompile(`module\s+(\S+)`)
