package discovery

import (
	"fmt"
	"os"
	"path/filepath"
)

// DetermineTagFilePath resolves the tag file path for a run: in append
// mode it searches for an existing tag file (FindTagFile); otherwise it
// returns name resolved against the current directory. Grounded on
// original_source/src/file_finder.rs's determine_tag_file_path.
func DetermineTagFilePath(name string, append bool) (string, error) {
	if append {
		path, ok := FindTagFile(name)
		if !ok {
			return "", fmt.Errorf("discovery: could not find the tag file: %s", name)
		}
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("discovery: getting current directory: %w", err)
	}
	return filepath.Join(cwd, name), nil
}

// FindTagFile searches the current directory, then each parent in turn,
// for a file named filename, per spec.md §6's "append mode finds an
// existing tag file by searching the current directory, then parents,
// until found".
func FindTagFile(filename string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
