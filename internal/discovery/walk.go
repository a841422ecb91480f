package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
)

// FileFinder walks a directory tree and returns the files it contains,
// skipping any whose path matches one of a set of shell-glob exclude
// patterns. Grounded on original_source/src/file_finder.rs's FileFinder,
// which pairs walkdir::WalkDir with a regex::RegexSet of converted
// patterns; the stdlib's filepath.WalkDir plus a slice of compiled
// *regexp.Regexp plays the same role.
type FileFinder struct {
	root     string
	excludes []*regexp.Regexp
}

// NewFileFinder compiles patterns (shell globs, via ShellToRegex) and
// returns a FileFinder rooted at root.
func NewFileFinder(root string, patterns []string) (*FileFinder, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(ShellToRegex(p))
		if err != nil {
			return nil, fmt.Errorf("discovery: compiling exclude pattern %q: %w", p, err)
		}
		excludes = append(excludes, re)
	}
	return &FileFinder{root: root, excludes: excludes}, nil
}

func (f *FileFinder) excluded(path string) bool {
	for _, re := range f.excludes {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Files returns every regular file under root whose path does not match
// any exclude pattern. An excluded directory is pruned entirely, matching
// WalkDir's filter_entry semantics in the original.
func (f *FileFinder) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if f.excluded(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovery: walking %s: %w", f.root, err)
	}
	return files, nil
}
