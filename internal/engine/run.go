// Package engine wires together the collaborators spec.md §1 calls
// "external" (discovery, grammar registry, worker pool) with the core tag
// pipeline (per-language walkers, sink) into the single Run entry point
// cmd/treetags calls. Keeping this outside cmd/ lets it be exercised by
// tests without going through cobra.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/discovery"
	"github.com/viant/treetags/internal/grammar"
	"github.com/viant/treetags/internal/lang/cpp"
	"github.com/viant/treetags/internal/lang/golang"
	"github.com/viant/treetags/internal/lang/javascript"
	"github.com/viant/treetags/internal/lang/python"
	"github.com/viant/treetags/internal/lang/query"
	"github.com/viant/treetags/internal/lang/rust"
	"github.com/viant/treetags/internal/lang/typescript"
	"github.com/viant/treetags/internal/sink"
	"github.com/viant/treetags/internal/tag"
	"github.com/viant/treetags/internal/worker"
)

// Options configures one Run.
type Options struct {
	Paths     []string // files and/or directories
	TagFile   string   // bare file name, no path separators
	Append    bool
	Workers   int
	Excludes  []string
	KindsStr  string
	FieldsStr string
	ExtrasStr string
	Registry  *grammar.Registry // nil uses grammar.NewRegistry()
	Warn      func(string)      // nil discards warnings
}

// Run executes one full discovery → walk → sort → write pass, per
// spec.md §§4.6–4.7's pipeline description. It returns a non-nil error
// only for the fatal-configuration and I/O classes of spec.md §7; parse
// failures for individual files are reported through Warn and otherwise
// skipped, since the program "always tries to produce the best-effort
// tags file" (spec.md §7).
func Run(opts Options) error {
	warn := opts.Warn
	if warn == nil {
		warn = func(string) {}
	}
	if strings.ContainsAny(opts.TagFile, `/\`) {
		return fmt.Errorf("engine: tag file name %q must not contain a path separator", opts.TagFile)
	}

	tagFilePath, err := discovery.DetermineTagFilePath(opts.TagFile, opts.Append)
	if err != nil {
		return err
	}

	files, err := expandPaths(opts.Paths, opts.Excludes)
	if err != nil {
		return err
	}

	reg := opts.Registry
	if reg == nil {
		reg = grammar.NewRegistry()
	}
	cfg := &config.Config{
		Fields: config.ParseFieldsConfig(opts.FieldsStr, warn),
		Extras: config.ParseExtrasConfig(opts.ExtrasStr, warn),
	}

	pool := worker.NewPool(opts.Workers)
	parsers := make([]*workerParser, pool.Size)
	for i := range parsers {
		parsers[i] = &workerParser{parser: sitter.NewParser()}
	}
	results := pool.Process(files, func(workerID int, path string) ([]tag.Tag, error) {
		return processFile(path, reg, cfg, opts.KindsStr, warn, parsers[workerID])
	})

	s := sink.New()
	for _, r := range results {
		if r.Err != nil {
			warn(fmt.Sprintf("%s: %v", r.Path, r.Err))
			continue
		}
		s.Add(r.Tags)
	}

	if opts.Append {
		existing, err := sink.ParseExisting(tagFilePath)
		if err != nil {
			return err
		}
		s.Merge(existing)
	}

	return s.Write(tagFilePath)
}

// expandPaths resolves the CLI's positional arguments into a flat file
// list: directories are recursively walked with exclusion, files are
// taken as-is.
func expandPaths(paths []string, excludes []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		finder, err := discovery.NewFileFinder(p, excludes)
		if err != nil {
			return nil, err
		}
		found, err := finder.Files()
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// workerParser is one worker's exclusively-owned, reusable tree-sitter
// parser (spec.md §4.6/§5: "each worker exclusively owns one Parser and
// its reusable tree-sitter state"). lang records the language last set on
// parser so SetLanguage is only called again when a file switches it.
type workerParser struct {
	parser *sitter.Parser
	lang   *sitter.Language
}

// processFile parses one file and dispatches to the custom or
// query-driven walker family registered for its extension. It reuses the
// worker's own parser rather than allocating a new one per file.
func processFile(path string, reg *grammar.Registry, cfg *config.Config, kindsStr string, warn func(string), wp *workerParser) ([]tag.Tag, error) {
	entry, err := reg.Lookup(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if entry.Language == nil {
		return nil, fmt.Errorf("no grammar binding available for %s", entry.Name)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if wp.lang != entry.Language {
		wp.parser.SetLanguage(entry.Language)
		wp.lang = entry.Language
	}
	tree, err := wp.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	root := tree.RootNode()

	if entry.Kind == grammar.QueryDriven {
		return query.GenerateTags(root, src, path, query.Spec{Name: entry.Name, Language: entry.Language, Query: entry.Query})
	}

	kinds := kindConfigFor(entry.Name, kindsStr, warn)
	return generateCustom(entry.Name, root, src, path, kinds, cfg), nil
}

func kindConfigFor(name, kindsStr string, warn func(string)) *config.KindConfig {
	var defaults func() *config.KindConfig
	var parse func(string, func(string)) *config.KindConfig

	switch name {
	case "rust":
		defaults, parse = rust.DefaultKindConfig, rust.ParseKindConfig
	case "go":
		defaults, parse = golang.DefaultKindConfig, golang.ParseKindConfig
	case "cpp":
		defaults, parse = cpp.DefaultKindConfig, cpp.ParseKindConfig
	case "javascript":
		defaults, parse = javascript.DefaultKindConfig, javascript.ParseKindConfig
	case "typescript":
		defaults, parse = typescript.DefaultKindConfig, typescript.ParseKindConfig
	case "python":
		defaults, parse = python.DefaultKindConfig, python.ParseKindConfig
	default:
		return nil
	}

	if kindsStr == "" {
		return defaults()
	}
	return parse(kindsStr, warn)
}

func generateCustom(name string, root *sitter.Node, src []byte, path string, kinds *config.KindConfig, cfg *config.Config) []tag.Tag {
	switch name {
	case "rust":
		return rust.GenerateTags(root, src, path, kinds, cfg)
	case "go":
		return golang.GenerateTags(root, src, path, kinds, cfg)
	case "cpp":
		return cpp.GenerateTags(root, src, path, kinds, cfg)
	case "javascript":
		return javascript.GenerateTags(root, src, path, kinds, cfg)
	case "typescript":
		return typescript.GenerateTags(root, src, path, kinds, cfg)
	case "python":
		return python.GenerateTags(root, src, path, kinds, cfg)
	default:
		return nil
	}
}
