package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/treetags/internal/engine"
	"github.com/viant/treetags/internal/grammar"
	"github.com/viant/treetags/internal/userconfig"
)

var (
	flagTagFile  string
	flagAppend   bool
	flagWorkers  int
	flagExclude  []string
	flagFields   string
	flagKinds    string
	flagExtras   string
	flagNoConfig bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treetags [paths...]",
		Short: "Generate a ctags-compatible tags file from tree-sitter parses",
		Long: `treetags walks one or more files or directories, parses each recognized
file with tree-sitter, and writes a ctags-compatible tags file describing
every definition it finds.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRoot,
	}

	cmd.Flags().StringVarP(&flagTagFile, "file", "f", "tags", "Tag file name (must not contain a path separator)")
	cmd.Flags().BoolVarP(&flagAppend, "append", "a", false, "Append to an existing tag file instead of overwriting")
	cmd.Flags().IntVar(&flagWorkers, "workers", 4, "Number of concurrent parse workers")
	cmd.Flags().StringArrayVar(&flagExclude, "exclude", nil, "Shell glob pattern to exclude (repeatable)")
	cmd.Flags().StringVar(&flagFields, "fields", "", "Extension fields to enable/disable, e.g. \"+S,-f\" or \"nksSafet\"")
	cmd.Flags().StringVar(&flagKinds, "kinds", "", "Tag kinds to enable per language, e.g. \"f,c,v\"")
	cmd.Flags().StringVar(&flagExtras, "extras", "", "Extras to enable, e.g. \"+q\"")
	cmd.Flags().BoolVar(&flagNoConfig, "no-user-config", false, "Skip loading the user grammar config file")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	reg := grammar.NewRegistry()

	if !flagNoConfig {
		if path, err := userconfig.Path(); err == nil {
			if cfg, err := userconfig.Load(path); err == nil {
				cfg.RegisterAll(reg, warnLine)
			} else {
				warnLine(err.Error())
			}
		}
	}

	return engine.Run(engine.Options{
		Paths:     args,
		TagFile:   flagTagFile,
		Append:    flagAppend,
		Workers:   flagWorkers,
		Excludes:  flagExclude,
		FieldsStr: flagFields,
		KindsStr:  flagKinds,
		ExtrasStr: flagExtras,
		Registry:  reg,
		Warn:      warnLine,
	})
}

func warnLine(msg string) {
	fmt.Fprintf(os.Stderr, "treetags: warning: %s\n", msg)
}
