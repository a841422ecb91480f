// Package common holds the Context embedded by the six hand-written
// language walkers (rust, go, cpp, javascript, typescript, python) and the
// CreateTag contract used by rust, go and cpp (javascript, typescript and
// python have their own createTag). It is the Go counterpart of the
// original `parser/helper.rs`:
// each walker builds its own scope-stack-aware wrapper around a *Context
// and tags nodes through CreateTag or its own createTag.
//
// The query-driven walkers (internal/lang/query) do not use this package —
// they have no scope stack and no extension fields, per SPEC_FULL.md §9's
// carried-over `_`-rejection asymmetry.
package common

import (
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/tag"
)

// Context is the per-file parse state threaded through a custom walker:
// immutable source/lines/file name, the mutable tag sink, and the
// language's kind/fields/extras configuration.
type Context struct {
	Source   []byte
	Lines    [][]byte
	FileName string
	Tags     []tag.Tag
	Kinds    *config.KindConfig
	Config   *config.Config
}

// NewContext precomputes Lines from src via tag.SplitLines.
func NewContext(src []byte, fileName string, kinds *config.KindConfig, cfg *config.Config) *Context {
	return &Context{
		Source:   src,
		Lines:    tag.SplitLines(src),
		FileName: fileName,
		Kinds:    kinds,
		Config:   cfg,
	}
}

// NodeText returns a node's source text.
func (c *Context) NodeText(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(c.Source)
}

// FindChildByKind returns the first direct child of n (named or anonymous,
// matching the original's unrestricted TreeCursor.goto_first_child walk)
// whose Type() is one of kinds, or nil. It does not recurse.
func FindChildByKind(n *sitter.Node, kinds ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		for _, k := range kinds {
			if child.Type() == k {
				return child
			}
		}
	}
	return nil
}

// NodeName is a convenience wrapper combining FindChildByKind and NodeText:
// the Go equivalent of the original's `get_node_name`.
func (c *Context) NodeName(n *sitter.Node, kinds ...string) string {
	child := FindChildByKind(n, kinds...)
	if child == nil {
		return ""
	}
	return c.NodeText(child)
}

// Extra carries the node-specific pieces of a tag beyond name/kind/node:
// the fields a walker fills in only when it has something to say.
// ScopeKeys is already in the language's natural order (e.g. the Go walker
// puts "package" first); CreateTag does not reorder it.
type Extra struct {
	Access              string
	Signature           string
	TypeRef             string
	ScopeKeys           *tag.Fields
	OmitEndIfSingleLine bool
}

// CreateTag implements the common contract of SPEC_FULL.md §4.5: reject
// empty or "_" names (this rejection is specific to rust, go and cpp —
// javascript, typescript and python accept "_" and keep their own
// reduced-field-set createTag rather than sharing this one, per SPEC_FULL
// §9 Open Question 2), reject disabled kinds, compute the address from
// the node's start row, and build extension fields in the documented
// order kind → line → access → file → signature → scope-keys → typeref →
// end, each gated by FieldsConfig (scope-keys additionally pass if
// Extras.Qualified is set, per spec.md §4.1).
func (c *Context) CreateTag(name, kind string, node *sitter.Node, extra Extra) {
	if name == "" || name == "_" {
		return
	}
	if !c.Kinds.IsEnabled(kind) {
		return
	}

	start := node.StartPoint()
	end := node.EndPoint()
	row := int(start.Row)

	address := tag.BuildAddress(row, c.Lines)
	fields := tag.NewFields()
	fc := c.Config.Fields

	if fc.IsEnabled("kind") {
		fields.Set("kind", kind)
	}
	if fc.IsEnabled("line") {
		fields.Set("line", strconv.Itoa(row+1))
	}
	if extra.Access != "" && fc.IsEnabled("access") {
		fields.Set("access", extra.Access)
	}
	if fc.IsEnabled("file") {
		fields.Set("file", c.FileName)
	}
	if extra.Signature != "" && fc.IsEnabled("signature") {
		fields.Set("signature", extra.Signature)
	}
	if extra.ScopeKeys != nil && (fc.IsEnabled("scope") || c.Config.Extras.Qualified) {
		for _, k := range extra.ScopeKeys.Keys() {
			v, _ := extra.ScopeKeys.Get(k)
			fields.Set(k, v)
		}
	}
	if extra.TypeRef != "" && fc.IsEnabled("typeref") {
		fields.Set("typeref", extra.TypeRef)
	}
	if fc.IsEnabled("end") && !(extra.OmitEndIfSingleLine && start.Row == end.Row) {
		fields.Set("end", strconv.Itoa(int(end.Row)+1))
	}

	c.Tags = append(c.Tags, tag.Tag{
		Name:     name,
		FileName: c.FileName,
		Address:  address,
		Kind:     kind,
		Fields:   fields,
	})
}
