package python

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/scope"
	"github.com/viant/treetags/internal/tag"
)

const (
	scopeClass    = "class"
	scopeFunction = "function"
)

// Context wraps the shared common.Context with the class/function scope
// stack described in SPEC_FULL.md §4.5.
type Context struct {
	*common.Context
	stack scope.Stack
}

// NewContext builds a Python walking context over base.
func NewContext(base *common.Context) *Context {
	return &Context{Context: base}
}

func (c *Context) pushScope(kind, name string) { c.stack.Push(kind, name) }
func (c *Context) popScope()                   { c.stack.Pop() }

// lastTagName reports the most recently appended tag's name, if any — used by
// lambda-reassignment to decide whether to pop the preceding v/l tag.
func (c *Context) lastTagName() (string, bool) {
	if len(c.Tags) == 0 {
		return "", false
	}
	return c.Tags[len(c.Tags)-1].Name, true
}

// popLastTag removes the most recently appended tag.
func (c *Context) popLastTag() {
	if len(c.Tags) == 0 {
		return
	}
	c.Tags = c.Tags[:len(c.Tags)-1]
}

func (c *Context) innermostFrame() (scope.Frame, bool) {
	return c.stack.Top()
}

func (c *Context) nearestClass() (string, bool) {
	frames := c.stack.Frames()
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i].Kind == scopeClass {
			return frames[i].Name, true
		}
	}
	return "", false
}

func (c *Context) inFunctionScope() bool {
	return c.stack.Any(scopeFunction)
}

// inClassScopeTop reports whether the innermost frame is a Class scope,
// matching process_function_definition's `scope_stack.last()` check.
func (c *Context) inClassScopeTop() bool {
	f, ok := c.innermostFrame()
	return ok && f.Kind == scopeClass
}

func (c *Context) inClassScope() bool {
	return c.stack.Any(scopeClass)
}

// getAccessLevel is "protected" for a single-leading-underscore name that
// is not a dunder (does not also end with "__"), "public" otherwise.
func getAccessLevel(name string) string {
	if strings.HasPrefix(name, "_") && !strings.HasSuffix(name, "__") {
		return "protected"
	}
	return "public"
}

// createTag implements Python's own create_tag: kind/line, then access
// ("private" for locals, else getAccessLevel(name)), then any extras, then
// a single scope field — "class" preferring the nearest enclosing Class
// frame for methods, otherwise the innermost frame — then, faithfully
// carried over from the original, an always-empty "file" field gated on
// Extras.FileScope (never populated, a quirk of the source this is
// grounded on — see DESIGN.md), then end.
func (c *Context) createTag(name, kind string, node *sitter.Node, extra *tag.Fields) {
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
	if fc.IsEnabled("access") {
		access := getAccessLevel(name)
		if kind == "l" {
			access = "private"
		}
		fields.Set("access", access)
	}
	if extra != nil {
		for _, k := range extra.Keys() {
			v, _ := extra.Get(k)
			fields.Set(k, v)
		}
	}
	if fc.IsEnabled("scope") {
		if kind == "m" {
			if className, ok := c.nearestClass(); ok {
				fields.Set("class", className)
			}
		} else if f, ok := c.innermostFrame(); ok {
			switch f.Kind {
			case scopeClass:
				fields.Set("class", f.Name)
			case scopeFunction:
				fields.Set("function", f.Name)
			}
		}
	}
	if c.Config.Extras.FileScope {
		fields.Set("file", "")
	}
	if fc.IsEnabled("end") {
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
