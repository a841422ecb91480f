package typescript

import (
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/scope"
	"github.com/viant/treetags/internal/tag"
)

const (
	scopeClass     = "class"
	scopeInterface = "interface"
	scopeEnum      = "enum"
	scopeModule    = "module"
	scopeFunction  = "function"
)

// Context wraps the shared common.Context with the class/interface/enum/
// module/function scope stack described in SPEC_FULL.md §4.5. Unlike
// rust/go/cpp/javascript, TypeScript's create_tag only ever looks at the
// innermost scope frame rather than merging the whole stack. It emits no
// "roles" field: FieldsConfig has no token that would enable one (see
// DESIGN.md).
type Context struct {
	*common.Context
	stack scope.Stack
}

// NewContext builds a TypeScript walking context over base.
func NewContext(base *common.Context) *Context {
	return &Context{Context: base}
}

func (c *Context) pushScope(kind, name string) { c.stack.Push(kind, name) }
func (c *Context) popScope()                   { c.stack.Pop() }

// innermostScopeField returns the field key/value pair for the top of the
// stack, or ("", "") if the stack is empty.
func (c *Context) innermostScopeField() (string, string) {
	top, ok := c.stack.Top()
	if !ok {
		return "", ""
	}
	switch top.Kind {
	case scopeClass:
		return "class", top.Name
	case scopeInterface:
		return "interface", top.Name
	case scopeEnum:
		return "enum", top.Name
	case scopeModule:
		return "module", top.Name
	case scopeFunction:
		return "function", top.Name
	}
	return "", ""
}

// inFunctionScope reports whether any frame on the stack (not just the
// innermost) is a Function scope, matching process_variable_declarator's
// `scope_stack.iter().any(...)` check.
func (c *Context) inFunctionScope() bool {
	return c.stack.Any(scopeFunction)
}

// createTag implements TypeScript's own create_tag: kind/line always
// considered, extra fields inserted before scope, then the single
// innermost scope field, then end. There is no empty/"_" name rejection
// here — every caller already checks the name is non-empty before calling.
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
	if extra != nil {
		for _, k := range extra.Keys() {
			v, _ := extra.Get(k)
			fields.Set(k, v)
		}
	}
	if fc.IsEnabled("scope") {
		if key, value := c.innermostScopeField(); key != "" {
			fields.Set(key, value)
		}
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
