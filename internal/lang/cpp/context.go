package cpp

import (
	"strings"

	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/scope"
	"github.com/viant/treetags/internal/tag"
)

const (
	scopeNamespace = "namespace"
	scopeClass     = "class"
	scopeStruct    = "struct"
	scopeUnion     = "union"
	scopeEnum      = "enum"
	scopeFunction  = "function"
)

// Context wraps the shared common.Context with the namespace/class/struct/
// union/enum/function scope stack described in SPEC_FULL.md §4.5.
type Context struct {
	*common.Context
	stack scope.Stack
}

// NewContext builds a C++ walking context over base.
func NewContext(base *common.Context) *Context {
	return &Context{Context: base}
}

func (c *Context) pushScope(kind, name string) { c.stack.Push(kind, name) }
func (c *Context) popScope()                   { c.stack.Pop() }

func (c *Context) scopeFields() *tag.Fields {
	fields := tag.NewFields()
	var namespacePath []string

	for _, f := range c.stack.Frames() {
		switch f.Kind {
		case scopeNamespace:
			namespacePath = append(namespacePath, f.Name)
		case scopeClass:
			fields.Set("class", f.Name)
		case scopeStruct:
			fields.Set("struct", f.Name)
		case scopeUnion:
			fields.Set("union", f.Name)
		case scopeEnum:
			fields.Set("enum", f.Name)
		case scopeFunction:
			fields.Set("function", f.Name)
		}
	}

	if len(namespacePath) > 0 {
		fields.Set("namespace", strings.Join(namespacePath, "::"))
	}
	return fields
}
