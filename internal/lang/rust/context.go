package rust

import (
	"strings"

	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/scope"
	"github.com/viant/treetags/internal/tag"
)

// Scope kind tokens pushed onto a Context's stack. Module frames accumulate
// into a `::`-joined `module` field; every other kind stores its name under
// its own field name directly.
const (
	scopeModule = "module"
	scopeStruct = "struct"
	scopeEnum   = "enum"
	scopeUnion  = "union"
	scopeTrait  = "trait"
	scopeImpl   = "implementation"
)

// Context wraps the shared common.Context with the nested module/struct/
// enum/union/trait/impl scope stack described in SPEC_FULL.md §4.5.
type Context struct {
	*common.Context
	stack scope.Stack
}

// NewContext builds a Rust walking context over base.
func NewContext(base *common.Context) *Context {
	return &Context{Context: base}
}

func (c *Context) pushScope(kind, name string) { c.stack.Push(kind, name) }
func (c *Context) popScope()                   { c.stack.Pop() }

// scopeFields renders the current stack into extension fields, one per
// scope kind plus a joined `module` path, mirroring the trait's
// `interface` relabeling used by the original `create_extension_fields`.
func (c *Context) scopeFields() *tag.Fields {
	fields := tag.NewFields()
	var modulePath []string

	for _, f := range c.stack.Frames() {
		switch f.Kind {
		case scopeModule:
			modulePath = append(modulePath, f.Name)
		case scopeStruct:
			fields.Set("struct", f.Name)
		case scopeEnum:
			fields.Set("enum", f.Name)
		case scopeUnion:
			fields.Set("union", f.Name)
		case scopeTrait:
			fields.Set("interface", f.Name)
		case scopeImpl:
			fields.Set("implementation", f.Name)
		}
	}

	if len(modulePath) > 0 {
		fields.Set("module", strings.Join(modulePath, "::"))
	}
	return fields
}

// topScope returns the kind of the innermost pushed frame, or "" if the
// stack is empty.
func (c *Context) topScope() string {
	top, ok := c.stack.Top()
	if !ok {
		return ""
	}
	return top.Kind
}
