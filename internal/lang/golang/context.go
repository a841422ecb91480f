package golang

import (
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/scope"
	"github.com/viant/treetags/internal/tag"
)

const (
	scopePackage   = "package"
	scopeStruct    = "struct"
	scopeInterface = "interface"
)

// Context wraps the shared common.Context with the package/struct/interface
// scope stack described in SPEC_FULL.md §4.5. The package frame is pushed
// once, on entering `package_clause`, and deliberately never popped — it is
// a file-wide scope, not a nesting one (SPEC_FULL.md §9).
type Context struct {
	*common.Context
	stack scope.Stack
}

// NewContext builds a Go walking context over base.
func NewContext(base *common.Context) *Context {
	return &Context{Context: base}
}

func (c *Context) pushScope(kind, name string) { c.stack.Push(kind, name) }
func (c *Context) popScope()                   { c.stack.Pop() }

// packageName returns the file's package name, or "" if package_clause has
// not been seen yet.
func (c *Context) packageName() string {
	for _, f := range c.stack.Frames() {
		if f.Kind == scopePackage {
			return f.Name
		}
	}
	return ""
}

// qualify renders name as "pkg.name", or ".name" when the package is
// unknown, matching the original's `format!("{}.{}", package_name, name)`.
func (c *Context) qualify(name string) string {
	return c.packageName() + "." + name
}

// scopeFields builds the current stack's extension fields: package always
// first (per the Go-specific field-order override), struct/interface
// qualified by package.
func (c *Context) scopeFields() *tag.Fields {
	fields := tag.NewFields()
	for _, f := range c.stack.Frames() {
		switch f.Kind {
		case scopePackage:
			fields.Set("package", f.Name)
		case scopeStruct:
			fields.Set("struct", c.qualify(f.Name))
		case scopeInterface:
			fields.Set("interface", c.qualify(f.Name))
		}
	}
	return fields
}

// innermostInterface returns the name of the nearest enclosing interface
// scope, searched from the top of the stack down, or "" if none.
func (c *Context) innermostInterface() string {
	frames := c.stack.Frames()
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i].Kind == scopeInterface {
			return frames[i].Name
		}
	}
	return ""
}
