// Package golang implements the Go custom tag walker described in
// SPEC_FULL.md §4.5, translating the original `parser/go.rs` dispatch into
// the shared internal/walker.Handler contract. It carries two Go-specific
// overrides documented there: the package scope is pushed once and never
// popped, and every tag omits the `end` field when it spans a single line.
package golang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/tag"
)

var returnTypeKinds = map[string]bool{
	"type_identifier": true, "pointer_type": true, "slice_type": true,
	"map_type": true, "channel_type": true, "function_type": true,
}

// Walker adapts a golang.Context to internal/walker.Handler.
type Walker struct {
	ctx *Context
}

// NewWalker returns a Handler ready to drive internal/walker.Walk over a Go
// source tree's root node.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx}
}

func (w *Walker) ProcessNode(n *sitter.Node) (kind, name string, ok bool) {
	switch n.Type() {
	case "package_clause":
		w.processPackage(n)
		return "", "", false
	case "import_declaration":
		w.processImports(n)
		return "", "", false
	case "function_declaration":
		w.processFunction(n)
		return "", "", false
	case "method_declaration":
		w.processMethod(n)
		return "", "", false
	case "const_declaration":
		w.processConstants(n)
		return "", "", false
	case "var_declaration":
		w.processVariables(n)
		return "", "", false
	case "short_var_declaration":
		w.processShortVarDeclaration(n)
		return "", "", false
	case "type_declaration":
		return w.processTypeDeclaration(n)
	case "method_elem":
		w.processMethodSpecIfInInterface(n)
		return "", "", false
	default:
		return "", "", false
	}
}

func (w *Walker) PushScope(kind, name string) { w.ctx.pushScope(kind, name) }
func (w *Walker) PopScope()                   { w.ctx.popScope() }

// createTag auto-injects the current scope stack as ScopeKeys and the
// single-line `end`-omission override, matching the Go field-order
// override for every node that participates in the normal scope stack
// (package/function/const/var/type/struct).
func (w *Walker) createTag(name, kindChar string, n *sitter.Node, extra common.Extra) {
	if extra.ScopeKeys == nil {
		extra.ScopeKeys = w.ctx.scopeFields()
	}
	extra.OmitEndIfSingleLine = true
	w.ctx.CreateTag(name, kindChar, n, extra)
}

func (w *Walker) processPackage(n *sitter.Node) {
	name := w.ctx.NodeName(n, "package_identifier")
	if name == "" {
		return
	}
	w.ctx.CreateTag(name, "p", n, common.Extra{OmitEndIfSingleLine: true})
	w.ctx.pushScope(scopePackage, name)
}

func (w *Walker) processImports(n *sitter.Node) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "import_spec":
			w.tagImportSpec(child)
		case "import_spec_list":
			specCount := int(child.ChildCount())
			for j := 0; j < specCount; j++ {
				spec := child.Child(j)
				if spec != nil && spec.Type() == "import_spec" {
					w.tagImportSpec(spec)
				}
			}
		}
	}
}

func (w *Walker) tagImportSpec(spec *sitter.Node) {
	var alias, path string
	count := int(spec.ChildCount())
	for i := 0; i < count; i++ {
		child := spec.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "interpreted_string_literal":
			path = strings.Trim(w.ctx.NodeText(child), `"`)
		case "package_identifier":
			alias = w.ctx.NodeText(child)
		}
	}
	if alias == "" || path == "" {
		return
	}
	scopeKeys := tag.NewFields()
	scopeKeys.Set("package", path)
	w.createTag(alias, "P", spec, common.Extra{ScopeKeys: scopeKeys})
}

func (w *Walker) processFunction(n *sitter.Node) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return
	}
	var extra common.Extra
	extra.Signature = functionSignature(n, w.ctx.Context)
	if rt := returnType(n, w.ctx.Context); rt != "" {
		extra.TypeRef = "typename:" + rt
	}
	w.createTag(name, "f", n, extra)
}

func (w *Walker) processMethod(n *sitter.Node) {
	name := w.ctx.NodeName(n, "field_identifier")
	if name == "" {
		return
	}
	scopeKeys := tag.NewFields()
	if recv := receiverType(n, w.ctx.Context); recv != "" {
		scopeKeys.Set("struct", w.ctx.qualify(recv))
	}
	extra := common.Extra{
		ScopeKeys:           scopeKeys,
		Signature:           functionSignature(n, w.ctx.Context),
		OmitEndIfSingleLine: true,
	}
	if rt := returnType(n, w.ctx.Context); rt != "" {
		extra.TypeRef = "typename:" + rt
	}
	w.ctx.CreateTag(name, "f", n, extra)
}

func functionSignature(n *sitter.Node, ctx *common.Context) string {
	params := n.ChildByFieldName("parameters")
	if params == nil {
		return "()"
	}
	return ctx.NodeText(params)
}

// returnType scans n's direct children for the return-type node following
// the (last) parameter list, matching `get_function_return_type`.
func returnType(n *sitter.Node, ctx *common.Context) string {
	var result string
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if returnTypeKinds[child.Type()] {
			result = ctx.NodeText(child)
		}
		if child.Type() == "parameter_list" && i+1 < count {
			next := n.Child(i + 1)
			if next != nil && (returnTypeKinds[next.Type()] || next.Type() == "parameter_list") {
				result = ctx.NodeText(next)
			}
		}
	}
	return result
}

// receiverType extracts the method's receiver type name from its first
// parameter_list, stripping any leading pointer `*`.
func receiverType(n *sitter.Node, ctx *common.Context) string {
	recv := common.FindChildByKind(n, "parameter_list")
	if recv == nil {
		return ""
	}
	decl := common.FindChildByKind(recv, "parameter_declaration")
	if decl == nil {
		return ""
	}
	t := common.FindChildByKind(decl, "type_identifier", "pointer_type")
	if t == nil {
		return ""
	}
	return strings.TrimLeft(ctx.NodeText(t), "*")
}

func (w *Walker) processConstants(n *sitter.Node) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "const_spec":
			w.processConstSpec(child)
		case "const_spec_list":
			specCount := int(child.ChildCount())
			for j := 0; j < specCount; j++ {
				spec := child.Child(j)
				if spec != nil && spec.Type() == "const_spec" {
					w.processConstSpec(spec)
				}
			}
		}
	}
}

func (w *Walker) processConstSpec(spec *sitter.Node) {
	count := int(spec.ChildCount())
	for i := 0; i < count; i++ {
		child := spec.Child(i)
		if child != nil && child.Type() == "identifier" {
			w.createTag(w.ctx.NodeText(child), "c", child, common.Extra{})
		}
	}
}

func (w *Walker) processVariables(n *sitter.Node) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "var_spec":
			w.processVarSpec(child)
		case "var_spec_list":
			specCount := int(child.ChildCount())
			for j := 0; j < specCount; j++ {
				spec := child.Child(j)
				if spec != nil && spec.Type() == "var_spec" {
					w.processVarSpec(spec)
				}
			}
		}
	}
}

var varTypeKinds = map[string]bool{
	"type_identifier": true, "pointer_type": true, "slice_type": true,
	"map_type": true, "channel_type": true, "interface_type": true,
}

func (w *Walker) processVarSpec(spec *sitter.Node) {
	var identifiers []*sitter.Node
	var typeName string
	count := int(spec.ChildCount())
	for i := 0; i < count; i++ {
		child := spec.Child(i)
		if child == nil {
			continue
		}
		switch {
		case child.Type() == "identifier":
			identifiers = append(identifiers, child)
		case varTypeKinds[child.Type()]:
			typeName = w.ctx.NodeText(child)
		}
	}
	for _, idNode := range identifiers {
		var extra common.Extra
		if typeName != "" {
			extra.TypeRef = "typename:" + typeName
		}
		w.createTag(w.ctx.NodeText(idNode), "v", idNode, extra)
	}
}

func (w *Walker) processShortVarDeclaration(n *sitter.Node) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child != nil && child.Type() == "identifier" {
			w.createTag(w.ctx.NodeText(child), "v", child, common.Extra{})
		}
	}
}

func (w *Walker) processTypeDeclaration(n *sitter.Node) (kind, name string, ok bool) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "type_spec":
			if k, nm, found := w.processTypeSpec(child); found {
				kind, name, ok = k, nm, true
			}
		case "type_spec_list":
			specCount := int(child.ChildCount())
			for j := 0; j < specCount; j++ {
				spec := child.Child(j)
				if spec != nil && spec.Type() == "type_spec" {
					if k, nm, found := w.processTypeSpec(spec); found {
						kind, name, ok = k, nm, true
					}
				}
			}
		}
	}
	return kind, name, ok
}

func (w *Walker) processTypeSpec(spec *sitter.Node) (kind, name string, ok bool) {
	var typeName string
	var typeNode *sitter.Node
	var resultKind, resultName string
	var found bool

	var taggedAlias bool
	count := int(spec.ChildCount())
	for i := 0; i < count; i++ {
		child := spec.Child(i)
		if child == nil {
			continue
		}
		switch {
		case child.Type() == "type_identifier" && typeName == "":
			typeName = w.ctx.NodeText(child)
			typeNode = child
		case child.Type() == "struct_type":
			if typeName != "" {
				w.createTag(typeName, "s", child, common.Extra{})
				w.processStructFields(child, typeName)
				resultKind, resultName, found = scopeStruct, typeName, true
			}
		case child.Type() == "interface_type":
			if typeName != "" {
				w.createTag(typeName, "i", child, common.Extra{})
				resultKind, resultName, found = scopeInterface, typeName, true
			}
		default:
			if !taggedAlias && typeName != "" {
				taggedAlias = true
				extra := common.Extra{TypeRef: "typename:" + w.ctx.NodeText(child)}
				w.createTag(typeName, "t", typeNode, extra)
			}
		}
	}
	return resultKind, resultName, found
}

func (w *Walker) processStructFields(structType *sitter.Node, structName string) {
	list := common.FindChildByKind(structType, "field_declaration_list")
	if list == nil {
		return
	}
	count := int(list.ChildCount())
	for i := 0; i < count; i++ {
		field := list.Child(i)
		if field != nil && field.Type() == "field_declaration" {
			w.processFieldDeclaration(field, structName)
		}
	}
}

func (w *Walker) processFieldDeclaration(field *sitter.Node, structName string) {
	var names []*sitter.Node
	var typeName string
	count := int(field.ChildCount())
	for i := 0; i < count; i++ {
		child := field.Child(i)
		if child == nil {
			continue
		}
		switch {
		case child.Type() == "field_identifier":
			names = append(names, child)
		case varTypeKinds[child.Type()]:
			typeName = w.ctx.NodeText(child)
		}
	}
	for _, nameNode := range names {
		scopeKeys := tag.NewFields()
		scopeKeys.Set("struct", w.ctx.qualify(structName))
		extra := common.Extra{ScopeKeys: scopeKeys, OmitEndIfSingleLine: true}
		if typeName != "" {
			extra.TypeRef = "typename:" + typeName
		}
		w.ctx.CreateTag(w.ctx.NodeText(nameNode), "m", nameNode, extra)
	}
}

func (w *Walker) processMethodSpecIfInInterface(n *sitter.Node) {
	interfaceName := w.ctx.innermostInterface()
	if interfaceName == "" {
		return
	}
	name := w.ctx.NodeName(n, "field_identifier")
	if name == "" {
		return
	}
	scopeKeys := tag.NewFields()
	scopeKeys.Set("interface", w.ctx.qualify(interfaceName))
	extra := common.Extra{ScopeKeys: scopeKeys, OmitEndIfSingleLine: true}
	if rt := returnType(n, w.ctx.Context); rt != "" {
		extra.TypeRef = "typename:" + rt
	}
	w.ctx.CreateTag(name, "n", n, extra)
}
