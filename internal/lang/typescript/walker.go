// Package typescript implements the TypeScript custom tag walker described
// in SPEC_FULL.md §4.5, translating the original `parser/typescript.rs`
// dispatch into the shared internal/walker.Handler contract.
package typescript

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/tag"
)

// Walker adapts a typescript.Context to internal/walker.Handler.
type Walker struct {
	ctx *Context
}

// NewWalker returns a Handler ready to drive internal/walker.Walk over a
// TypeScript source tree's root node.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx}
}

func (w *Walker) ProcessNode(n *sitter.Node) (kind, name string, ok bool) {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		return w.processFunctionDeclaration(n)
	case "class_declaration":
		return w.processSimple(n, "type_identifier", "c", scopeClass)
	case "interface_declaration":
		return w.processSimple(n, "type_identifier", "i", scopeInterface)
	case "enum_declaration":
		return w.processSimple(n, "identifier", "g", scopeEnum)
	case "module":
		return w.processModule(n)
	case "method_definition":
		return w.processMethodDefinition(n)
	case "method_signature":
		w.processMethodSignature(n)
		return "", "", false
	case "variable_declarator":
		return w.processVariableDeclarator(n)
	case "type_alias_declaration":
		w.processTypeAliasDeclaration(n)
		return "", "", false
	case "public_field_definition":
		w.processPublicFieldDefinition(n)
		return "", "", false
	case "property_signature":
		w.processPropertySignature(n)
		return "", "", false
	case "enum_body":
		w.processEnumBody(n)
		return "", "", false
	case "required_parameter", "optional_parameter":
		w.processParameter(n)
		return "", "", false
	default:
		return "", "", false
	}
}

func (w *Walker) PushScope(kind, name string) { w.ctx.pushScope(kind, name) }
func (w *Walker) PopScope()                   { w.ctx.popScope() }

func unquote(s string) string {
	if len(s) >= 2 && (strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'")) {
		return s[1 : len(s)-1]
	}
	return s
}

func (w *Walker) processSimple(n *sitter.Node, nameKind, kindChar, scopeKind string) (string, string, bool) {
	name := w.ctx.NodeName(n, nameKind)
	if name == "" {
		return "", "", false
	}
	w.ctx.createTag(name, kindChar, n, nil)
	return scopeKind, name, true
}

func (w *Walker) processFunctionDeclaration(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return "", "", false
	}
	kindChar := "f"
	if n.Type() == "generator_function_declaration" {
		kindChar = "G"
	}
	w.ctx.createTag(name, kindChar, n, nil)
	return scopeFunction, name, true
}

func (w *Walker) processModule(n *sitter.Node) (string, string, bool) {
	var name string
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "identifier" || child.Type() == "string" {
			name = unquote(w.ctx.NodeText(child))
			break
		}
	}
	if name == "" {
		return "", "", false
	}
	w.ctx.createTag(name, "n", n, nil)
	return scopeModule, name, true
}

func (w *Walker) processMethodDefinition(n *sitter.Node) (string, string, bool) {
	var name, access string
	access = "public"

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "property_identifier", "number", "string":
			name = unquote(w.ctx.NodeText(child))
		case "accessibility_modifier":
			access = w.ctx.NodeText(child)
		}
	}
	if name == "" {
		return "", "", false
	}

	extra := tag.NewFields()
	if w.ctx.Config.Fields.IsEnabled("access") {
		extra.Set("access", access)
	}
	w.ctx.createTag(name, "m", n, extra)
	return scopeFunction, name, true
}

func (w *Walker) processMethodSignature(n *sitter.Node) {
	name := w.ctx.NodeName(n, "property_identifier", "string")
	if name == "" {
		return
	}
	name = unquote(name)

	extra := tag.NewFields()
	if w.ctx.Config.Fields.IsEnabled("access") {
		extra.Set("access", "public")
	}
	w.ctx.createTag(name, "m", n, extra)
}

func (w *Walker) processVariableDeclarator(n *sitter.Node) (string, string, bool) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return "", "", false
	}
	name := w.ctx.NodeText(nameNode)
	if name == "" {
		return "", "", false
	}

	isFunction := false
	if value := n.ChildByFieldName("value"); value != nil {
		if value.Type() == "arrow_function" || value.Type() == "function_expression" {
			isFunction = true
		}
	}

	if isFunction {
		w.ctx.createTag(name, "f", n, nil)
		return scopeFunction, name, true
	}

	var kindChar string
	if w.ctx.inFunctionScope() {
		kindChar = "l"
	} else if isConstDeclarator(n, w.ctx.Context) {
		kindChar = "C"
	} else {
		kindChar = "v"
	}
	w.ctx.createTag(name, kindChar, n, nil)
	return "", "", false
}

// isConstDeclarator walks up to the enclosing lexical_declaration and
// checks whether its first child's text is "const", matching the
// original's parent-cursor walk.
func isConstDeclarator(n *sitter.Node, ctx *common.Context) bool {
	parent := n.Parent()
	if parent == nil || parent.ChildCount() == 0 {
		return false
	}
	first := parent.Child(0)
	return first != nil && ctx.NodeText(first) == "const"
}

func (w *Walker) processTypeAliasDeclaration(n *sitter.Node) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return
	}
	w.ctx.createTag(name, "a", n, nil)
}

func (w *Walker) processParameter(n *sitter.Node) {
	var name, access string
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier":
			name = w.ctx.NodeText(child)
		case "accessibility_modifier":
			access = w.ctx.NodeText(child)
		}
	}
	if name == "" || access == "" {
		return
	}
	extra := tag.NewFields()
	if w.ctx.Config.Fields.IsEnabled("access") {
		extra.Set("access", access)
	}
	w.ctx.createTag(name, "p", n, extra)
}

func (w *Walker) processPublicFieldDefinition(n *sitter.Node) {
	var name, access string
	access = "public"

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "property_identifier", "string":
			name = unquote(w.ctx.NodeText(child))
		case "accessibility_modifier":
			access = w.ctx.NodeText(child)
		}
	}
	if name == "" {
		return
	}
	extra := tag.NewFields()
	if w.ctx.Config.Fields.IsEnabled("access") {
		extra.Set("access", access)
	}
	w.ctx.createTag(name, "p", n, extra)
}

func (w *Walker) processPropertySignature(n *sitter.Node) {
	name := w.ctx.NodeName(n, "property_identifier", "string")
	if name == "" {
		return
	}
	name = unquote(name)

	extra := tag.NewFields()
	if w.ctx.Config.Fields.IsEnabled("access") {
		extra.Set("access", "public")
	}
	w.ctx.createTag(name, "p", n, extra)
}

func (w *Walker) processEnumBody(n *sitter.Node) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "property_identifier" || child.Type() == "identifier" {
			name := w.ctx.NodeText(child)
			if name == "" {
				continue
			}
			w.ctx.createTag(name, "e", child, nil)
		}
	}
}
