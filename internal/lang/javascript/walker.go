// Package javascript implements the JavaScript custom tag walker described
// in SPEC_FULL.md §4.5, translating the original `parser/js.rs` dispatch
// (function/class/variable/method/field/pair/assignment/call-expression)
// into the shared internal/walker.Handler contract.
//
// Unlike rust, go and cpp, JS's create_tag never rejects a bare "_" name
// and only ever emits kind, line and scope fields — no file, access,
// signature, typeref or end — so this package keeps its own createTag on
// Context rather than routing through common.Context.CreateTag.
package javascript

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/tag"
)

// Walker adapts a javascript.Context to internal/walker.Handler.
type Walker struct {
	ctx *Context
}

// NewWalker returns a Handler ready to drive internal/walker.Walk over a
// JavaScript source tree's root node.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx}
}

func (w *Walker) ProcessNode(n *sitter.Node) (kind, name string, ok bool) {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		return w.processFunctionDeclaration(n)
	case "class_declaration":
		return w.processClassDeclaration(n)
	case "variable_declarator":
		return w.processVariableDeclarator(n)
	case "method_definition":
		return w.processMethodDefinition(n)
	case "field_definition", "class_static_block":
		return w.processFieldDefinition(n)
	case "pair":
		return w.processPair(n)
	case "expression_statement":
		return w.processExpressionStatement(n)
	case "call_expression":
		return w.processCallExpression(n)
	default:
		return "", "", false
	}
}

func (w *Walker) PushScope(kind, name string) { w.ctx.pushScope(kind, name) }
func (w *Walker) PopScope()                   { w.ctx.popScope() }

func (w *Walker) processFunctionDeclaration(n *sitter.Node) (string, string, bool) {
	tagKind := "f"
	if n.Type() == "generator_function_declaration" {
		tagKind = "g"
	}
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return "", "", false
	}
	w.ctx.createTag(name, tagKind, n, nil)
	return scopeFunction, name, true
}

func (w *Walker) processClassDeclaration(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return "", "", false
	}
	w.ctx.createTag(name, "c", n, nil)
	return scopeClass, name, true
}

func (w *Walker) processVariableDeclarator(n *sitter.Node) (string, string, bool) {
	var name string
	var isFunction, isArrowFunction, isConstant bool

	if parent := n.Parent(); parent != nil && parent.Type() == "lexical_declaration" {
		if strings.HasPrefix(strings.TrimSpace(w.ctx.NodeText(parent)), "const") {
			isConstant = true
		}
	}

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier":
			name = w.ctx.NodeText(child)
		case "function_expression":
			isFunction = true
		case "arrow_function":
			isArrowFunction = true
		}
	}

	if name == "" {
		return "", "", false
	}
	switch {
	case isFunction || isArrowFunction:
		w.ctx.createTag(name, "f", n, nil)
		return scopeFunction, name, true
	case isConstant:
		w.ctx.createTag(name, "C", n, nil)
	default:
		w.ctx.createTag(name, "v", n, nil)
	}
	return "", "", false
}

func (w *Walker) processMethodDefinition(n *sitter.Node) (string, string, bool) {
	var name string
	kindTag := "m"

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "property_identifier", "identifier":
			name = w.ctx.NodeText(child)
		case "get":
			kindTag = "G"
		case "set":
			kindTag = "S"
		}
	}

	if name == "" {
		return "", "", false
	}
	w.ctx.createTag(name, kindTag, n, nil)
	return scopeFunction, name, true
}

func (w *Walker) processFieldDefinition(n *sitter.Node) (string, string, bool) {
	var name string
	isMethod := false

	value := n.ChildByFieldName("value")
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "property_identifier" || child.Type() == "private_property_identifier" {
			name = w.ctx.NodeText(child)
		}
	}
	if value != nil && (value.Type() == "function_expression" || value.Type() == "arrow_function") {
		isMethod = true
	}

	if name == "" {
		return "", "", false
	}
	tagKind := "M"
	if isMethod {
		tagKind = "m"
	}
	w.ctx.createTag(name, tagKind, n, nil)
	if isMethod {
		return scopeFunction, name, true
	}
	return "", "", false
}

func (w *Walker) processPair(n *sitter.Node) (string, string, bool) {
	keyNode := n.ChildByFieldName("key")
	if keyNode == nil {
		return "", "", false
	}
	keyName := w.ctx.NodeText(keyNode)
	if keyName == "" {
		return "", "", false
	}

	isFunc := false
	if value := n.ChildByFieldName("value"); value != nil {
		if value.Type() == "function_expression" || value.Type() == "arrow_function" {
			isFunc = true
		}
	}

	tagKind := "p"
	if isFunc {
		tagKind = "m"
	}
	w.ctx.createTag(keyName, tagKind, n, nil)
	if isFunc {
		return scopeFunction, keyName, true
	}
	return "", "", false
}

func (w *Walker) processExpressionStatement(n *sitter.Node) (string, string, bool) {
	var assignment *sitter.Node
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child != nil && child.Type() == "assignment_expression" {
			assignment = child
			break
		}
	}
	if assignment == nil {
		return "", "", false
	}

	left := assignment.ChildByFieldName("left")
	right := assignment.ChildByFieldName("right")
	if left == nil || right == nil || left.Type() != "member_expression" {
		return "", "", false
	}

	fullName := w.ctx.NodeText(left)
	parts := strings.Split(fullName, ".")
	if len(parts) < 2 {
		return "", "", false
	}
	name := parts[len(parts)-1]

	kind := "p"
	extra := tag.NewFields()

	switch right.Type() {
	case "function_expression", "arrow_function":
		kind = "m"
		if classIdx := indexOf(parts, "prototype"); classIdx > 0 {
			extra.Set("class", strings.Join(parts[:classIdx], "."))
		} else if classIdx < 0 {
			extra.Set("property", strings.Join(parts[:len(parts)-1], "."))
		}
	case "object":
		kind = "p"
	}
	if len(parts) == 2 && right.Type() == "object" {
		kind = "p"
	}
	if idx := strings.Index(fullName, ".prototype."); idx >= 0 {
		extra.Set("class", fullName[:idx])
	}

	w.ctx.createTag(name, kind, n, extra)

	if right.Type() == "object" {
		return scopeProperty, fullName, true
	}
	if kind == "m" {
		return scopeFunction, name, true
	}
	return "", "", false
}

func indexOf(parts []string, s string) int {
	for i, p := range parts {
		if p == s {
			return i
		}
	}
	return -1
}

func (w *Walker) processCallExpression(n *sitter.Node) (string, string, bool) {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return "", "", false
	}

	switch fn.Type() {
	case "function_expression", "arrow_function":
		name := w.ctx.generateAnonymousName()
		w.ctx.createTag(name, "f", fn, nil)
		return scopeFunction, name, true
	case "parenthesized_expression":
		count := int(fn.ChildCount())
		for i := 0; i < count; i++ {
			inner := fn.Child(i)
			if inner != nil && (inner.Type() == "function_expression" || inner.Type() == "arrow_function") {
				name := w.ctx.generateAnonymousName()
				w.ctx.createTag(name, "f", inner, nil)
				return scopeFunction, name, true
			}
		}
	}
	return "", "", false
}
