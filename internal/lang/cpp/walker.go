// Package cpp implements the C++ custom tag walker described in
// SPEC_FULL.md §4.5, translating the original `parser/cpp.rs` dispatch
// (namespace/class/struct/union/enum/function/declaration/field/macro/
// typedef) into the shared internal/walker.Handler contract.
package cpp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/tag"
)

var typeSpecifierKinds = map[string]bool{
	"primitive_type": true, "type_identifier": true,
	"qualified_identifier": true, "sized_type_specifier": true,
}

// Walker adapts a cpp.Context to internal/walker.Handler.
type Walker struct {
	ctx *Context
}

// NewWalker returns a Handler ready to drive internal/walker.Walk over a
// C++ source tree's root node.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx}
}

func (w *Walker) ProcessNode(n *sitter.Node) (kind, name string, ok bool) {
	switch n.Type() {
	case "namespace_definition":
		return w.processSimpleScope(n, "namespace_identifier", "n", scopeNamespace)
	case "class_specifier":
		return w.processSimpleScope(n, "type_identifier", "c", scopeClass)
	case "struct_specifier":
		return w.processSimpleScope(n, "type_identifier", "s", scopeStruct)
	case "union_specifier":
		return w.processSimpleScope(n, "type_identifier", "u", scopeUnion)
	case "enum_specifier":
		return w.processEnum(n)
	case "function_definition":
		return w.processFunctionDefinition(n)
	case "declaration":
		w.processDeclaration(n)
		return "", "", false
	case "field_declaration":
		w.processFieldDeclaration(n)
		return "", "", false
	case "preproc_def":
		w.processMacroDefinition(n)
		return "", "", false
	case "type_definition":
		w.processTypedef(n)
		return "", "", false
	default:
		return "", "", false
	}
}

func (w *Walker) PushScope(kind, name string) { w.ctx.pushScope(kind, name) }
func (w *Walker) PopScope()                   { w.ctx.popScope() }

func (w *Walker) createTag(name, kindChar string, n *sitter.Node, extra common.Extra) {
	if extra.ScopeKeys == nil {
		extra.ScopeKeys = w.ctx.scopeFields()
	}
	w.ctx.CreateTag(name, kindChar, n, extra)
}

func (w *Walker) processSimpleScope(n *sitter.Node, nameKind, kindChar, scopeKind string) (string, string, bool) {
	name := w.ctx.NodeName(n, nameKind)
	if name == "" {
		return "", "", false
	}
	w.createTag(name, kindChar, n, common.Extra{})
	return scopeKind, name, true
}

func (w *Walker) processEnum(n *sitter.Node) (string, string, bool) {
	var enumName, typeRef string
	var values []*sitter.Node

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "type_identifier":
			enumName = w.ctx.NodeText(child)
		case "primitive_type", "sized_type_specifier":
			typeRef = "typename:" + w.ctx.NodeText(child)
		case "enumerator_list":
			listCount := int(child.ChildCount())
			for j := 0; j < listCount; j++ {
				enumerator := child.Child(j)
				if enumerator != nil && enumerator.Type() == "enumerator" {
					values = append(values, enumerator)
				}
			}
		}
	}

	if enumName == "" {
		return "", "", false
	}

	var extra common.Extra
	extra.TypeRef = typeRef
	w.createTag(enumName, "g", n, extra)

	for _, enumerator := range values {
		name := w.ctx.NodeName(enumerator, "identifier")
		if name == "" {
			continue
		}
		scopeKeys := tag.NewFields()
		scopeKeys.Set("enum", enumName)
		w.createTag(name, "e", enumerator, common.Extra{ScopeKeys: scopeKeys})
	}

	return scopeEnum, enumName, true
}

func (w *Walker) processFunctionDefinition(n *sitter.Node) (string, string, bool) {
	var fnName, typeRef string
	scopeKeys := tag.NewFields()

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "primitive_type", "type_identifier", "qualified_identifier", "sized_type_specifier":
			typeRef = "typename:" + w.ctx.NodeText(child)
		case "reference_declarator":
			if declarator := common.FindChildByKind(child, "function_declarator"); declarator != nil {
				fnName = functionDeclaratorName(declarator, w.ctx.Context, scopeKeys)
			}
		case "function_declarator":
			fnName = functionDeclaratorName(child, w.ctx.Context, scopeKeys)
		}
	}

	if fnName == "" {
		return "", "", false
	}
	extra := common.Extra{TypeRef: typeRef}
	if scopeKeys.Len() > 0 {
		merged := w.ctx.scopeFields()
		for _, k := range scopeKeys.Keys() {
			v, _ := scopeKeys.Get(k)
			merged.Set(k, v)
		}
		extra.ScopeKeys = merged
	}
	w.createTag(fnName, "f", n, extra)
	return scopeFunction, fnName, true
}

// functionDeclaratorName extracts the function name from a
// function_declarator, unwrapping a qualified_identifier (recording its
// namespace_identifier under "class") or an operator name, matching
// `extract_function_name_from_declarator`.
func functionDeclaratorName(n *sitter.Node, ctx *common.Context, scopeKeys *tag.Fields) string {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier", "field_identifier":
			return ctx.NodeText(child)
		case "operator_name":
			return ctx.NodeText(child)
		case "qualified_identifier":
			qCount := int(child.ChildCount())
			for j := 0; j < qCount; j++ {
				qc := child.Child(j)
				if qc == nil {
					continue
				}
				switch qc.Type() {
				case "namespace_identifier":
					scopeKeys.Set("class", ctx.NodeText(qc))
				case "identifier", "destructor_name", "operator_name":
					text := ctx.NodeText(qc)
					if strings.HasPrefix(text, "operator") && len(text) > 8 {
						return "operator " + text[8:]
					}
					return text
				}
			}
		}
	}
	return ""
}

func (w *Walker) processDeclaration(n *sitter.Node) {
	var typeInfo string
	var variables []*sitter.Node

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "primitive_type", "type_identifier", "sized_type_specifier", "template_type", "qualified_identifier":
			typeInfo = w.ctx.NodeText(child)
		case "init_declarator":
			variables = append(variables, declaratorIdentifiers(child)...)
		case "identifier":
			variables = append(variables, child)
		}
	}

	for _, v := range variables {
		name := w.ctx.NodeText(v)
		if name == "" || name == "_" {
			continue
		}
		var extra common.Extra
		if typeInfo != "" {
			extra.TypeRef = "typename:" + typeInfo
		}
		w.createTag(name, "v", v, extra)
	}
}

func declaratorIdentifiers(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier":
			out = append(out, child)
			return out
		case "reference_declarator":
			refCount := int(child.ChildCount())
			for j := 0; j < refCount; j++ {
				refChild := child.Child(j)
				if refChild != nil && refChild.Type() == "identifier" {
					out = append(out, refChild)
				}
			}
			return out
		}
	}
	return out
}

func (w *Walker) processFieldDeclaration(n *sitter.Node) {
	name := w.ctx.NodeName(n, "field_identifier", "identifier")
	if name == "" {
		return
	}
	var extra common.Extra
	if typeInfo := declarationType(n, w.ctx.Context); typeInfo != "" {
		extra.TypeRef = "typename:" + typeInfo
	}
	w.createTag(name, "m", n, extra)
}

func declarationType(n *sitter.Node, ctx *common.Context) string {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child != nil && typeSpecifierKinds[child.Type()] {
			if text := ctx.NodeText(child); text != "" {
				return text
			}
		}
	}
	return ""
}

func (w *Walker) processMacroDefinition(n *sitter.Node) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return
	}
	w.createTag(name, "d", n, common.Extra{})
}

func (w *Walker) processTypedef(n *sitter.Node) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return
	}
	w.createTag(name, "t", n, common.Extra{})
}
