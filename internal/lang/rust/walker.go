// Package rust implements the Rust custom tag walker described in
// SPEC_FULL.md §4.5, translating the original `parser/rust.rs` tree-walking
// dispatch (module/struct/enum/union/trait/impl/function/associated
// type/const/static/type alias/macro) into the shared
// internal/walker.Handler contract over *sitter.Node.
package rust

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/lang/common"
	"github.com/viant/treetags/internal/tag"
)

// Walker adapts a rust.Context to internal/walker.Handler.
type Walker struct {
	ctx *Context
}

// NewWalker returns a Handler ready to drive internal/walker.Walk over a
// Rust source tree's root node.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx}
}

// ProcessNode dispatches on node kind exactly as the original `process_node`
// match does, returning the scope this node opens (if any).
func (w *Walker) ProcessNode(n *sitter.Node) (kind, name string, ok bool) {
	switch n.Type() {
	case "mod_item":
		return w.processModule(n)
	case "struct_item":
		return w.processStruct(n)
	case "enum_item":
		return w.processEnum(n)
	case "union_item":
		return w.processUnion(n)
	case "trait_item":
		return w.processTrait(n)
	case "impl_item":
		return w.processImpl(n)
	case "function_item":
		kindChar := "f"
		switch w.ctx.topScope() {
		case scopeImpl, scopeStruct, scopeEnum, scopeUnion, scopeTrait:
			kindChar = "P"
		}
		w.processFunction(n, kindChar)
		return "", "", false
	case "function_signature_item":
		w.processFunction(n, "m")
		return "", "", false
	case "associated_type":
		w.processAssociatedType(n)
		return "", "", false
	case "const_item":
		w.processConstant(n)
		return "", "", false
	case "static_item":
		w.processVariable(n)
		return "", "", false
	case "type_item":
		w.processTypedef(n)
		return "", "", false
	case "macro_definition":
		w.processMacro(n)
		return "", "", false
	default:
		return "", "", false
	}
}

// PushScope and PopScope satisfy internal/walker.Handler by delegating to
// the underlying Context's stack.
func (w *Walker) PushScope(kind, name string) { w.ctx.pushScope(kind, name) }
func (w *Walker) PopScope()                   { w.ctx.popScope() }

func (w *Walker) createTag(name, kindChar string, n *sitter.Node, extra common.Extra) {
	if extra.ScopeKeys == nil {
		extra.ScopeKeys = w.ctx.scopeFields()
	}
	w.ctx.CreateTag(name, kindChar, n, extra)
}

func (w *Walker) processModule(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return "", "", false
	}
	w.createTag(name, "n", n, common.Extra{})
	return scopeModule, name, true
}

func (w *Walker) processStruct(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return "", "", false
	}
	w.createTag(name, "s", n, common.Extra{})
	w.processFieldsOrVariants(n, name, "m", "struct")
	return scopeStruct, name, true
}

func (w *Walker) processEnum(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return "", "", false
	}
	w.createTag(name, "g", n, common.Extra{})
	w.processFieldsOrVariants(n, name, "e", "enum")
	return scopeEnum, name, true
}

func (w *Walker) processUnion(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return "", "", false
	}
	w.createTag(name, "u", n, common.Extra{})
	return scopeUnion, name, true
}

func (w *Walker) processTrait(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return "", "", false
	}
	w.createTag(name, "i", n, common.Extra{})
	return scopeTrait, name, true
}

// processFieldsOrVariants tags a struct's fields (`field_declaration`) or an
// enum's variants (`enum_variant`), each carrying the owning type's name
// under the `struct`/`enum` field, matching `process_identifiers_list`.
func (w *Walker) processFieldsOrVariants(n *sitter.Node, ownerName, kindChar, ownerField string) {
	list := common.FindChildByKind(n, "field_declaration_list", "enum_variant_list")
	if list == nil {
		return
	}
	count := int(list.ChildCount())
	for i := 0; i < count; i++ {
		child := list.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "enum_variant", "field_declaration":
			variantName := w.ctx.NodeName(child, "identifier", "field_identifier")
			if variantName == "" {
				continue
			}
			scopeKeys := tag.NewFields()
			scopeKeys.Set(ownerField, ownerName)
			w.createTag(variantName, kindChar, child, common.Extra{ScopeKeys: scopeKeys})
		}
	}
}

func (w *Walker) processImpl(n *sitter.Node) (string, string, bool) {
	traitName, typeName := findImplNames(n, w.ctx.Context)
	if typeName == "" {
		return "", "", false
	}
	var scopeKeys *tag.Fields
	if traitName != "" {
		scopeKeys = tag.NewFields()
		scopeKeys.Set("trait", traitName)
	}
	w.createTag(typeName, "c", n, common.Extra{ScopeKeys: mergeScopeKeys(w.ctx.scopeFields(), scopeKeys)})
	return scopeImpl, typeName, true
}

// mergeScopeKeys appends extra on top of base in base's order followed by
// extra's order, matching IndexMap::extend semantics used by the original
// `create_tag`.
func mergeScopeKeys(base, extra *tag.Fields) *tag.Fields {
	if extra == nil {
		return base
	}
	merged := base.Clone()
	if merged == nil {
		merged = tag.NewFields()
	}
	for _, k := range extra.Keys() {
		v, _ := extra.Get(k)
		merged.Set(k, v)
	}
	return merged
}

// findImplNames walks impl_item's direct children looking for the
// (optional) trait name, the `for` keyword, and the implementing type name,
// exactly as the original `find_impl_names` scans its TreeCursor.
func findImplNames(n *sitter.Node, ctx *common.Context) (traitName, typeName string) {
	foundFor := false
	count := int(n.ChildCount())
scan:
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "type_identifier", "scoped_type_identifier", "generic_type":
			name := ctx.NodeText(child)
			if foundFor {
				if typeName == "" {
					typeName = name
				}
			} else if traitName == "" {
				traitName = name
			} else if typeName == "" {
				typeName = name
			}
		case "for":
			foundFor = true
		case "declaration_list", "{":
			break scan
		}
	}
	if !foundFor {
		typeName, traitName = traitName, ""
	}
	return traitName, typeName
}

func (w *Walker) processFunction(n *sitter.Node, kindChar string) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return
	}
	var extra common.Extra
	if w.ctx.Config.Fields.IsEnabled("signature") {
		if sig := functionSignature(n, w.ctx.Context); sig != "" {
			extra.Signature = sig
		}
	}
	w.createTag(name, kindChar, n, extra)
}

// functionSignature builds "(params) -> ReturnType", normalizing internal
// whitespace to single spaces, matching `get_function_signature_string`.
func functionSignature(n *sitter.Node, ctx *common.Context) string {
	params := ctx.NodeName(n, "parameters")
	if params == "" {
		return ""
	}
	raw := params
	if rt := n.ChildByFieldName("return_type"); rt != nil {
		if text := ctx.NodeText(rt); text != "" {
			raw = params + " -> " + text
		}
	}
	return strings.Join(strings.Fields(raw), " ")
}

func (w *Walker) processAssociatedType(n *sitter.Node) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return
	}
	w.createTag(name, "T", n, common.Extra{})
}

func (w *Walker) processConstant(n *sitter.Node) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return
	}
	w.createTag(name, "C", n, common.Extra{})
}

func (w *Walker) processVariable(n *sitter.Node) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return
	}
	w.createTag(name, "v", n, common.Extra{})
}

func (w *Walker) processTypedef(n *sitter.Node) {
	name := w.ctx.NodeName(n, "type_identifier")
	if name == "" {
		return
	}
	w.createTag(name, "t", n, common.Extra{})
}

func (w *Walker) processMacro(n *sitter.Node) {
	name := w.ctx.NodeName(n, "identifier", "metavariable")
	if name == "" {
		return
	}
	name = strings.TrimSuffix(name, "!")
	w.createTag(name, "M", n, common.Extra{})
}
