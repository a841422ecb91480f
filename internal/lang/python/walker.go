// Package python implements the Python custom tag walker described in
// SPEC_FULL.md §4.5, translating the original `parser/python.rs` dispatch
// (class/function/assignment/decorated-definition/import-from) into the
// shared internal/walker.Handler contract.
package python

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/tag"
)

// Walker adapts a python.Context to internal/walker.Handler.
type Walker struct {
	ctx *Context
}

// NewWalker returns a Handler ready to drive internal/walker.Walk over a
// Python source tree's root node.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx}
}

func (w *Walker) ProcessNode(n *sitter.Node) (kind, name string, ok bool) {
	switch n.Type() {
	case "class_definition":
		return w.processClassDefinition(n)
	case "function_definition":
		return w.processFunctionDefinition(n)
	case "assignment":
		w.processAssignment(n)
		return "", "", false
	case "decorated_definition":
		return w.processDecoratedDefinition(n)
	case "import_from_statement":
		w.processImportFromStatement(n)
		return "", "", false
	default:
		return "", "", false
	}
}

func (w *Walker) PushScope(kind, name string) { w.ctx.pushScope(kind, name) }
func (w *Walker) PopScope()                   { w.ctx.popScope() }

func (w *Walker) processClassDefinition(n *sitter.Node) (string, string, bool) {
	name := w.ctx.NodeName(n, "identifier")
	if name == "" {
		return "", "", false
	}
	w.ctx.createTag(name, "c", n, nil)
	return scopeClass, name, true
}

func (w *Walker) processFunctionDefinition(n *sitter.Node) (string, string, bool) {
	var name, paramsSignature, returnType string

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "identifier":
			name = w.ctx.NodeText(child)
		case "parameters":
			paramsSignature = w.ctx.NodeText(child)
		case "type":
			returnType = w.ctx.NodeText(child)
		}
	}
	if name == "" {
		return "", "", false
	}

	kind := "f"
	if w.ctx.inClassScopeTop() {
		kind = "m"
	}

	extra := tag.NewFields()
	if w.ctx.Config.Fields.IsEnabled("signature") && paramsSignature != "" {
		extra.Set("signature", paramsSignature)
	}
	if returnType != "" {
		extra.Set("typeref", "typename:"+returnType)
	}

	w.ctx.createTag(name, kind, n, extra)
	return scopeFunction, name, true
}

func (w *Walker) processAssignment(n *sitter.Node) {
	right := n.ChildByFieldName("right")
	typeNode := n.ChildByFieldName("type")
	left := n.ChildByFieldName("left")
	if left == nil {
		return
	}
	w.processAssignmentTarget(left, n, right, typeNode)
}

func (w *Walker) processAssignmentTarget(target, assignment, value, typeNode *sitter.Node) {
	switch target.Type() {
	case "identifier":
		name := w.ctx.NodeText(target)
		kind := "v"
		if w.ctx.inFunctionScope() {
			kind = "l"
		}

		extra := tag.NewFields()
		if typeNode != nil {
			extra.Set("typeref", "typename:"+w.ctx.NodeText(typeNode))
		}
		w.ctx.createTag(name, kind, assignment, extra)

		if value != nil && value.Type() == "lambda" {
			if last, ok := w.ctx.lastTagName(); ok && last == name {
				w.ctx.popLastTag()
			}

			lambdaKind := "f"
			if w.ctx.inClassScope() {
				lambdaKind = "m"
			}
			lambdaExtra := tag.NewFields()
			if params := value.ChildByFieldName("parameters"); params != nil {
				// lambda_parameters spans only the bare parameter list
				// (lambda has no parens in source); double-wrap so a
				// lambda-derived signature is distinguishable from a
				// def's own single-wrapped parameters text.
				lambdaExtra.Set("signature", fmt.Sprintf("((%s))", w.ctx.NodeText(params)))
			}
			w.ctx.createTag(name, lambdaKind, assignment, lambdaExtra)
		}
	case "pattern_list":
		count := int(target.ChildCount())
		for i := 0; i < count; i++ {
			child := target.Child(i)
			if child == nil {
				continue
			}
			w.processAssignmentTarget(child, assignment, nil, nil)
		}
	}
}

func (w *Walker) processDecoratedDefinition(n *sitter.Node) (string, string, bool) {
	def := n.ChildByFieldName("definition")
	if def == nil {
		return "", "", false
	}
	return w.ProcessNode(def)
}

func (w *Walker) processImportFromStatement(n *sitter.Node) {
	moduleName := ""
	if moduleNode := n.ChildByFieldName("module_name"); moduleNode != nil {
		moduleName = w.ctx.NodeText(moduleNode)
	}

	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil || child.Type() != "aliased_import" {
			continue
		}
		aliasNode := child.ChildByFieldName("alias")
		nameNode := child.ChildByFieldName("name")
		if aliasNode == nil {
			continue
		}
		alias := w.ctx.NodeText(aliasNode)
		originalName := ""
		if nameNode != nil {
			originalName = w.ctx.NodeText(nameNode)
		}
		if alias == "" {
			continue
		}

		var nameref string
		if moduleName == "" || moduleName == "." {
			nameref = "unknown:" + originalName
		} else {
			nameref = "module:" + moduleName + "." + originalName
		}

		extra := tag.NewFields()
		extra.Set("nameref", nameref)
		w.ctx.createTag(alias, "Y", n, extra)
	}
}
