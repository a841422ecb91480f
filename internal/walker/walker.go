// Package walker implements the generic, language-agnostic tree-sitter
// cursor traversal described in SPEC_FULL.md §4.4: depth-first, pre-order,
// with a pluggable per-node processor and scope push/pop around recursion.
//
// The teacher's own tree-sitter code (inspector_tree_sitter.go,
// inspector/java, inspector/jsx) always walks a node's named children
// directly via Node.NamedChild rather than through an explicit
// *sitter.TreeCursor, so this walker follows the same idiom: recursion
// takes a *sitter.Node and visits NamedChild(i) in order, which yields the
// identical depth-first pre-order traversal without requiring manual
// save/restore of cursor position (each recursive call already owns its
// own Node reference, so the non-destructive-to-caller-position contract
// holds by construction).
package walker

import sitter "github.com/smacker/go-tree-sitter"

// Handler supplies the three language-specific operations the generic
// walker needs: whether/how a node opens a scope, and scope push/pop.
type Handler interface {
	// ProcessNode is called at every node. If the node opens a scope it
	// returns the scope kind and name and ok=true; name == "" means "no
	// scope pushed" even if ok is true (mirrors the Rust original's
	// `if !scope_name.is_empty()` guard).
	ProcessNode(n *sitter.Node) (kind, name string, ok bool)
	PushScope(kind, name string)
	PopScope()
}

// Walk performs the traversal described above starting at n. A nil node is
// a no-op so callers can pass ChildByFieldName results directly.
func Walk(n *sitter.Node, h Handler) {
	if n == nil {
		return
	}

	kind, name, ok := h.ProcessNode(n)
	pushed := ok && name != ""
	if pushed {
		h.PushScope(kind, name)
	}

	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		Walk(n.NamedChild(i), h)
	}

	if pushed {
		h.PopScope()
	}
}
