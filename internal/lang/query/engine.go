// Package query implements the shared engine for the eleven query-driven
// walkers described in spec.md §4.5 (ruby, php, java, c, ocaml, elixir,
// lua, bash, csharp, scala, julia): rather than a hand-written node
// visitor per language, a single tree-sitter tag query drives tag
// emission, following the `@definition.<kind>`/`@name` capture convention
// the teacher's own `inspector_tree_sitter.go` already uses for its
// import/type queries (`sitter.NewQuery` + `sitter.NewQueryCursor`).
//
// Tags produced here carry no Kind and no Fields: spec.md §6 calls this
// the "simpler address format", terminated by the bare `;"\t` that
// tag.Tag.Line writes for a tag with no kind and no fields. There is no
// "_" name rejection —
// per SPEC_FULL.md §9 Open Question 2 that rejection is specific to the
// rust/go/cpp custom walkers.
package query

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/treetags/internal/tag"
)

// Spec binds a query-driven language to its grammar and tag query text.
type Spec struct {
	Name     string
	Language *sitter.Language
	Query    string
}

// GenerateTags runs spec's tag query over root and returns one Tag per
// match carrying a "definition.<kind>" capture, named after that match's
// "name" capture (or the definition capture's own node text if the query
// has no separate name capture).
func GenerateTags(root *sitter.Node, src []byte, fileName string, spec Spec) ([]tag.Tag, error) {
	if spec.Language == nil {
		return nil, fmt.Errorf("query: %s has no grammar binding available", spec.Name)
	}

	q, err := sitter.NewQuery([]byte(spec.Query), spec.Language)
	if err != nil {
		return nil, fmt.Errorf("query: %s: compiling tag query: %w", spec.Name, err)
	}
	defer q.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(q, root)

	lines := tag.SplitLines(src)
	var tags []tag.Tag

	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		m = cursor.FilterPredicates(m, src)

		var kind string
		var defNode, nameNode *sitter.Node
		for _, c := range m.Captures {
			capName := q.CaptureNameForId(c.Index)
			switch {
			case capName == "name":
				nameNode = c.Node
			case strings.HasPrefix(capName, "definition."):
				kind = strings.TrimPrefix(capName, "definition.")
				defNode = c.Node
			}
		}
		if kind == "" || defNode == nil {
			continue
		}
		target := nameNode
		if target == nil {
			target = defNode
		}
		name := target.Content(src)
		if name == "" {
			continue
		}

		row := int(defNode.StartPoint().Row)
		tags = append(tags, tag.Tag{
			Name:     name,
			FileName: fileName,
			Address:  tag.BuildAddress(row, lines),
		})
	}

	return tags, nil
}
