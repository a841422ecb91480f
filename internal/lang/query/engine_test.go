package query_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/treetags/internal/lang/query"
)

func parseC(t *testing.T, src string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode()
}

func TestGenerateTags_CFunctionAndStruct(t *testing.T) {
	src := "struct Point { int x; int y; };\n\nint add(int a, int b) {\n  return a + b;\n}\n"
	root := parseC(t, src)

	tags, err := query.GenerateTags(root, []byte(src), "shapes.c", query.Spec{
		Name:     "c",
		Language: c.GetLanguage(),
		Query:    mustBuiltin(t, "c"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, tags)

	names := map[string]bool{}
	for _, tg := range tags {
		names[tg.Name] = true
		assert.Empty(t, tg.Kind)
		assert.Equal(t, "shapes.c", tg.FileName)
		assert.Contains(t, tg.Address, `;"`)
	}
	assert.True(t, names["Point"])
	assert.True(t, names["add"])
}

func TestGenerateTags_NoGrammarBinding(t *testing.T) {
	_, err := query.GenerateTags(nil, nil, "x.jl", query.Spec{Name: "julia"})
	assert.Error(t, err)
}

func mustBuiltin(t *testing.T, name string) string {
	t.Helper()
	q, ok := query.BuiltinQuery(name)
	require.True(t, ok)
	return q
}
