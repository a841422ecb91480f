package python_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	tspy "github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/lang/python"
)

func parsePython(t *testing.T, src string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(tspy.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode()
}

func TestGenerateTags_LambdaReassignment(t *testing.T) {
	src := "add = lambda x,y: x+y\n"
	root := parsePython(t, src)
	tags := python.GenerateTags(root, []byte(src), "lambdas.py", python.DefaultKindConfig(), config.DefaultConfig())

	require.Len(t, tags, 1)
	assert.Equal(t, "add", tags[0].Name)
	assert.Equal(t, "f", tags[0].Kind)
	sig, ok := tags[0].Fields.Get("signature")
	require.True(t, ok)
	assert.Equal(t, "((x,y))", sig)
}

func TestGenerateTags_ClassAndMethod(t *testing.T) {
	src := `class Shape:
    def area(self):
        return 0
`
	root := parsePython(t, src)
	tags := python.GenerateTags(root, []byte(src), "shape.py", python.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}
	assert.Equal(t, "c", byName["Shape"])
	assert.Equal(t, "m", byName["area"])

	for _, tg := range tags {
		if tg.Name == "area" {
			v, ok := tg.Fields.Get("class")
			assert.True(t, ok)
			assert.Equal(t, "Shape", v)
		}
	}
}

func TestGenerateTags_AccessLevels(t *testing.T) {
	src := "_hidden = 1\nvisible = 2\n"
	root := parsePython(t, src)
	cfg := config.DefaultConfig()
	cfg.Fields = config.ParseFieldsConfig("+a", nil)
	tags := python.GenerateTags(root, []byte(src), "vars.py", python.DefaultKindConfig(), cfg)

	access := make(map[string]string)
	for _, tg := range tags {
		v, _ := tg.Fields.Get("access")
		access[tg.Name] = v
	}
	assert.Equal(t, "protected", access["_hidden"])
	assert.Equal(t, "public", access["visible"])
}

func TestGenerateTags_ImportFromAlias(t *testing.T) {
	src := "from mypkg import thing as alias\n"
	root := parsePython(t, src)
	tags := python.GenerateTags(root, []byte(src), "imports.py", python.DefaultKindConfig(), config.DefaultConfig())

	require.Len(t, tags, 1)
	assert.Equal(t, "alias", tags[0].Name)
	assert.Equal(t, "Y", tags[0].Kind)
	nameref, ok := tags[0].Fields.Get("nameref")
	require.True(t, ok)
	assert.Equal(t, "module:mypkg.thing", nameref)
}
