package javascript_test

import (
	"context"
	"regexp"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	tsjs "github.com/smacker/go-tree-sitter/javascript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treetags/internal/config"
	"github.com/viant/treetags/internal/lang/javascript"
)

func parseJS(t *testing.T, src string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(tsjs.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode()
}

func TestGenerateTags_IIFE(t *testing.T) {
	src := `(function(){})()
`
	root := parseJS(t, src)
	tags := javascript.GenerateTags(root, []byte(src), "main.js", javascript.DefaultKindConfig(), config.DefaultConfig())

	require.Len(t, tags, 1)
	assert.Equal(t, "f", tags[0].Kind)
	assert.Regexp(t, regexp.MustCompile(`^anonymousFunction[0-9a-f]{8}01$`), tags[0].Name)
}

func TestGenerateTags_ClassWithMethodAndField(t *testing.T) {
	src := `class Shape {
    radius = 1;
    area() {
        return 0;
    }
}
`
	root := parseJS(t, src)
	tags := javascript.GenerateTags(root, []byte(src), "shape.js", javascript.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}
	assert.Equal(t, "c", byName["Shape"])
	assert.Equal(t, "M", byName["radius"])
	assert.Equal(t, "m", byName["area"])

	for _, tg := range tags {
		if tg.Name == "area" {
			v, ok := tg.Fields.Get("class")
			assert.True(t, ok)
			assert.Equal(t, "Shape", v)
		}
	}
}

func TestGenerateTags_VariableKinds(t *testing.T) {
	src := `const PI = 3.14;
let radius = 1;
const area = function() { return 0; };
`
	root := parseJS(t, src)
	tags := javascript.GenerateTags(root, []byte(src), "vars.js", javascript.DefaultKindConfig(), config.DefaultConfig())

	byName := make(map[string]string)
	for _, tg := range tags {
		byName[tg.Name] = tg.Kind
	}
	assert.Equal(t, "C", byName["PI"])
	assert.Equal(t, "v", byName["radius"])
	assert.Equal(t, "f", byName["area"])
}

func TestGenerateTags_UnderscoreNameAccepted(t *testing.T) {
	src := `function _() {}
`
	root := parseJS(t, src)
	tags := javascript.GenerateTags(root, []byte(src), "underscore.js", javascript.DefaultKindConfig(), config.DefaultConfig())

	require.Len(t, tags, 1)
	assert.Equal(t, "_", tags[0].Name)
	assert.Equal(t, "f", tags[0].Kind)
}
